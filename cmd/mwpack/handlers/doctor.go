package handlers

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/imamik/mwpack/internal/ui"
	"github.com/imamik/mwpack/internal/util/prerequisites"
)

// Factory function variables for doctor - can be replaced in tests.
var (
	checkTools  = prerequisites.Check
	doctorTheme = func() ui.Theme { return ui.ForFile(os.Stdout) }
)

// ToolStatus is one entry of `doctor --json`.
type ToolStatus struct {
	Name        string `json:"name"`
	Found       bool   `json:"found"`
	Path        string `json:"path,omitempty"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description"`
	InstallURL  string `json:"install_url"`
}

// Doctor reports which optional external tools are available.
func Doctor(ctx context.Context, jsonOutput bool) error {
	results := checkTools(ctx, prerequisites.DefaultTools())

	statuses := make([]ToolStatus, 0, len(results.Results))
	for _, r := range results.Results {
		statuses = append(statuses, ToolStatus{
			Name:        r.Tool.Name,
			Found:       r.Found,
			Path:        r.Path,
			Version:     r.Version,
			Description: r.Tool.Description,
			InstallURL:  r.Tool.InstallURL,
		})
	}

	if jsonOutput {
		if err := printJSON(map[string]any{"tools": statuses}); err != nil {
			return err
		}
	} else {
		printDoctor(statuses, doctorTheme())
	}
	return results.Error()
}

func printDoctor(statuses []ToolStatus, theme ui.Theme) {
	fmt.Println()
	fmt.Println("  " + theme.Title.Render("mwpack doctor"))
	fmt.Println("  " + theme.Dim.Render(strings.Repeat("═", 13)))
	fmt.Println()

	for _, s := range statuses {
		if s.Found {
			extra := s.Path
			if s.Version != "" {
				extra = s.Version
			}
			fmt.Printf("  %s  %-8s %s\n", theme.Mark(true), s.Name, extra)
			continue
		}
		fmt.Printf("  %s  %-8s not found (%s)\n", theme.WarnMark(), s.Name, s.InstallURL)
		fmt.Printf("            %s\n", theme.Dim.Render(s.Description))
	}
	fmt.Println()
}
