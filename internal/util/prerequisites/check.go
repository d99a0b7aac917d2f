// Package prerequisites looks up the external tools mwpack can shell out to.
// None of them is needed to validate, build or package an artifact; pandoc
// only improves rendering and git only supplies the tool version.
package prerequisites

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Tool names.
const (
	PandocName = "pandoc"
	GitName    = "git"
)

// LookPath resolves a binary name on PATH. Tests replace it.
var LookPath = exec.LookPath

// Tool represents a client tool that may be required.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// InstallURL provides a URL for installation instructions.
	InstallURL string
}

// Pandoc is the markdown renderer used by the render command.
func Pandoc() Tool {
	return Tool{
		Name:        PandocName,
		Description: "Renders memo.html and memo.pdf; without it a plain <pre> HTML fallback is written",
		InstallURL:  "https://pandoc.org/installing.html",
	}
}

// Git supplies the tool version recorded in build summaries.
func Git() Tool {
	return Tool{
		Name:        GitName,
		Description: "Provides the tool_version recorded in build_summary.json",
		InstallURL:  "https://git-scm.com/downloads",
	}
}

// DefaultTools returns every tool mwpack knows about.
func DefaultTools() []Tool {
	return []Tool{Pandoc(), Git()}
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool    Tool
	Found   bool
	Path    string
	Version string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error if any required tools are missing.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.InstallURL))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Locate returns the absolute path of name and whether it was found.
func Locate(name string) (string, bool) {
	path, err := LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}

// Check verifies that the specified tools are available. Found tools are
// asked for their version on a best-effort basis.
func Check(ctx context.Context, tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		if path, ok := Locate(tool.Name); ok {
			result.Found = true
			result.Path = path
			result.Version = getToolVersion(ctx, path)
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// getToolVersion returns the first line of `<path> --version`, or an empty
// string.
func getToolVersion(ctx context.Context, path string) string {
	// #nosec G204 - path comes from LookPath on a fixed tool name
	output, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(output), "\n")
	return strings.TrimSpace(line)
}
