package handlers

import (
	"fmt"
	"strings"

	"github.com/imamik/mwpack/internal/cluster"
	"github.com/imamik/mwpack/internal/ui"
)

// renderReport produces the human-readable capacity summary.
func renderReport(r *cluster.Report, theme ui.Theme) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Render(fmt.Sprintf("  mwpack solve: %.3f MW IT cap", r.ITCapW/1_000_000)))
	b.WriteString("\n")
	b.WriteString(theme.Dim.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n\n")

	status := fmt.Sprintf("  %s %s", theme.Mark(r.Status == cluster.StatusOK), r.Status)
	b.WriteString(status)
	b.WriteString("\n")

	renderSection(&b, theme, "Compute")
	fmt.Fprintf(&b, "    Nodes:        %d\n", r.Nodes)
	fmt.Fprintf(&b, "    GPUs:         %d\n", r.GPUs)
	fmt.Fprintf(&b, "    GPUs per MW:  %.2f\n", r.GPUsPerMW)

	renderSection(&b, theme, "Fabric")
	fmt.Fprintf(&b, "    Leaves:       %d\n", r.Leaves)
	fmt.Fprintf(&b, "    Spines:       %d\n", r.Spines)
	fmt.Fprintf(&b, "    Host ports:   %d\n", r.HostPorts)
	fmt.Fprintf(&b, "    Uplinks:      %d\n", r.UplinksTotal)
	fmt.Fprintf(&b, "    Oversub:      %.3f:1\n", r.OversubscriptionRatio)

	renderSection(&b, theme, "Power")
	fmt.Fprintf(&b, "    Nodes:        %12.1f W\n", r.PNodeTotalW)
	fmt.Fprintf(&b, "    Switching:    %12.1f W\n", r.PSwitchingW)
	fmt.Fprintf(&b, "    Optics:       %12.1f W\n", r.POpticsW)
	fmt.Fprintf(&b, "    Total:        %12.1f W\n", r.PTotalW)
	headroom := r.ITCapW - r.PTotalW
	b.WriteString(theme.Dim.Render(fmt.Sprintf("    Headroom:     %12.1f W", headroom)))
	b.WriteString("\n\n")

	return b.String()
}

func renderSection(b *strings.Builder, theme ui.Theme, title string) {
	b.WriteString("\n")
	b.WriteString(theme.Section.Render("  " + title))
	b.WriteString("\n")
	b.WriteString(theme.Dim.Render("  " + strings.Repeat("─", 35)))
	b.WriteString("\n")
}
