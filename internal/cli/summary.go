package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/flowmap/internal/domain"
)

var (
	summaryTitle = lipgloss.NewStyle().Bold(true)
	summaryLabel = lipgloss.NewStyle().Faint(true).Width(9)
	stageStyle   = lipgloss.NewStyle().Faint(true)
)

// printStage emits one console progress line per pipeline stage.
func printStage(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, stageStyle.Render(fmt.Sprintf(format, args...)))
}

func printSummary(w io.Writer, sum domain.FlowSummary, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	case "pretty", "":
		printPrettySummary(w, sum)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettySummary(w io.Writer, sum domain.FlowSummary) {
	fmt.Fprintln(w, summaryTitle.Render(fmt.Sprintf("Generated user flows for %s", sum.Project)))
	fmt.Fprintf(w, "%s %d\n", summaryLabel.Render("Screens:"), sum.Screens)
	fmt.Fprintf(w, "%s %d\n", summaryLabel.Render("Stories:"), sum.Stories)
	fmt.Fprintf(w, "%s %d\n", summaryLabel.Render("Flows:"), sum.Flows)
	fmt.Fprintf(w, "%s %s\n", summaryLabel.Render("Output:"), sum.OutputPath)
}
