package report

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/flowmap/internal/domain"
)

// mermaidDiagram renders the screens and flows as a mermaid graph TD
// block. Node ids S1..Sn follow the set's first-seen order; edges whose
// endpoints are not in the set are silently skipped.
func mermaidDiagram(screens *domain.ScreenSet, flows []domain.NavigationFlow) string {
	var b strings.Builder

	b.WriteString("```mermaid\n")
	b.WriteString("graph TD\n")

	for i, name := range screens.Names() {
		fmt.Fprintf(&b, "    S%d[%s]\n", i+1, name)
	}

	for _, f := range flows {
		from, okFrom := screens.Position(f.From)
		to, okTo := screens.Position(f.To)
		if !okFrom || !okTo {
			continue
		}
		fmt.Fprintf(&b, "    S%d --> S%d\n", from+1, to+1)
	}

	// Declared but never applied to nodes; kept for manual styling.
	b.WriteString("\n    classDef primaryScreen fill:#e1f5fe\n")
	b.WriteString("    classDef secondaryScreen fill:#f3e5f5\n")
	b.WriteString("    classDef actionScreen fill:#e8f5e8\n")

	b.WriteString("```\n")
	return b.String()
}
