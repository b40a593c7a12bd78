package report

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/flowmap/internal/domain"
)

// connectionMatrix renders the full screens × screens presence table.
// Cell (A,B) is ✅ iff at least one flow has From==A and To==B.
func connectionMatrix(screens *domain.ScreenSet, flows []domain.NavigationFlow) string {
	names := screens.Names()

	var b strings.Builder
	b.WriteString("### Screen Connection Matrix\n\n")

	b.WriteString("| From \\ To |")
	for _, name := range names {
		fmt.Fprintf(&b, " %s |", name)
	}
	b.WriteString("\n|")
	b.WriteString(strings.Repeat("---|", len(names)+1))
	b.WriteString("\n")

	for _, from := range names {
		fmt.Fprintf(&b, "| **%s** |", from)
		for _, to := range names {
			if hasConnection(flows, from, to) {
				b.WriteString(" ✅ |")
			} else {
				b.WriteString(" ❌ |")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func hasConnection(flows []domain.NavigationFlow, from, to string) bool {
	for _, f := range flows {
		if f.From == from && f.To == to {
			return true
		}
	}
	return false
}
