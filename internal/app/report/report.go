// Package report assembles the generated user-flows document from the
// extracted screens, stories, and navigation flows.
//
// The document layout is fixed: overview, story listing, mermaid
// diagram, screen inventory, navigation rules, connection matrix,
// missing-connection advisory, data-flow table, and static guideline
// sections. Heuristic sections are driven by explicit ordered rule
// lists with first-match-wins semantics.
package report

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aalvaropc/flowmap/internal/domain"
)

// Report carries everything needed to render one user-flows document.
type Report struct {
	Project     string
	Screens     *domain.ScreenSet
	Stories     []domain.UserStory
	Flows       []domain.NavigationFlow
	GeneratedAt time.Time
}

// Render produces the full document body. Rendering is pure: same
// inputs (including GeneratedAt) yield the same output.
func (r Report) Render() string {
	var b strings.Builder

	r.writeOverview(&b)
	r.writeStories(&b)
	r.writeNavigationMap(&b)
	r.writeConnectionAnalysis(&b)
	r.writeDataFlow(&b)
	writeGuidelines(&b)
	writeChecklists(&b)

	return b.String()
}

func (r Report) writeOverview(b *strings.Builder) {
	fmt.Fprintf(b, "# %s - User Flows & Screen Navigation\n\n", titleCase(r.Project))

	b.WriteString("## 1. Project Overview\n\n")
	fmt.Fprintf(b, "**Project**: %s\n", titleCase(strings.ReplaceAll(r.Project, "-", " ")))
	fmt.Fprintf(b, "**Generated**: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(b, "**Total Screens**: %d\n", r.Screens.Len())
	fmt.Fprintf(b, "**Total User Stories**: %d\n", len(r.Stories))
	fmt.Fprintf(b, "**Navigation Flows**: %d\n\n", len(r.Flows))
}

func (r Report) writeStories(b *strings.Builder) {
	if len(r.Stories) == 0 {
		return
	}

	b.WriteString("## 2. User Stories Summary\n\n")
	for _, s := range r.Stories {
		fmt.Fprintf(b, "**%s**: As a %s, I want %s, so that %s.\n\n", s.ID, s.Actor, s.Action, s.Benefit)
	}
}

func (r Report) writeNavigationMap(b *strings.Builder) {
	b.WriteString("## 3. Screen Navigation Map\n\n")
	b.WriteString("### 3.1 Visual Flow Diagram\n\n")
	b.WriteString(mermaidDiagram(r.Screens, r.Flows))
	b.WriteString("\n")

	b.WriteString("### 3.2 Screen Inventory\n\n")
	for i, name := range r.Screens.Names() {
		fmt.Fprintf(b, "%d. **%s**\n", i+1, name)
	}
	b.WriteString("\n")

	b.WriteString("### 3.3 Navigation Rules\n\n")
	b.WriteString("#### Forward Navigation (Tiến)\n")
	for _, f := range forwardFlows(r.Flows) {
		fmt.Fprintf(b, "- %s → %s\n", f.From, f.To)
	}

	b.WriteString("\n#### Backward Navigation (Lùi)\n")
	b.WriteString("- Tất cả màn hình hỗ trợ Back button\n")
	b.WriteString("- Navigation stack được quản lý tự động\n\n")
}

func (r Report) writeConnectionAnalysis(b *strings.Builder) {
	b.WriteString("## 4. Screen Connection Analysis\n\n")
	b.WriteString(connectionMatrix(r.Screens, r.Flows))

	b.WriteString("\n### Missing Connections Analysis\n\n")
	missing := missingConnections(r.Screens, r.Flows)
	if len(missing) == 0 {
		b.WriteString("✅ All expected connections are properly defined.\n")
		return
	}

	b.WriteString("**Potential Missing Connections**:\n")
	for _, m := range missing {
		fmt.Fprintf(b, "- %s → %s: %s\n", m.From, m.To, m.Reason)
	}
}

func (r Report) writeDataFlow(b *strings.Builder) {
	b.WriteString("\n## 5. Data Flow Between Screens\n\n")
	b.WriteString("### 5.1 Data Passing Rules\n\n")
	b.WriteString("| From Screen | To Screen | Data Passed | Method |\n")
	b.WriteString("|-------------|-----------|-------------|--------|\n")

	for _, f := range r.Flows {
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n", f.From, f.To, inferDataType(f), methodLabel)
	}
}

// forwardFlows keeps flows not typed as backward. No extraction path
// currently produces a backward flow, so this passes everything through.
func forwardFlows(flows []domain.NavigationFlow) []domain.NavigationFlow {
	out := make([]domain.NavigationFlow, 0, len(flows))
	for _, f := range flows {
		if strings.Contains(strings.ToLower(string(f.Type)), "back") {
			continue
		}
		out = append(out, f)
	}
	return out
}

func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
