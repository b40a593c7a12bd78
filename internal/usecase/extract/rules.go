// Package extract mines free-text specification documents for screens,
// user stories, and navigation edges using fixed pattern-rule lists.
//
// Every rule list is package-level and ordered so each rule can be unit
// tested in isolation. Matching is heuristic by design: there is no
// semantic model behind it, only trimming, title-casing, and a minimum
// length filter.
package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// wordRun matches a run of word characters and whitespace. Unicode
// classes instead of \w so the bilingual patterns match accented names.
const wordRun = `[\p{L}\p{N}_\s]+`

// screenLeads are the keyword prefixes that introduce a screen name in a
// requirements document, in evaluation order.
var screenLeads = []string{
	"màn hình",
	"screen",
	"page",
	"view",
	"UI",
	"interface",
}

var screenRules = compileScreenRules(screenLeads)

func compileScreenRules(leads []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(leads))
	for _, lead := range leads {
		out = append(out, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(lead)+` (`+wordRun+`)`))
	}
	return out
}

// storyBlockRe isolates one user-story span; the screen rules are
// re-applied inside each span during screen extraction.
var storyBlockRe = regexp.MustCompile(`(?is)As a.*?I want.*?So that.*?`)

// storyRe captures actor / action / benefit from the canonical
// three-clause story sentence. The captures may span line breaks.
var storyRe = regexp.MustCompile(`(?i)As a ([^,]+),\s*I want ([^,]+),\s*So that ([^.]+)`)

// edgeRule is one navigation pattern; the first capture is always the
// source screen and the second the destination.
type edgeRule struct {
	Name string
	re   *regexp.Regexp
}

// navRules, in evaluation order. Overlapping rules (from-to also matches
// inside navigate-from-to text) intentionally produce duplicate edges.
var navRules = []edgeRule{
	{Name: "arrow", re: regexp.MustCompile(`(?i)(` + wordRun + `)\s*→\s*(` + wordRun + `)`)},
	{Name: "ascii-arrow", re: regexp.MustCompile(`(?i)(` + wordRun + `)\s*->\s*(` + wordRun + `)`)},
	{Name: "from-to", re: regexp.MustCompile(`(?i)from (` + wordRun + `) to (` + wordRun + `)`)},
	{Name: "navigate-from-to", re: regexp.MustCompile(`(?i)navigate from (` + wordRun + `) to (` + wordRun + `)`)},
	{Name: "chuyen-tu-sang", re: regexp.MustCompile(`(?i)chuyển từ (` + wordRun + `) sang (` + wordRun + `)`)},
}

// Names at or below this rune count are noise from the broad patterns.
const minNameRunes = 2

func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// normalizeName trims and title-cases a raw capture, rejecting names
// that are too short to be a real screen name.
func normalizeName(raw string) (string, bool) {
	name := titleCase(strings.TrimSpace(raw))
	if utf8.RuneCountInString(name) <= minNameRunes {
		return "", false
	}
	return name, true
}
