package report

import (
	"strings"

	"github.com/aalvaropc/flowmap/internal/domain"
)

// dataRule guesses what data an edge passes based on the screen names.
// Rules are checked in order; the first match wins.
type dataRule struct {
	Name    string
	Matches func(from, to string) bool
	Label   string
}

var dataRules = []dataRule{
	{
		Name:    "list-to-detail",
		Matches: func(from, to string) bool { return strings.Contains(from, "list") && strings.Contains(to, "detail") },
		Label:   "Item ID, Item Data",
	},
	{
		Name:    "form-source",
		Matches: func(from, _ string) bool { return strings.Contains(from, "form") || strings.Contains(from, "input") },
		Label:   "Form Data",
	},
	{
		Name:    "settings-source",
		Matches: func(from, _ string) bool { return strings.Contains(from, "setting") },
		Label:   "Configuration Data",
	},
}

const defaultDataLabel = "Navigation State"

// methodLabel is the fixed passing-mechanism column value.
const methodLabel = "Navigation Args"

func inferDataType(flow domain.NavigationFlow) string {
	from := strings.ToLower(flow.From)
	to := strings.ToLower(flow.To)

	for _, rule := range dataRules {
		if rule.Matches(from, to) {
			return rule.Label
		}
	}
	return defaultDataLabel
}
