package report

import (
	"strings"

	"github.com/aalvaropc/flowmap/internal/domain"
)

// connectionRule proposes a reason why two unconnected screens might
// need an edge. Rules are checked in order; the first match wins.
type connectionRule struct {
	Name    string
	Matches func(from, to string) bool
	Reason  string
}

var connectionRules = []connectionRule{
	{
		Name:    "list-to-detail",
		Matches: func(from, to string) bool { return strings.Contains(from, "list") && strings.Contains(to, "detail") },
		Reason:  "List to detail navigation",
	},
	{
		Name:    "from-main",
		Matches: func(from, _ string) bool { return strings.Contains(from, "main") || strings.Contains(from, "home") },
		Reason:  "Navigation from main screen",
	},
	{
		Name:    "to-settings",
		Matches: func(_, to string) bool { return strings.Contains(to, "setting") },
		Reason:  "Access to settings",
	},
	{
		Name:    "to-profile",
		Matches: func(_, to string) bool { return strings.Contains(to, "profile") },
		Reason:  "Access to user profile",
	},
}

// advisoryLimit caps the advisory list to keep the section readable.
const advisoryLimit = 5

type missingConnection struct {
	From, To, Reason string
}

// missingConnections scans every ordered pair of distinct screens
// lacking a direct edge and keeps the pairs a heuristic rule can
// justify. The scan order is the set's first-seen order (outer from,
// inner to); the result is truncated, not ranked.
func missingConnections(screens *domain.ScreenSet, flows []domain.NavigationFlow) []missingConnection {
	names := screens.Names()

	var out []missingConnection
	for _, from := range names {
		for _, to := range names {
			if from == to {
				continue
			}
			if hasConnection(flows, from, to) {
				continue
			}

			reason, ok := adviseConnection(from, to)
			if !ok {
				continue
			}

			out = append(out, missingConnection{From: from, To: to, Reason: reason})
			if len(out) == advisoryLimit {
				return out
			}
		}
	}
	return out
}

func adviseConnection(from, to string) (string, bool) {
	f := strings.ToLower(from)
	t := strings.ToLower(to)

	for _, rule := range connectionRules {
		if rule.Matches(f, t) {
			return rule.Reason, true
		}
	}
	return "", false
}
