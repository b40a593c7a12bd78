package extract

import "github.com/aalvaropc/flowmap/internal/domain"

// Navigation scans a design document for directed screen-to-screen
// edges. Every rule's matches are concatenated in rule order; the same
// conceptual edge matched by more than one rule stays duplicated.
func Navigation(content string) []domain.NavigationFlow {
	var flows []domain.NavigationFlow

	for _, rule := range navRules {
		for _, m := range rule.re.FindAllStringSubmatch(content, -1) {
			from, okFrom := normalizeName(m[1])
			to, okTo := normalizeName(m[2])
			if !okFrom || !okTo {
				continue
			}

			flows = append(flows, domain.NavigationFlow{
				From: from,
				To:   to,
				Type: domain.FlowNavigation,
			})
		}
	}

	return flows
}
