package extract

import "github.com/aalvaropc/flowmap/internal/domain"

// Screens scans a requirements document for screen names.
//
// Two passes feed one deduplicated set: the screen rules over the whole
// document, then the same rules restricted to user-story spans. The set
// keeps first-seen order, so iteration is deterministic for a given
// input.
func Screens(content string) *domain.ScreenSet {
	set := domain.NewScreenSet()

	collectScreens(set, content)

	for _, block := range storyBlockRe.FindAllString(content, -1) {
		collectScreens(set, block)
	}

	return set
}

func collectScreens(set *domain.ScreenSet, text string) {
	for _, re := range screenRules {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if name, ok := normalizeName(m[1]); ok {
				set.Add(name)
			}
		}
	}
}
