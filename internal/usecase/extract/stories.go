package extract

import (
	"strings"

	"github.com/aalvaropc/flowmap/internal/domain"
)

// Stories scans a requirements document for "As a ..., I want ...,
// So that ..." sentences. Records keep source-text order and receive
// sequential US001-style ids; nothing is deduplicated or dropped.
func Stories(content string) []domain.UserStory {
	matches := storyRe.FindAllStringSubmatch(content, -1)

	out := make([]domain.UserStory, 0, len(matches))
	for i, m := range matches {
		out = append(out, domain.UserStory{
			ID:      domain.StoryID(i + 1),
			Actor:   strings.TrimSpace(m[1]),
			Action:  strings.TrimSpace(m[2]),
			Benefit: strings.TrimSpace(m[3]),
		})
	}
	return out
}
