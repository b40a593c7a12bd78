package domain

import "fmt"

// UserStory is one "As a ..., I want ..., So that ..." triple extracted
// from a requirements document. Identity is the sequential ID, assigned
// in source-text order.
type UserStory struct {
	ID      string
	Actor   string
	Action  string
	Benefit string
}

// StoryID formats a 1-based story counter as "US001", "US002", ...
func StoryID(n int) string {
	return fmt.Sprintf("US%03d", n)
}
