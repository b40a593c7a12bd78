package domain

// FlowType classifies a navigation edge. Extraction currently only ever
// produces FlowNavigation.
type FlowType string

const FlowNavigation FlowType = "navigation"

// NavigationFlow is a directed screen-to-screen edge extracted from a
// design document. Identical edges matched by more than one pattern are
// kept as duplicates, not collapsed.
type NavigationFlow struct {
	From string
	To   string
	Type FlowType
}
