package ports

import "github.com/aalvaropc/flowmap/internal/domain"

// FlowStore persists the generated user-flows document, overwriting any
// previous version.
type FlowStore interface {
	SaveFlows(ref domain.ProjectRef, content string) (path string, err error)
}
