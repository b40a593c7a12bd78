package ports

import "github.com/aalvaropc/flowmap/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}

// ProjectScaffolder creates a new spec project with template documents.
type ProjectScaffolder interface {
	NewProject(root string, cfg domain.Config, name string, force bool) (domain.ProjectRef, error)
}
