package ports

import "github.com/aalvaropc/flowmap/internal/domain"

// ProjectCatalog resolves and enumerates spec projects inside a workspace.
type ProjectCatalog interface {
	// ResolveProject derives the three document paths for a project and
	// fails fast if the project directory, requirements file, or design
	// file is missing.
	ResolveProject(root, name string) (domain.ProjectRef, error)

	ListProjects(root string) ([]domain.ProjectRef, error)
}
