package usecase

import (
	"context"

	"github.com/aalvaropc/flowmap/internal/domain"
	"github.com/aalvaropc/flowmap/internal/ports"
)

type ValidateProject struct {
	catalog ports.ProjectCatalog
}

func NewValidateProject(catalog ports.ProjectCatalog) *ValidateProject {
	return &ValidateProject{catalog: catalog}
}

// Execute checks the project structure without extracting or writing
// anything: project directory, requirements file, design file, in that
// order. The first missing piece is returned as a not_found error.
func (uc *ValidateProject) Execute(ctx context.Context, root, name string) (domain.ProjectRef, error) {
	if err := ctx.Err(); err != nil {
		return domain.ProjectRef{}, err
	}
	return uc.catalog.ResolveProject(root, name)
}
