// Package textsource reads the two free-text input documents of a
// project from the filesystem.
package textsource

import (
	"os"

	"github.com/aalvaropc/flowmap/internal/domain"
	"github.com/aalvaropc/flowmap/internal/ports"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.DocumentSource = (*Loader)(nil)

// LoadDocuments reads both documents fully into memory. The inputs are
// informal UTF-8 text; no parsing or validation happens here beyond the
// read itself.
func (l *Loader) LoadDocuments(ref domain.ProjectRef) (domain.SourceDocs, error) {
	req, err := os.ReadFile(ref.RequirementsPath)
	if err != nil {
		return domain.SourceDocs{}, &domain.OpError{
			Op:   "textsource.load",
			Kind: domain.KindNotFound,
			Path: ref.RequirementsPath,
			Err:  err,
		}
	}

	design, err := os.ReadFile(ref.DesignPath)
	if err != nil {
		return domain.SourceDocs{}, &domain.OpError{
			Op:   "textsource.load",
			Kind: domain.KindNotFound,
			Path: ref.DesignPath,
			Err:  err,
		}
	}

	return domain.SourceDocs{
		Requirements: string(req),
		Design:       string(design),
	}, nil
}
