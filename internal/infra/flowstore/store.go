// Package flowstore persists generated user-flows documents.
package flowstore

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/flowmap/internal/domain"
	"github.com/aalvaropc/flowmap/internal/ports"
)

type Store struct{}

func NewStore() *Store {
	return &Store{}
}

var _ ports.FlowStore = (*Store)(nil)

// SaveFlows writes the document to the project's flows path, fully
// replacing any previous version. No backup is kept.
func (s *Store) SaveFlows(ref domain.ProjectRef, content string) (string, error) {
	path := ref.FlowsPath

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "flowstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "flowstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return filepath.Clean(path), nil
}
