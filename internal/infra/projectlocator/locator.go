// Package projectlocator finds a Flowmap workspace and resolves spec
// projects inside it.
package projectlocator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/aalvaropc/flowmap/internal/domain"
	"github.com/aalvaropc/flowmap/internal/ports"
)

// Finder locates a Flowmap workspace root by searching for flowmap.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "flowmap.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: "flowmap.yaml"}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "projectlocator.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "projectlocator.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "projectlocator.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// Catalog resolves and lists projects under the workspace specs directory.
type Catalog struct {
	cfg domain.Config
}

func NewCatalog(cfg domain.Config) *Catalog {
	return &Catalog{cfg: cfg}
}

var _ ports.ProjectCatalog = (*Catalog)(nil)

// ResolveProject derives the three document paths for a project and
// validates, in order: project directory, requirements file, design
// file. The first missing piece aborts with its own diagnostic; nothing
// is created or written here.
func (c *Catalog) ResolveProject(root, name string) (domain.ProjectRef, error) {
	dir := filepath.Join(root, c.cfg.Paths.SpecsDir, name)

	ref := domain.ProjectRef{
		Name:             name,
		Dir:              dir,
		RequirementsPath: filepath.Join(dir, c.cfg.Files.Requirements),
		DesignPath:       filepath.Join(dir, c.cfg.Files.Design),
		FlowsPath:        filepath.Join(dir, c.cfg.Files.Flows),
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return domain.ProjectRef{}, &domain.OpError{
			Op:   "projectlocator.resolve",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  fmt.Errorf("project directory does not exist: %w", domain.ErrNotFound),
		}
	}
	if _, err := os.Stat(ref.RequirementsPath); err != nil {
		return domain.ProjectRef{}, &domain.OpError{
			Op:   "projectlocator.resolve",
			Kind: domain.KindNotFound,
			Path: ref.RequirementsPath,
			Err:  fmt.Errorf("requirements file does not exist: %w", domain.ErrNotFound),
		}
	}
	if _, err := os.Stat(ref.DesignPath); err != nil {
		return domain.ProjectRef{}, &domain.OpError{
			Op:   "projectlocator.resolve",
			Kind: domain.KindNotFound,
			Path: ref.DesignPath,
			Err:  fmt.Errorf("design file does not exist: %w", domain.ErrNotFound),
		}
	}

	return ref, nil
}

// ListProjects returns every specs subdirectory that contains both the
// requirements and design files, sorted by name. Incomplete
// directories are skipped; validate reports what is missing.
func (c *Catalog) ListProjects(root string) ([]domain.ProjectRef, error) {
	specsDir := filepath.Join(root, c.cfg.Paths.SpecsDir)
	entries, err := os.ReadDir(specsDir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "projectlocator.list",
			Kind: domain.KindNotFound,
			Path: specsDir,
			Err:  err,
		}
	}

	var refs []domain.ProjectRef
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		ref, err := c.ResolveProject(root, e.Name())
		if err != nil {
			continue
		}
		refs = append(refs, ref)
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}
