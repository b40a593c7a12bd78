// Package fsworkspace scaffolds Flowmap workspaces and spec projects
// on the local filesystem.
package fsworkspace

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/flowmap/internal/domain"
	"github.com/aalvaropc/flowmap/internal/ports"
)

//go:embed templates
var templatesFS embed.FS

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)
var _ ports.ProjectScaffolder = (*Initializer)(nil)

// Init creates the workspace skeleton: flowmap.yaml, the specs
// directory, the log directory, and .gitignore entries. Existing files
// are left alone unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	dirs := []string{
		filepath.Join(root, "specs"),
		filepath.Join(root, ".flowmap", "logs"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}

	if err := writeTemplate("templates/flowmap.yaml", filepath.Join(root, "flowmap.yaml"), force); err != nil {
		return err
	}

	return ensureGitignore(root)
}

// NewProject creates a specs subdirectory with template requirements
// and design documents. It refuses to touch an existing project unless
// force is set.
func (i *Initializer) NewProject(root string, cfg domain.Config, name string, force bool) (domain.ProjectRef, error) {
	if strings.TrimSpace(name) == "" {
		return domain.ProjectRef{}, &domain.OpError{
			Op:   "fsworkspace.newproject",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("project name is required"),
		}
	}

	dir := filepath.Join(root, cfg.Paths.SpecsDir, name)
	if !force {
		if _, err := os.Stat(dir); err == nil {
			return domain.ProjectRef{}, &domain.OpError{
				Op:   "fsworkspace.newproject",
				Kind: domain.KindInvalidConfig,
				Path: dir,
				Err:  fmt.Errorf("project already exists (use --force to overwrite)"),
			}
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.ProjectRef{}, &domain.OpError{
			Op:   "fsworkspace.newproject",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ref := domain.ProjectRef{
		Name:             name,
		Dir:              dir,
		RequirementsPath: filepath.Join(dir, cfg.Files.Requirements),
		DesignPath:       filepath.Join(dir, cfg.Files.Design),
		FlowsPath:        filepath.Join(dir, cfg.Files.Flows),
	}

	if err := writeTemplate("templates/project/requirements.md", ref.RequirementsPath, force); err != nil {
		return domain.ProjectRef{}, err
	}
	if err := writeTemplate("templates/project/design.md", ref.DesignPath, force); err != nil {
		return domain.ProjectRef{}, err
	}

	return ref, nil
}

func writeTemplate(src, dst string, force bool) error {
	if !force {
		if _, err := os.Stat(dst); err == nil {
			return nil
		}
	}

	b, err := fs.ReadFile(templatesFS, src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, b, 0o644)
}

func ensureGitignore(root string) error {
	const header = "# Flowmap"
	entries := []string{
		".flowmap/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 64)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
