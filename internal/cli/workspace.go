package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/flowmap/internal/domain"
	"github.com/aalvaropc/flowmap/internal/infra/flowstore"
	"github.com/aalvaropc/flowmap/internal/infra/projectlocator"
	"github.com/aalvaropc/flowmap/internal/infra/textsource"
	"github.com/aalvaropc/flowmap/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	catalog ports.ProjectCatalog
	docs    ports.DocumentSource
	store   ports.FlowStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := projectlocator.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		catalog: projectlocator.NewCatalog(cfg),
		docs:    textsource.NewLoader(),
		store:   flowstore.NewStore(),
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := projectlocator.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `flowmap init`): %w", wd, err)
	}
	return root, nil
}
