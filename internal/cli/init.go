package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/flowmap/internal/domain"
	"github.com/aalvaropc/flowmap/internal/infra/fsworkspace"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize a flowmap workspace",
		RunE: func(_ *cobra.Command, _ []string) error {
			root := path
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}
			abs, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			spec := domain.WorkspaceSpec{Root: abs}
			if err := fsworkspace.NewInitializer().Init(spec, force); err != nil {
				return err
			}

			fmt.Printf("Initialized flowmap workspace at %s\n", abs)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "Workspace root to initialize (default: current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing workspace files")
	return c
}
