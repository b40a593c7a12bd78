package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/flowmap/internal/infra/fsworkspace"
)

func projectsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "projects",
		Short: "Manage projects in a workspace",
	}

	c.AddCommand(projectsListCmd())
	c.AddCommand(projectsNewCmd())
	return c
}

func projectsListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.catalog.ListProjects(ws.root)
			if err != nil {
				return err
			}

			if len(refs) == 0 {
				fmt.Println("(no projects found)")
				return nil
			}

			fmt.Printf("Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Dir)
				fmt.Printf("- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func projectsNewCmd() *cobra.Command {
	var workspace string
	var force bool

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Scaffold a new project with template spec documents",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			ref, err := fsworkspace.NewInitializer().NewProject(ws.root, ws.cfg, args[0], force)
			if err != nil {
				return err
			}

			rel, _ := filepath.Rel(ws.root, ref.Dir)
			fmt.Printf("Created project %s (%s)\n", ref.Name, rel)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing project files")
	return cmd
}
