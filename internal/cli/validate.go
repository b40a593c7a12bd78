package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/flowmap/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "validate <project>",
		Short: "Validate a project's structure (no generation)",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateProject(ws.catalog)
			if _, err := uc.Execute(cmd.Context(), ws.root, args[0]); err != nil {
				return err
			}

			fmt.Println("OK")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return c
}
