package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/flowmap/internal/infra/logger"
	"github.com/aalvaropc/flowmap/internal/usecase"
)

func generateCmd(debug *bool) *cobra.Command {
	var workspace string
	var format string

	c := &cobra.Command{
		Use:   "generate <project>",
		Short: "Generate the user-flows document for a project",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  ws.root,
				Debug: *debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			out := cmd.OutOrStdout()

			// Progress lines would corrupt the json payload; the
			// machine format gets only the summary object.
			progress := usecase.ProgressFunc(func(string, ...any) {})
			if format != "json" {
				progress = func(f string, a ...any) { printStage(out, f, a...) }
				if *debug && logger.IsReady() == nil {
					printStage(out, "Log: %s", logger.Path())
				}
			}

			ref, err := ws.catalog.ResolveProject(ws.root, args[0])
			if err != nil {
				return err
			}
			progress("Generating user flows for %s", ref.Name)

			logger.L().Info("generate start",
				"project", ref.Name,
				"requirements", ref.RequirementsPath,
				"design", ref.DesignPath,
			)

			uc := usecase.NewGenerateFlows(ws.docs, ws.store, usecase.WithProgress(progress))
			sum, err := uc.Execute(cmd.Context(), ref)
			if err != nil {
				logger.L().Error("generate failed", "project", ref.Name, "err", err)
				return err
			}

			logger.L().Info("generate done",
				"project", sum.Project,
				"screens", sum.Screens,
				"flows", sum.Flows,
				"output", sum.OutputPath,
			)

			return printSummary(out, sum, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
