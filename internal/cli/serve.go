package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"logreport/internal/controller"
)

func newServeCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve log reports over HTTP",
		Long: `Serve GET /api/v1/report?file=<name>&level=<level>&format=json|table.
File names are resolved inside the configured base directory only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				coreModule(o.cfg),
				fx.Provide(
					NewGinEngine,
					controller.NewReportController,
				),
				fx.Invoke(RegisterAPIRoutes),
			)
			if err := app.Err(); err != nil {
				return err
			}
			return runApp(app)
		},
	}

	cmd.Flags().String("port", "", "HTTP listen port")
	_ = o.v.BindPFlag("SERVER_PORT", cmd.Flags().Lookup("port"))
	return cmd
}
