package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"logreport/internal/report"
	"logreport/internal/service"
)

func newReportCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "report <filename> [level]",
		Short: "Print level counts for a log file, and the entries of one level",
		Example: `  logreport report app.log
  logreport report app.log error
  logreport report /var/log/app.log info --output json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, level := args[0], ""
			if len(args) == 2 {
				level = args[1]
			}

			var (
				svc      service.ReportService
				renderer report.Renderer
			)
			app := fx.New(coreModule(o.cfg), fx.Populate(&svc, &renderer))
			if err := app.Err(); err != nil {
				return err
			}

			result, err := svc.Generate(cmd.Context(), filename, level)
			if err != nil {
				return err
			}
			return renderer.Render(o.out, result)
		},
	}
}
