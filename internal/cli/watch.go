package cli

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"logreport/internal/scheduler"
)

func newWatchCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <filename> [level]",
		Short: "Rebuild the report for a log file on a cron schedule",
		Long: `Rebuild and print the report for a log file once now and then on every
tick of a cron schedule (with a leading seconds field). Every run reads the
whole file again; a failed run is logged and the schedule continues.`,
		Example: `  logreport watch app.log error --schedule "0 */5 * * * *"`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := scheduler.Target{Filename: args[0], Out: o.out}
			if len(args) == 2 {
				target.Level = args[1]
			}

			var runner *scheduler.Runner
			app := fx.New(
				coreModule(o.cfg),
				fx.Supply(target),
				fx.Provide(
					scheduler.NewRunner,
					scheduler.NewScheduler,
				),
				fx.Invoke(func(*cron.Cron) {}),
				fx.Populate(&runner),
			)
			if err := app.Err(); err != nil {
				return err
			}

			if err := runner.RunOnce(cmd.Context()); err != nil {
				status, message := describeError(err)
				log.Error().Err(err).Int("status", status).Msg(message)
			}
			return runApp(app)
		},
	}

	cmd.Flags().String("schedule", "", "cron schedule with seconds, e.g. \"*/30 * * * * *\"")
	_ = o.v.BindPFlag("WATCH_SCHEDULE", cmd.Flags().Lookup("schedule"))
	return cmd
}
