package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"logreport/config"
)

type options struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	out     io.Writer
	errOut  io.Writer
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes args against a fresh command tree. Errors are reported on
// errOut and mapped to an exit status; nothing here exits the process.
func Run(args []string, out, errOut io.Writer) int {
	o := &options{v: viper.New(), out: out, errOut: errOut}
	root := newRootCommand(o)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.Execute(); err != nil {
		return reportError(errOut, err)
	}
	return ExitOK
}

func newRootCommand(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "logreport",
		Short: "Count log entries by level and list the entries of one level",
		Long: `logreport parses a log file whose lines look like

  2024-01-01 10:00:00 INFO Service started

counts the entries per level and prints them as a table, optionally followed
by every entry of one level. A single malformed line aborts the whole run.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: o.initConfig,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&o.cfgFile, "config", "c", "", "config file (default: .env in the working directory)")
	flags.String("log-level", "", "diagnostic log level: trace, debug, info, warn, error")
	flags.String("base-dir", "", "directory log file names are resolved against")
	flags.StringP("output", "o", "", "output format: text, json, yaml")
	flags.String("color", "", "colour level names: auto, always, never")

	_ = o.v.BindPFlag("LOG_LEVEL", flags.Lookup("log-level"))
	_ = o.v.BindPFlag("LOG_BASE_DIR", flags.Lookup("base-dir"))
	_ = o.v.BindPFlag("REPORT_OUTPUT", flags.Lookup("output"))
	_ = o.v.BindPFlag("REPORT_COLOR", flags.Lookup("color"))

	root.AddCommand(
		newReportCommand(o),
		newServeCommand(o),
		newWatchCommand(o),
	)
	return root
}

func (o *options) initConfig(cmd *cobra.Command, args []string) error {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: o.errOut, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	cfg, err := config.Load(o.v, o.cfgFile)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	o.cfg = cfg
	return nil
}
