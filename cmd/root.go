package cmd

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	Verbose bool
	Quiet   bool
	Root    string
	Config  string
}

// NewRootCmd builds the mkerrcodes command tree. Invoked without a
// subcommand it generates with the project's defaults.
func NewRootCmd() *cobra.Command {
	options := &globalOptions{}
	genOptions := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "mkerrcodes",
		Short: "Generate libgpg-error constant bindings from the vendor tables",
		Long: "mkerrcodes reads the libgpg-error error source, error code and errno tables\n" +
			"and writes the raw constants of the -sys crate and the wrapped constants\n" +
			"of the safe crate. Run without a subcommand it behaves like 'generate'.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd, options)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, options, genOptions)
		},
	}

	cmd.PersistentFlags().BoolVarP(&options.Verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&options.Quiet, "quiet", "q", false, "Suppress all output except errors")
	cmd.PersistentFlags().StringVar(&options.Root, "root", "", "Project root (default: search upward for the vendor tables)")
	cmd.PersistentFlags().StringVarP(&options.Config, "config", "c", "", "Manifest file (default: <root>/mkerrcodes.yaml when present)")
	addGenerateFlags(cmd, genOptions)

	cmd.AddCommand(newGenerateCmd(options))
	cmd.AddCommand(newValidateCmd(options))
	cmd.AddCommand(newInitCmd(options))
	cmd.AddCommand(newDumpSchemaCmd(options))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// setupLogger attaches a console logger writing to the command's stderr.
func setupLogger(cmd *cobra.Command, options *globalOptions) {
	level := zerolog.InfoLevel
	switch {
	case options.Quiet:
		level = zerolog.ErrorLevel
	case options.Verbose:
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}).
		Level(level).
		With().
		Timestamp().
		Str("logger", cmd.Name()).
		Logger()

	cmd.SetContext(logger.WithContext(cmd.Context()))
}
