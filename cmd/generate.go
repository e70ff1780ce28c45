package cmd

import (
	"fmt"

	"github.com/gpg-rs/libgpg-error/gen"
	"github.com/gpg-rs/libgpg-error/validate"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	DryRun  bool
	Check   bool
	Targets []string
}

func newGenerateCmd(options *globalOptions) *cobra.Command {
	genOptions := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the constant files from the vendor tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, options, genOptions)
		},
	}
	addGenerateFlags(cmd, genOptions)
	return cmd
}

func addGenerateFlags(cmd *cobra.Command, genOptions *generateOptions) {
	cmd.Flags().BoolVar(&genOptions.DryRun, "dry-run", false, "Show what would be generated without writing")
	cmd.Flags().BoolVar(&genOptions.Check, "check", false, "Fail if any generated file is missing or out of date")
	cmd.Flags().StringSliceVar(&genOptions.Targets, "targets", nil, "Override manifest targets (comma-separated: "+fmt.Sprint(gen.All())+")")
}

func runGenerate(cmd *cobra.Command, options *globalOptions, genOptions *generateOptions) error {
	ctx := cmd.Context()
	fs := getFileSystem(ctx)
	logger := zerolog.Ctx(ctx)
	out := cmd.OutOrStdout()

	proj, err := loadProject(ctx, fs, options)
	if err != nil {
		return err
	}

	if !options.Quiet {
		fmt.Fprintf(out, "Generating from %s\n", proj.Root)
	}

	// All tables are read before anything is written
	tables, err := proj.extract(ctx, fs)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("sources", len(tables.Sources)).
		Int("codes", len(tables.Codes)).
		Int("errnos", len(tables.Errnos)).
		Msg("tables extracted")

	// Diagnostics are advisory; generation proceeds regardless
	for _, w := range validate.Validate(tables).Warnings {
		logger.Warn().Str("at", w.Path).Int("line", w.Line).Msg(w.Message)
	}

	targets := proj.Manifest.Targets
	if len(genOptions.Targets) > 0 {
		targets = genOptions.Targets
	}

	files, err := gen.Run(gen.NewContext(tables, proj.Manifest), targets)
	if err != nil {
		return err
	}

	result, err := gen.WriteFiles(ctx, fs, proj.Root, files, gen.WriteOptions{
		DryRun: genOptions.DryRun,
		Check:  genOptions.Check,
		Out:    out,
	})
	if err != nil {
		return err
	}

	if !options.Quiet {
		switch {
		case genOptions.Check:
			fmt.Fprintf(out, "%d generated file(s) up to date\n", result.Unchanged)
		case genOptions.DryRun:
			fmt.Fprintf(out, "Would generate %d files in %s\n", len(files), proj.Root)
		default:
			fmt.Fprintf(out, "Generated %d files in %s (%d declarations)\n", result.Written, proj.Root, tables.Len())
		}
	}
	return nil
}
