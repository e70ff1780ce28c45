package cmd

import (
	"fmt"

	"github.com/gpg-rs/libgpg-error/validate"
	"github.com/spf13/cobra"
)

func newValidateCmd(options *globalOptions) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the vendor tables without generating",
		Long: "Reads the three tables and reports duplicate names or values, values outside\n" +
			"the libgpg-error encoding, and empty tables. Warnings only fail with --strict.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, options, strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as errors")
	return cmd
}

func runValidate(cmd *cobra.Command, options *globalOptions, strict bool) error {
	ctx := cmd.Context()
	fs := getFileSystem(ctx)
	out := cmd.OutOrStdout()

	proj, err := loadProject(ctx, fs, options)
	if err != nil {
		return err
	}

	if !options.Quiet {
		fmt.Fprintf(out, "Validating %s\n", proj.Root)
	}

	tables, err := proj.extract(ctx, fs)
	if err != nil {
		return err
	}

	if options.Verbose {
		fmt.Fprintf(out, "  Sources: %d (%s)\n", len(tables.Sources), proj.Manifest.Tables.Sources)
		fmt.Fprintf(out, "  Codes:   %d (%s)\n", len(tables.Codes), proj.Manifest.Tables.Codes)
		fmt.Fprintf(out, "  Errnos:  %d (%s)\n", len(tables.Errnos), proj.Manifest.Tables.Errnos)
	}

	result := validate.Validate(tables)
	if !result.IsClean() {
		if strict {
			return fmt.Errorf("validation failed:\n%s", result.Error())
		}
		if !options.Quiet {
			fmt.Fprintf(out, "%s\n", result.Error())
			fmt.Fprintf(out, "Validation passed with %d warning(s).\n", len(result.Warnings))
		}
		return nil
	}

	if !options.Quiet {
		fmt.Fprintln(out, "Validation passed.")
	}
	return nil
}
