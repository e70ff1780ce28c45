package cmd

import (
	"fmt"

	"github.com/gpg-rs/libgpg-error/loader"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newDumpSchemaCmd(options *globalOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "dump_schema",
		Short: "Print the built-in manifest JSON Schema",
		Long:  "Prints the JSON Schema used to validate mkerrcodes.yaml manifests. Use -o to write to a file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := loader.SchemaJSON()
			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), schema)
				return nil
			}
			fs := getFileSystem(cmd.Context())
			if err := afero.WriteFile(fs, output, []byte(schema+"\n"), 0644); err != nil {
				return fmt.Errorf("writing schema to %s: %w", output, err)
			}
			if !options.Quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "Schema written to %s\n", output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write schema to file instead of stdout")
	return cmd
}
