package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/gpg-rs/libgpg-error/loader"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newInitCmd(options *globalOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter mkerrcodes.yaml with the default paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, options, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing manifest")
	return cmd
}

func runInit(cmd *cobra.Command, options *globalOptions, force bool) error {
	fs := getFileSystem(cmd.Context())

	dir := options.Root
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, loader.ManifestFile)

	if !force {
		if ok, _ := afero.Exists(fs, path); ok {
			return fmt.Errorf("%s already exists; use --force to overwrite", path)
		}
	}

	manifest, err := loader.DefaultManifest()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}

	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	if !options.Quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		fmt.Fprintf(cmd.OutOrStdout(), "\nNext: mkerrcodes validate --root %s\n", dir)
	}
	return nil
}
