package cmd

import (
	"context"
	"fmt"

	"github.com/gpg-rs/libgpg-error/loader"
	"github.com/gpg-rs/libgpg-error/model"
	"github.com/gpg-rs/libgpg-error/resolver"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// project is a resolved root plus the manifest that applies to it.
type project struct {
	Root         string
	Manifest     *model.Manifest
	ManifestPath string // empty when running on defaults
}

// loadProject resolves the project root and its manifest. An explicit
// --config is read first so its table paths can locate the root.
func loadProject(ctx context.Context, fs afero.Fs, options *globalOptions) (*project, error) {
	logger := zerolog.Ctx(ctx)

	// An explicit manifest is loaded once and used for both steps.
	var explicit *model.Manifest
	var marker model.TablePaths
	if options.Config != "" {
		m, err := loader.LoadManifest(fs, options.Config)
		if err != nil {
			return nil, fmt.Errorf("loading manifest: %w", err)
		}
		explicit = m
		marker = m.Tables
	} else {
		m, err := loader.DefaultManifest()
		if err != nil {
			return nil, err
		}
		marker = m.Tables
	}

	root, err := resolver.ResolveRoot(fs, options.Root, marker.Codes)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	manifest, manifestPath := explicit, options.Config
	if explicit == nil {
		manifest, manifestPath, err = loader.FindManifest(fs, root, "")
		if err != nil {
			return nil, fmt.Errorf("loading manifest: %w", err)
		}
	}

	logger.Debug().
		Str("root", root).
		Str("manifest", manifestPath).
		Msg("project resolved")

	return &project{Root: root, Manifest: manifest, ManifestPath: manifestPath}, nil
}

// extract reads the project's three tables.
func (p *project) extract(ctx context.Context, fs afero.Fs) (*model.Tables, error) {
	tables, err := resolver.Extract(ctx, fs, p.Root, resolver.TableFiles(p.Manifest.Tables))
	if err != nil {
		return nil, fmt.Errorf("extracting tables: %w", err)
	}
	return tables, nil
}
