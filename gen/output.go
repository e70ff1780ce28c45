package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ErrStale is returned by WriteFiles in check mode when any output differs
// from what would be generated.
var ErrStale = errors.New("generated files are out of date")

// WriteOptions controls how WriteFiles treats the rendered outputs.
type WriteOptions struct {
	DryRun bool      // Report what would be written, touch nothing
	Check  bool      // Compare against files on disk, touch nothing
	Out    io.Writer // Receives "Would write" and stale-file lines; may be nil
}

// WriteResult summarizes a WriteFiles call.
type WriteResult struct {
	Written   int
	Unchanged int
	Stale     []string
}

// WriteFiles writes every file relative to root. Each output is fully
// replaced: content goes to a sibling temp file which is then renamed over
// the target.
func WriteFiles(ctx context.Context, fs afero.Fs, root string, files []*OutputFile, opts WriteOptions) (*WriteResult, error) {
	logger := zerolog.Ctx(ctx)
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	result := &WriteResult{}
	for _, f := range files {
		outPath := filepath.Join(root, f.Path)

		if opts.Check {
			existing, err := afero.ReadFile(fs, outPath)
			switch {
			case err == nil && bytes.Equal(existing, f.Content):
				result.Unchanged++
				logger.Debug().Str("path", outPath).Msg("up to date")
			case err == nil || errors.Is(err, os.ErrNotExist):
				result.Stale = append(result.Stale, outPath)
				fmt.Fprintf(out, "  Stale: %s\n", outPath)
			default:
				return nil, fmt.Errorf("reading %s: %w", outPath, err)
			}
			continue
		}

		if opts.DryRun {
			fmt.Fprintf(out, "  Would write: %s\n", outPath)
			continue
		}

		if err := writeFile(fs, outPath, f.Content); err != nil {
			return nil, err
		}
		result.Written++
		logger.Debug().Str("path", outPath).Int("bytes", len(f.Content)).Msg("wrote")
	}

	if opts.Check && len(result.Stale) > 0 {
		return result, fmt.Errorf("%w: %d file(s) differ; rerun mkerrcodes", ErrStale, len(result.Stale))
	}
	return result, nil
}

func writeFile(fs afero.Fs, path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		fs.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := fs.Chmod(tmpName, 0644); err != nil {
		fs.Remove(tmpName)
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := fs.Rename(tmpName, path); err != nil {
		fs.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
