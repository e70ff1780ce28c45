package cmd

import (
	"context"

	"github.com/spf13/afero"
)

type ContextKey string

const (
	ContextKeyFileSystem ContextKey = "filesystem"
)

// getFileSystem returns the filesystem carried by ctx, or the OS filesystem.
func getFileSystem(ctx context.Context) afero.Fs {
	if fs, ok := ctx.Value(ContextKeyFileSystem).(afero.Fs); ok && fs != nil {
		return fs
	}
	return afero.NewOsFs()
}
