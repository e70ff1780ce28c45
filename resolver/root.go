package resolver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// RootEnvVar overrides project root discovery when --root is not given.
const RootEnvVar = "MKERRCODES_ROOT"

// ResolveRoot finds the project root using the resolution order:
// 1. Explicit flag path (if non-empty)
// 2. MKERRCODES_ROOT environment variable
// 3. Nearest ancestor of the working directory containing marker
// 4. Nearest ancestor of the running executable's directory containing marker
func ResolveRoot(fs afero.Fs, flagRoot, marker string) (string, error) {
	if flagRoot != "" {
		if ok, _ := afero.DirExists(fs, flagRoot); !ok {
			return "", fmt.Errorf("project root not found at specified path: %s", flagRoot)
		}
		return flagRoot, nil
	}

	if envRoot := os.Getenv(RootEnvVar); envRoot != "" {
		if ok, _ := afero.DirExists(fs, envRoot); !ok {
			return "", fmt.Errorf("project root not found at %s: %s", RootEnvVar, envRoot)
		}
		return envRoot, nil
	}

	var starts []string
	if wd, err := os.Getwd(); err == nil {
		starts = append(starts, wd)
	}
	if exe, err := os.Executable(); err == nil {
		starts = append(starts, filepath.Dir(exe))
	}

	if root, ok := SearchRoot(fs, starts, marker); ok {
		return root, nil
	}
	return "", fmt.Errorf("no directory containing %s found above %v; set --root flag or %s environment variable", marker, starts, RootEnvVar)
}

// SearchRoot walks up from each start directory in order and returns the
// first directory that contains marker.
func SearchRoot(fs afero.Fs, starts []string, marker string) (string, bool) {
	for _, start := range starts {
		if start == "" {
			continue
		}
		dir := filepath.Clean(start)
		for {
			if ok, _ := afero.Exists(fs, filepath.Join(dir, marker)); ok {
				return dir, true
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	return "", false
}
