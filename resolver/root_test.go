package resolver

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

const testMarker = "vendor/err-codes.h.in"

func markedFs(t *testing.T, root string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, filepath.Join(root, testMarker), []byte("0\tGPG_ERR_NO_ERROR\n"), 0644); err != nil {
		t.Fatalf("writing marker: %v", err)
	}
	return fs
}

func TestResolveRoot_ExplicitPath(t *testing.T) {
	fs := markedFs(t, "/src/libgpg-error")

	root, err := ResolveRoot(fs, "/src/libgpg-error", testMarker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "/src/libgpg-error" {
		t.Errorf("expected %q, got %q", "/src/libgpg-error", root)
	}
}

func TestResolveRoot_ExplicitPathNotFound(t *testing.T) {
	if _, err := ResolveRoot(afero.NewMemMapFs(), "/nonexistent", testMarker); err == nil {
		t.Error("expected error for nonexistent explicit root")
	}
}

func TestResolveRoot_EnvVar(t *testing.T) {
	fs := markedFs(t, "/env/root")
	t.Setenv(RootEnvVar, "/env/root")

	root, err := ResolveRoot(fs, "", testMarker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "/env/root" {
		t.Errorf("expected %q, got %q", "/env/root", root)
	}
}

func TestResolveRoot_EnvVarNotFound(t *testing.T) {
	t.Setenv(RootEnvVar, "/nonexistent")
	if _, err := ResolveRoot(afero.NewMemMapFs(), "", testMarker); err == nil {
		t.Error("expected error for nonexistent env root")
	}
}

func TestResolveRoot_FlagTakesPrecedence(t *testing.T) {
	fs := markedFs(t, "/flag/root")
	afero.WriteFile(fs, filepath.Join("/env/root", testMarker), nil, 0644)
	t.Setenv(RootEnvVar, "/env/root")

	root, err := ResolveRoot(fs, "/flag/root", testMarker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "/flag/root" {
		t.Errorf("expected flag root to take precedence, got %q", root)
	}
}

func TestSearchRoot_WalksUp(t *testing.T) {
	fs := markedFs(t, "/work/gpg-error")

	root, ok := SearchRoot(fs, []string{"/work/gpg-error/tools/mkerrcodes"}, testMarker)
	if !ok {
		t.Fatal("expected root to be found")
	}
	if root != "/work/gpg-error" {
		t.Errorf("expected %q, got %q", "/work/gpg-error", root)
	}
}

func TestSearchRoot_SecondStart(t *testing.T) {
	fs := markedFs(t, "/opt/checkout")

	root, ok := SearchRoot(fs, []string{"/home/user", "", "/opt/checkout/bin"}, testMarker)
	if !ok {
		t.Fatal("expected root to be found from second start directory")
	}
	if root != "/opt/checkout" {
		t.Errorf("expected %q, got %q", "/opt/checkout", root)
	}
}

func TestSearchRoot_NotFound(t *testing.T) {
	if _, ok := SearchRoot(afero.NewMemMapFs(), []string{"/a/b/c"}, testMarker); ok {
		t.Error("expected no root to be found")
	}
}
