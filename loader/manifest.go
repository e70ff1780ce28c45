package loader

import (
	"path/filepath"

	"github.com/creasty/defaults"
	"github.com/gpg-rs/libgpg-error/model"
	"github.com/samber/oops"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the manifest name looked up at the project root.
const ManifestFile = "mkerrcodes.yaml"

// DefaultManifest returns a manifest with every field at its default:
// the vendor tables under vendor/ and the two Rust outputs.
func DefaultManifest() (*model.Manifest, error) {
	var m model.Manifest
	if err := defaults.Set(&m); err != nil {
		return nil, oops.In("loader").Wrapf(err, "applying manifest defaults")
	}
	return &m, nil
}

// LoadManifest reads and parses a YAML manifest file.
// It validates the YAML against the JSON Schema before unmarshalling,
// then fills every omitted field with its default.
func LoadManifest(fs afero.Fs, path string) (*model.Manifest, error) {
	errorBuilder := oops.
		In("loader").
		With("path", path)

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errorBuilder.Wrapf(err, "reading manifest")
	}

	if err := ValidateSchema(data); err != nil {
		return nil, errorBuilder.Wrapf(err, "schema validation")
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, errorBuilder.Wrap(err)
	}
	return m, nil
}

// ParseManifest unmarshals manifest YAML without schema validation and applies defaults.
func ParseManifest(data []byte) (*model.Manifest, error) {
	var m model.Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, oops.In("loader").Wrapf(err, "parsing manifest")
	}
	if err := defaults.Set(&m); err != nil {
		return nil, oops.In("loader").Wrapf(err, "applying manifest defaults")
	}
	return &m, nil
}

// FindManifest returns the manifest to use for root: explicit when non-empty,
// otherwise <root>/mkerrcodes.yaml if it exists. When neither applies the
// defaults are returned.
func FindManifest(fs afero.Fs, root, explicit string) (*model.Manifest, string, error) {
	if explicit != "" {
		m, err := LoadManifest(fs, explicit)
		return m, explicit, err
	}

	candidate := filepath.Join(root, ManifestFile)
	if ok, err := afero.Exists(fs, candidate); err == nil && ok {
		m, err := LoadManifest(fs, candidate)
		return m, candidate, err
	}

	m, err := DefaultManifest()
	return m, "", err
}
