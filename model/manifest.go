package model

// Manifest is the top-level structure of an mkerrcodes.yaml file.
// Every field is optional; zero values are filled from the default tags.
type Manifest struct {
	Tables  TablePaths  `yaml:"tables"`
	Targets []string    `yaml:"targets,omitempty" default:"[\"rust_sys\",\"rust\"]"`
	Outputs OutputPaths `yaml:"outputs"`
	Go      GoOptions   `yaml:"go"`
}

// TablePaths locates the vendor tables, relative to the project root.
type TablePaths struct {
	Sources string `yaml:"sources,omitempty" default:"vendor/err-sources.h.in"`
	Codes   string `yaml:"codes,omitempty" default:"vendor/err-codes.h.in"`
	Errnos  string `yaml:"errnos,omitempty" default:"vendor/errnos.in"`
}

// Path returns the configured table path for kind.
func (p TablePaths) Path(kind TableKind) string {
	switch kind {
	case TableSources:
		return p.Sources
	case TableCodes:
		return p.Codes
	case TableErrnos:
		return p.Errnos
	default:
		return ""
	}
}

// OutputPaths locates each generator's output file, relative to the project root.
type OutputPaths struct {
	RustSys string `yaml:"rust_sys,omitempty" default:"libgpg-error-sys/src/consts.rs"`
	Rust    string `yaml:"rust,omitempty" default:"src/consts.rs"`
	Go      string `yaml:"go,omitempty" default:"gpgerror/consts_gen.go"`
}

// GoOptions configures the Go constants target.
type GoOptions struct {
	Package     string `yaml:"package,omitempty" default:"gpgerror"`
	SourceType  string `yaml:"source_type,omitempty" default:"ErrorSource"`
	CodeType    string `yaml:"code_type,omitempty" default:"Code"`
	SystemError string `yaml:"system_error,omitempty" default:"SystemError"`
}
