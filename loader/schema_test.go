package loader

import (
	"encoding/json"
	"testing"
)

func TestSchemaJSON_IsValidJSON(t *testing.T) {
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(SchemaJSON()), &doc); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	if doc["title"] != "mkerrcodes manifest" {
		t.Errorf("unexpected schema title %v", doc["title"])
	}
}

func TestValidateSchema_Empty(t *testing.T) {
	if err := ValidateSchema([]byte("")); err != nil {
		t.Errorf("expected empty manifest to be valid, got error: %v", err)
	}
}

func TestValidateSchema_ValidFull(t *testing.T) {
	yaml := `
tables:
  sources: vendor/err-sources.h.in
  codes: vendor/err-codes.h.in
  errnos: vendor/errnos.in
targets: [rust_sys, rust, go]
outputs:
  rust_sys: libgpg-error-sys/src/consts.rs
  rust: src/consts.rs
  go: gpgerror/consts_gen.go
go:
  package: gpgerror
  source_type: ErrorSource
  code_type: Code
  system_error: SystemError
`
	if err := ValidateSchema([]byte(yaml)); err != nil {
		t.Errorf("expected valid manifest, got error: %v", err)
	}
}

func TestValidateSchema_UnknownTarget(t *testing.T) {
	yaml := `
targets: [rust, python]
`
	if err := ValidateSchema([]byte(yaml)); err == nil {
		t.Error("expected error for unknown target 'python'")
	}
}

func TestValidateSchema_DuplicateTarget(t *testing.T) {
	yaml := `
targets: [rust, rust]
`
	if err := ValidateSchema([]byte(yaml)); err == nil {
		t.Error("expected error for duplicate target")
	}
}

func TestValidateSchema_EmptyTargets(t *testing.T) {
	if err := ValidateSchema([]byte("targets: []\n")); err == nil {
		t.Error("expected error for empty target list")
	}
}

func TestValidateSchema_AbsoluteTablePath(t *testing.T) {
	yaml := `
tables:
  codes: /usr/share/libgpg-error/err-codes.h.in
`
	if err := ValidateSchema([]byte(yaml)); err == nil {
		t.Error("expected error for absolute table path (must be root-relative)")
	}
}

func TestValidateSchema_GoOutputExtension(t *testing.T) {
	yaml := `
outputs:
  go: gpgerror/consts.txt
`
	if err := ValidateSchema([]byte(yaml)); err == nil {
		t.Error("expected error for go output without .go extension")
	}
}

func TestValidateSchema_BadPackageName(t *testing.T) {
	yaml := `
go:
  package: GpgError
`
	if err := ValidateSchema([]byte(yaml)); err == nil {
		t.Error("expected error for non-lowercase Go package name")
	}
}

func TestValidateSchema_AdditionalTopLevelKey(t *testing.T) {
	yaml := `
targets: [rust]
extra_key: "should fail"
`
	if err := ValidateSchema([]byte(yaml)); err == nil {
		t.Error("expected error for additional top-level key")
	}
}

func TestValidateSchema_InvalidYAML(t *testing.T) {
	if err := ValidateSchema([]byte("not: valid: yaml: {{{}}}")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
