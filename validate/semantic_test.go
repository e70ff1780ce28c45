package validate

import (
	"strings"
	"testing"

	"github.com/gpg-rs/libgpg-error/model"
)

func cleanTables() *model.Tables {
	return &model.Tables{
		Sources: []model.Entry{
			{Name: "GPG_ERR_SOURCE_UNKNOWN", Value: "0", Line: 1},
			{Name: "GPG_ERR_SOURCE_GPGME", Value: "7", Line: 2},
			{Name: "GPG_ERR_SOURCE_DIM", Value: "128", Line: 3},
		},
		Codes: []model.Entry{
			{Name: "GPG_ERR_NO_ERROR", Value: "0", Line: 1},
			{Name: "GPG_ERR_NOT_CONFIRMED", Value: "63", Line: 2},
			{Name: "GPG_ERR_EOF", Value: "16383", Line: 3},
		},
		Errnos: []model.Entry{
			{Name: "E2BIG", Value: "0", Line: 1},
			{Name: "ENOSYS", Value: "4", Line: 2},
		},
	}
}

func TestValidate_Clean(t *testing.T) {
	result := Validate(cleanTables())
	if !result.IsClean() {
		t.Errorf("expected no warnings, got:\n%s", result.Error())
	}
}

func TestValidate_EmptyTable(t *testing.T) {
	tables := cleanTables()
	tables.Errnos = nil

	result := Validate(tables)
	if result.IsClean() {
		t.Fatal("expected warning for empty errnos table")
	}
	if !strings.Contains(result.Error(), "errnos: table has no records") {
		t.Errorf("unexpected warning text:\n%s", result.Error())
	}
}

func TestValidate_DuplicateName(t *testing.T) {
	tables := cleanTables()
	tables.Codes = append(tables.Codes, model.Entry{Name: "GPG_ERR_NOT_CONFIRMED", Value: "64", Line: 9})

	result := Validate(tables)
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d:\n%s", len(result.Warnings), result.Error())
	}
	w := result.Warnings[0]
	if w.Path != "codes[3]" || w.Line != 9 {
		t.Errorf("unexpected warning location %s line %d", w.Path, w.Line)
	}
	if !strings.Contains(w.Message, `duplicate name "GPG_ERR_NOT_CONFIRMED"`) {
		t.Errorf("unexpected message %q", w.Message)
	}
}

func TestValidate_DuplicateValue(t *testing.T) {
	tables := cleanTables()
	tables.Errnos = append(tables.Errnos, model.Entry{Name: "EAGAIN", Value: "4", Line: 3})

	result := Validate(tables)
	if !strings.Contains(result.Error(), "value 4 of EAGAIN already used by ENOSYS") {
		t.Errorf("expected duplicate value warning, got:\n%s", result.Error())
	}
}

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Tables)
		want   string
	}{
		{"source too large", func(tb *model.Tables) {
			tb.Sources = append(tb.Sources, model.Entry{Name: "GPG_ERR_SOURCE_BIG", Value: "200"})
		}, "exceeds GPG_ERR_SOURCE_DIM"},
		{"source at dim", func(tb *model.Tables) {
			tb.Sources = append(tb.Sources, model.Entry{Name: "GPG_ERR_SOURCE_OTHER", Value: "128"})
		}, "exceeds GPG_ERR_SOURCE_DIM"},
		{"code too large", func(tb *model.Tables) {
			tb.Codes = append(tb.Codes, model.Entry{Name: "GPG_ERR_HUGE", Value: "65536"})
		}, "exceeds GPG_ERR_CODE_DIM"},
		{"errno with system bit", func(tb *model.Tables) {
			tb.Errnos = append(tb.Errnos, model.Entry{Name: "EWEIRD", Value: "32768"})
		}, "collides with GPG_ERR_SYSTEM_ERROR"},
		{"negative", func(tb *model.Tables) {
			tb.Codes = append(tb.Codes, model.Entry{Name: "GPG_ERR_NEG", Value: "-1"})
		}, "negative value -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := cleanTables()
			tt.mutate(tables)
			result := Validate(tables)
			if !strings.Contains(result.Error(), tt.want) {
				t.Errorf("expected warning containing %q, got:\n%s", tt.want, result.Error())
			}
		})
	}
}

func TestValidate_WrappedCollision(t *testing.T) {
	tables := cleanTables()
	// Stripped code name equals an errno name.
	tables.Codes = append(tables.Codes, model.Entry{Name: "GPG_ERR_ENOSYS", Value: "100", Line: 4})

	result := Validate(tables)
	if !strings.Contains(result.Error(), "wrapped name ENOSYS also produced by codes[3]") {
		t.Errorf("expected wrapped collision warning, got:\n%s", result.Error())
	}
}

func TestWarning_Error(t *testing.T) {
	w := &Warning{Path: "codes[1]", Line: 12, Message: "boom"}
	if got := w.Error(); got != "codes[1] (line 12): boom" {
		t.Errorf("unexpected Error() %q", got)
	}
	w = &Warning{Path: "sources", Message: "table has no records"}
	if got := w.Error(); got != "sources: table has no records" {
		t.Errorf("unexpected Error() %q", got)
	}
}

func TestValidate_ValueOutOfRange(t *testing.T) {
	tables := cleanTables()
	tables.Codes = append(tables.Codes, model.Entry{Name: "GPG_ERR_HUGE", Value: "18446744073709551616", Line: 4})

	result := Validate(tables)
	want := "codes[3] (line 4): value 18446744073709551616 of GPG_ERR_HUGE is out of range"
	if !strings.Contains(result.Error(), want) {
		t.Errorf("expected %q in:\n%s", want, result.Error())
	}
}
