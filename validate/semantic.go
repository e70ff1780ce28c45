package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gpg-rs/libgpg-error/model"
)

// Warning is a single advisory finding about the extracted tables.
// Warnings never change what is generated.
type Warning struct {
	Path    string // e.g., "codes[3]" (line 17)
	Line    int
	Message string
}

func (w *Warning) Error() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", w.Path, w.Line, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Path, w.Message)
}

// ValidationResult holds all warnings.
type ValidationResult struct {
	Warnings []Warning
}

func (r *ValidationResult) addWarning(path string, line int, message string) {
	r.Warnings = append(r.Warnings, Warning{Path: path, Line: line, Message: message})
}

func (r *ValidationResult) IsClean() bool {
	return len(r.Warnings) == 0
}

func (r *ValidationResult) Error() string {
	if r.IsClean() {
		return ""
	}
	var msgs []string
	for _, w := range r.Warnings {
		msgs = append(msgs, w.Error())
	}
	return strings.Join(msgs, "\n")
}

// Validate inspects extracted tables for signs of upstream format drift:
// empty tables, duplicate names or values within a table, and values that
// do not fit the libgpg-error encoding.
func Validate(tables *model.Tables) *ValidationResult {
	result := &ValidationResult{}

	for _, kind := range []model.TableKind{model.TableSources, model.TableCodes, model.TableErrnos} {
		entries := tables.Table(kind)
		if len(entries) == 0 {
			result.addWarning(kind.String(), 0, "table has no records")
			continue
		}

		names := make(map[string]int)
		values := make(map[int64]string)
		for i, e := range entries {
			path := fmt.Sprintf("%s[%d]", kind, i)

			if first, ok := names[e.Name]; ok {
				result.addWarning(path, e.Line, fmt.Sprintf("duplicate name %q (first at %s[%d])", e.Name, kind, first))
			} else {
				names[e.Name] = i
			}

			v, err := strconv.ParseInt(e.Value, 10, 64)
			if err != nil {
				result.addWarning(path, e.Line, fmt.Sprintf("value %s of %s is out of range", e.Value, e.Name))
				continue
			}
			if other, ok := values[v]; ok {
				result.addWarning(path, e.Line, fmt.Sprintf("value %d of %s already used by %s", v, e.Name, other))
			} else {
				values[v] = e.Name
			}

			checkRange(result, kind, path, e, v)
		}
	}

	// Wrapped constants share one namespace inside impl Error.
	checkWrappedCollisions(result, tables)

	return result
}

func checkRange(result *ValidationResult, kind model.TableKind, path string, e model.Entry, v int64) {
	if v < 0 {
		result.addWarning(path, e.Line, fmt.Sprintf("negative value %d for %s", v, e.Name))
		return
	}
	switch kind {
	case model.TableSources:
		// GPG_ERR_SOURCE_DIM itself is listed as the one-past-the-end marker.
		if v > model.SourceDim || (v == model.SourceDim && e.Name != model.ErrPrefix+"SOURCE_DIM") {
			result.addWarning(path, e.Line, fmt.Sprintf("source %s = %d exceeds GPG_ERR_SOURCE_DIM (%d)", e.Name, v, model.SourceDim))
		}
	case model.TableCodes:
		if v >= model.CodeDim {
			result.addWarning(path, e.Line, fmt.Sprintf("code %s = %d exceeds GPG_ERR_CODE_DIM (%d)", e.Name, v, model.CodeDim))
		}
	case model.TableErrnos:
		if v&model.SystemError != 0 || v|model.SystemError >= model.CodeDim {
			result.addWarning(path, e.Line, fmt.Sprintf("errno %s = %d collides with GPG_ERR_SYSTEM_ERROR encoding", e.Name, v))
		}
	}
}

// checkWrappedCollisions reports wrapped names that more than one entry maps to,
// e.g. a code whose stripped name equals an errno name.
func checkWrappedCollisions(result *ValidationResult, tables *model.Tables) {
	owner := make(map[string]string)
	check := func(kind model.TableKind, i int, e model.Entry, wrapped string) {
		path := fmt.Sprintf("%s[%d]", kind, i)
		if prev, ok := owner[wrapped]; ok {
			// Same-table duplicates are already reported by name.
			if !strings.HasPrefix(prev, kind.String()+"[") {
				result.addWarning(path, e.Line, fmt.Sprintf("wrapped name %s also produced by %s", wrapped, prev))
			}
			return
		}
		owner[wrapped] = path
	}

	for i, e := range tables.Sources {
		check(model.TableSources, i, e, model.StripErrPrefix(e.Name))
	}
	for i, e := range tables.Codes {
		check(model.TableCodes, i, e, model.StripErrPrefix(e.Name))
	}
	for i, e := range tables.Errnos {
		check(model.TableErrnos, i, e, e.Name)
	}
}
