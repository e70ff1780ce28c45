package resolver

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gpg-rs/libgpg-error/model"
	"github.com/rs/zerolog"
	"github.com/samber/oops"
	"github.com/spf13/afero"
)

// maxLineSize bounds a single table line. Vendor tables are far below it.
const maxLineSize = 1 << 20

// TableFile pairs a table path (relative to the project root) with the
// sequence its records are collected into.
type TableFile struct {
	Kind model.TableKind
	Path string
}

// TableFiles returns the three table files of a manifest in reading order:
// sources, codes, errnos.
func TableFiles(paths model.TablePaths) []TableFile {
	kinds := []model.TableKind{model.TableSources, model.TableCodes, model.TableErrnos}
	files := make([]TableFile, 0, len(kinds))
	for _, kind := range kinds {
		files = append(files, TableFile{Kind: kind, Path: paths.Path(kind)})
	}
	return files
}

// Extract reads every table in files, in order, relative to root.
// The first unreadable table aborts the whole extraction.
func Extract(ctx context.Context, fs afero.Fs, root string, files []TableFile) (*model.Tables, error) {
	tables := &model.Tables{}
	for _, file := range files {
		entries, err := ReadTable(ctx, fs, filepath.Join(root, file.Path))
		if err != nil {
			return nil, fmt.Errorf("reading %s table: %w", file.Kind, err)
		}
		tables.Set(file.Kind, append(tables.Table(file.Kind), entries...))
	}
	return tables, nil
}

// ReadTable parses a single definition table.
//
// A record is a line whose first whitespace-separated token is a base-10
// integer and which has at least two tokens. Every other line (comments,
// headers, blank lines, malformed rows) is skipped without error.
func ReadTable(ctx context.Context, fs afero.Fs, path string) ([]model.Entry, error) {
	errorBuilder := oops.
		In("resolver").
		With("path", path)
	logger := zerolog.Ctx(ctx).With().Str("table", path).Logger()

	f, err := fs.Open(path)
	if err != nil {
		return nil, errorBuilder.Wrapf(err, "opening table")
	}
	defer f.Close()

	var entries []model.Entry
	skipped := 0
	lineNo := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanUniversalLines)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if !utf8.ValidString(line) {
			return nil, errorBuilder.
				With("line", lineNo).
				Errorf("line %d is not valid UTF-8", lineNo)
		}

		entry, ok := parseRecord(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				skipped++
				logger.Debug().Int("line", lineNo).Msg("skipping non-record line")
			}
			continue
		}
		entry.Line = lineNo
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, errorBuilder.Wrapf(err, "reading table")
	}

	logger.Debug().
		Int("records", len(entries)).
		Int("skipped", skipped).
		Msg("table read")
	return entries, nil
}

// parseRecord applies the record rule to a single line.
func parseRecord(line string) (model.Entry, bool) {
	parts := strings.FieldsFunc(line, isTableSpace)
	if len(parts) < 2 {
		return model.Entry{}, false
	}
	if !isDecimal(parts[0]) {
		return model.Entry{}, false
	}
	return model.Entry{
		Name:        parts[1],
		Value:       parts[0],
		Description: strings.Join(parts[2:], " "),
	}, true
}

// isTableSpace reports whether r separates tokens. Besides Unicode white
// space this includes the ASCII file, group, record and unit separators.
func isTableSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// isDecimal reports whether tok is an optionally signed run of ASCII digits.
// There is no size limit: the value text is emitted verbatim.
func isDecimal(tok string) bool {
	if tok != "" && (tok[0] == '+' || tok[0] == '-') {
		tok = tok[1:]
	}
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

// scanUniversalLines is a bufio.SplitFunc that treats "\n", "\r\n" and a
// lone "\r" as line terminators.
func scanUniversalLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// A trailing '\r' may be the first half of "\r\n".
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
