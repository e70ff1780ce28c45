package model

import "strings"

// ErrPrefix is the namespace prefix libgpg-error puts on every source and code symbol.
const ErrPrefix = "GPG_ERR_"

// Limits of the gpg_error_t encoding, mirrored from libgpg-error.
const (
	SourceDim   = 128
	CodeDim     = 65536
	SystemError = 1 << 15
)

// TableKind identifies one of the three vendor definition tables.
type TableKind int

const (
	TableSources TableKind = iota
	TableCodes
	TableErrnos
)

func (k TableKind) String() string {
	switch k {
	case TableSources:
		return "sources"
	case TableCodes:
		return "codes"
	case TableErrnos:
		return "errnos"
	default:
		return "unknown"
	}
}

// Entry is a single accepted record of a definition table.
type Entry struct {
	Name        string
	Value       string // Integer literal exactly as it appears in the table
	Description string // Trailing tokens joined by a single space, may be empty
	Line        int    // 1-based line number in the source table
}

// Tables holds the three independently accumulated, insertion-ordered sequences.
type Tables struct {
	Sources []Entry
	Codes   []Entry
	Errnos  []Entry
}

// Table returns the sequence for kind.
func (t *Tables) Table(kind TableKind) []Entry {
	switch kind {
	case TableSources:
		return t.Sources
	case TableCodes:
		return t.Codes
	case TableErrnos:
		return t.Errnos
	default:
		return nil
	}
}

// Set replaces the sequence for kind.
func (t *Tables) Set(kind TableKind, entries []Entry) {
	switch kind {
	case TableSources:
		t.Sources = entries
	case TableCodes:
		t.Codes = entries
	case TableErrnos:
		t.Errnos = entries
	}
}

// Len returns the total number of entries across all tables.
func (t *Tables) Len() int {
	return len(t.Sources) + len(t.Codes) + len(t.Errnos)
}

// StripErrPrefix removes a leading GPG_ERR_ from name.
// Names without the prefix are returned unchanged.
// e.g., "GPG_ERR_NOT_CONFIRMED" → "NOT_CONFIRMED", "ENOSYS" → "ENOSYS"
func StripErrPrefix(name string) string {
	return strings.TrimPrefix(name, ErrPrefix)
}

// ErrnoSymbol returns the low-level symbol for an errno table entry.
// e.g., "ENOSYS" → "GPG_ERR_ENOSYS"
func ErrnoSymbol(name string) string {
	return ErrPrefix + name
}
