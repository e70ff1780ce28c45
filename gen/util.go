package gen

import (
	"github.com/gpg-rs/libgpg-error/model"
)

// RawSymbol returns the name an entry is declared under in the -sys crate.
// Sources and codes carry their table name as is; errno names gain GPG_ERR_.
func RawSymbol(kind model.TableKind, name string) string {
	if kind == model.TableErrnos {
		return model.ErrnoSymbol(name)
	}
	return name
}

// WrappedName returns the name an entry is re-exported under.
// e.g., "GPG_ERR_NOT_CONFIRMED" → "NOT_CONFIRMED"
// Errno names are used verbatim, even if they happen to start with GPG_ERR_.
func WrappedName(kind model.TableKind, name string) string {
	if kind == model.TableErrnos {
		return name
	}
	return model.StripErrPrefix(name)
}
