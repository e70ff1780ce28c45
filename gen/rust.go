package gen

import (
	"fmt"
	"strings"

	"github.com/gpg-rs/libgpg-error/model"
)

func init() {
	Register("rust", func() Generator { return &RustGenerator{} })
}

// RustGenerator produces the wrapped constants of the safe crate: every raw
// constant re-exported inside impl Error under its GPG_ERR_-less name.
type RustGenerator struct{}

func (g *RustGenerator) Name() string { return "rust" }

func (g *RustGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	return []*OutputFile{
		{Path: ctx.Manifest.Outputs.Rust, Content: RenderWrapped(ctx.Tables)},
	}, nil
}

// RenderWrapped emits the impl Error block. Sources alias the raw value,
// codes and errnos wrap it in Self. Errno names are already unprefixed.
func RenderWrapped(tables *model.Tables) []byte {
	var b strings.Builder
	b.WriteString("impl Error{\n")
	for _, e := range tables.Sources {
		fmt.Fprintf(&b, "pub const %s: ErrorSource = ffi::%s;\n", WrappedName(model.TableSources, e.Name), e.Name)
	}
	for _, e := range tables.Codes {
		fmt.Fprintf(&b, "pub const %s: Self = Self(ffi::%s);\n", WrappedName(model.TableCodes, e.Name), e.Name)
	}
	for _, e := range tables.Errnos {
		fmt.Fprintf(&b, "pub const %s: Self = Self(ffi::%s);\n", WrappedName(model.TableErrnos, e.Name), RawSymbol(model.TableErrnos, e.Name))
	}
	b.WriteString("}\n")
	return []byte(b.String())
}
