package gen

import (
	"fmt"
	"strings"

	"github.com/gpg-rs/libgpg-error/model"
)

func init() {
	Register("rust_sys", func() Generator { return &RustSysGenerator{} })
}

// RustSysGenerator produces the raw constants of the libgpg-error-sys crate.
// The file is include!()d into its consts module, next to the hand-written
// GPG_ERR_SYSTEM_ERROR definition the errno constants are built from.
type RustSysGenerator struct{}

func (g *RustSysGenerator) Name() string { return "rust_sys" }

func (g *RustSysGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	return []*OutputFile{
		{Path: ctx.Manifest.Outputs.RustSys, Content: RenderLowLevel(ctx.Tables)},
	}, nil
}

// RenderLowLevel emits one declaration per record: sources, then codes, then errnos.
func RenderLowLevel(tables *model.Tables) []byte {
	var b strings.Builder
	for _, e := range tables.Sources {
		fmt.Fprintf(&b, "pub const %s: gpg_err_source_t = %s;\n", e.Name, e.Value)
	}
	for _, e := range tables.Codes {
		fmt.Fprintf(&b, "pub const %s: gpg_err_code_t = %s;\n", e.Name, e.Value)
	}
	for _, e := range tables.Errnos {
		fmt.Fprintf(&b, "pub const %s: gpg_err_code_t = GPG_ERR_SYSTEM_ERROR | %s;\n", RawSymbol(model.TableErrnos, e.Name), e.Value)
	}
	return []byte(b.String())
}
