package gen

import (
	"fmt"
	"go/format"
	"strings"

	"github.com/gpg-rs/libgpg-error/model"
)

func init() {
	Register("go", func() Generator { return &GoGenerator{} })
}

// GoHeader is the first line of every generated Go file.
const GoHeader = "// Code generated by mkerrcodes from libgpg-error tables. DO NOT EDIT."

// GoGenerator produces a Go file with the same constants for a cgo binding.
// Names are prefix-stripped like the wrapped Rust constants; errnos are
// built from the binding's own system-error sentinel.
type GoGenerator struct{}

func (g *GoGenerator) Name() string { return "go" }

func (g *GoGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	content, err := RenderGo(ctx.Tables, ctx.Manifest.Go)
	if err != nil {
		return nil, fmt.Errorf("generating go constants: %w", err)
	}
	return []*OutputFile{
		{Path: ctx.Manifest.Outputs.Go, Content: content},
	}, nil
}

// RenderGo emits the Go constants file and runs it through gofmt.
func RenderGo(tables *model.Tables, opts model.GoOptions) ([]byte, error) {
	var b strings.Builder

	b.WriteString(GoHeader + "\n\n")
	fmt.Fprintf(&b, "package %s\n", opts.Package)

	writeGoConstBlock(&b, "Error sources.", tables.Sources, func(e model.Entry) string {
		return fmt.Sprintf("%s %s = %s", WrappedName(model.TableSources, e.Name), opts.SourceType, e.Value)
	})
	writeGoConstBlock(&b, "Error codes.", tables.Codes, func(e model.Entry) string {
		return fmt.Sprintf("%s %s = %s", WrappedName(model.TableCodes, e.Name), opts.CodeType, e.Value)
	})
	writeGoConstBlock(&b, "System errors.", tables.Errnos, func(e model.Entry) string {
		return fmt.Sprintf("%s %s = %s | %s", WrappedName(model.TableErrnos, e.Name), opts.CodeType, opts.SystemError, e.Value)
	})

	formatted, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return formatted, nil
}

func writeGoConstBlock(b *strings.Builder, doc string, entries []model.Entry, decl func(model.Entry) string) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(b, "\n// %s\nconst (\n", doc)
	for _, e := range entries {
		b.WriteString("\t" + decl(e))
		if e.Description != "" {
			b.WriteString(" // " + e.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString(")\n")
}

