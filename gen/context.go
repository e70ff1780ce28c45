package gen

import (
	"github.com/gpg-rs/libgpg-error/model"
)

// Context holds everything a generator needs to produce output.
type Context struct {
	Tables   *model.Tables
	Manifest *model.Manifest
}

// NewContext creates a new generation context.
func NewContext(tables *model.Tables, manifest *model.Manifest) *Context {
	return &Context{
		Tables:   tables,
		Manifest: manifest,
	}
}
