package gen

import (
	"fmt"
	"sort"
	"sync"
)

// OutputFile represents a single generated file.
type OutputFile struct {
	Path    string // Relative path within the project root
	Content []byte // Always "\n"-terminated lines
}

// Generator is the interface all constant emitters implement.
// Each generator produces the output file(s) for one target (e.g., the raw
// Rust constants of the -sys crate, or the wrapped constants of the safe crate).
type Generator interface {
	// Name returns the generator name (e.g., "rust_sys", "rust", "go").
	Name() string

	// Generate produces output files for the extracted tables.
	Generate(ctx *Context) ([]*OutputFile, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Generator{}
)

// Register adds a generator factory to the registry.
// Typically called from init() in each generator's file.
func Register(name string, factory func() Generator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("generator %q already registered", name))
	}
	registry[name] = factory
}

// Get returns a new instance of the named generator.
func Get(name string) (Generator, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	factory, ok := registry[name]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// All returns the names of all registered generators, sorted.
func All() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes the named generators in order and collects their output.
// An unknown name is an error, as is any generator failure.
func Run(ctx *Context, names []string) ([]*OutputFile, error) {
	var files []*OutputFile
	for _, name := range names {
		g, ok := Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown generator %q (available: %v)", name, All())
		}
		out, err := g.Generate(ctx)
		if err != nil {
			return nil, fmt.Errorf("generator %s failed: %w", name, err)
		}
		files = append(files, out...)
	}
	return files, nil
}
