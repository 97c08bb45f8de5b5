package samples

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/gpucontext"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Registry holds sample definitions by name.
//
// Samples register themselves from init():
//
//	func init() {
//	    samples.Register(samples.Definition{
//	        Name: "triangle",
//	        New:  newTriangle,
//	    })
//	}
type Registry struct {
	defs *gpucontext.Registry[Definition]
}

// NewRegistry creates an empty registry.
// Most code should use the global registry via Register and Lookup.
func NewRegistry() *Registry {
	return &Registry{defs: gpucontext.NewRegistry[Definition]()}
}

var globalRegistry = NewRegistry()

// Register adds def to the registry, filling in a default title.
// Registering a name twice replaces the earlier definition.
// Register panics if def has no name or no factory.
func (r *Registry) Register(def Definition) {
	if def.Name == "" {
		panic("samples: Register with empty name")
	}
	if def.New == nil {
		panic(fmt.Sprintf("samples: Register %q with nil factory", def.Name))
	}
	if def.Title == "" {
		def.Title = DefaultTitle(def.Name)
	}
	r.defs.Register(def.Name, func() Definition { return def })
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (Definition, error) {
	if !r.defs.Has(name) {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownSample, name)
	}
	return r.defs.Get(name), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := r.defs.Available()
	slices.Sort(names)
	return names
}

// Definitions returns all definitions sorted by name.
func (r *Registry) Definitions() []Definition {
	names := r.Names()
	defs := make([]Definition, 0, len(names))
	for _, n := range names {
		defs = append(defs, r.defs.Get(n))
	}
	return defs
}

// Len returns the number of registered samples.
func (r *Registry) Len() int { return r.defs.Count() }

// Register adds def to the global registry.
func Register(def Definition) { globalRegistry.Register(def) }

// Lookup returns a definition from the global registry.
func Lookup(name string) (Definition, error) { return globalRegistry.Lookup(name) }

// Definitions returns all globally registered definitions sorted by name.
func Definitions() []Definition { return globalRegistry.Definitions() }

// DefaultTitle turns a sample name such as "fly-camera" into a window
// title such as "Fly Camera".
func DefaultTitle(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}
