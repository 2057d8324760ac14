package types

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps names to types. Registration happens once during setup;
// lookups are concurrent-safe afterwards.
type Registry struct {
	mu    sync.RWMutex
	types map[string]Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: map[string]Type{}}
}

// Register binds name to t. Duplicate names are an error.
func (r *Registry) Register(name string, t Type) error {
	if t == nil {
		return fmt.Errorf("register %q: nil type", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[name]; ok {
		return fmt.Errorf("duplicate type name %q", name)
	}
	r.types[name] = t
	return nil
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for k := range r.types {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the registry of builtin types, built once on first use.
// Names are the lower-cased display names plus common C-style aliases.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
		builtins := map[string]Type{
			"void":    Void,
			"int8":    Int8,
			"uint8":   UInt8,
			"int16":   Int16,
			"uint16":  UInt16,
			"int32":   Int32,
			"uint32":  UInt32,
			"int64":   Int64,
			"uint64":  UInt64,
			"float32": Float32,
			"float64": Float64,
			"pointer": Pointer,

			// C-style aliases
			"char":   Int8,
			"uchar":  UInt8,
			"short":  Int16,
			"ushort": UInt16,
			"int":    Int32,
			"uint":   UInt32,
			"float":  Float32,
			"double": Float64,
		}
		for name, t := range builtins {
			// Names are unique by construction.
			_ = defaultReg.Register(name, t)
		}
	})
	return defaultReg
}
