// Package manifest reads callback signature declarations from YAML.
//
// A manifest lists the callbacks a binding expects, by type name:
//
//	callbacks:
//	  - name: on_progress
//	    return: void
//	    params: [int32, pointer]
//
// Type names are resolved against a types.Registry; the resolved candidates
// then go through signature validation. The manifest layer only checks what
// YAML can express (presence of names, duplicates); everything else is the
// validator's job.
package manifest

import (
	"fmt"
	"os"

	"github.com/funvibe/funffi/internal/types"

	"gopkg.in/yaml.v3"
)

// File is the top-level manifest document.
type File struct {
	// Callbacks lists the declared callback signatures.
	Callbacks []Callback `yaml:"callbacks"`
}

// Callback declares one callback signature by type names.
type Callback struct {
	// Name identifies the callback in reports. Required, unique per file.
	Name string `yaml:"name"`

	// Return is the registered name of the return type. Required.
	Return string `yaml:"return"`

	// Params lists the registered names of the parameter types, in order.
	// May be empty or omitted for a zero-argument callback.
	Params []string `yaml:"params"`
}

// Load reads and parses a manifest file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses manifest bytes and checks document-level constraints.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	seen := map[string]bool{}
	for i, cb := range f.Callbacks {
		if cb.Name == "" {
			return nil, fmt.Errorf("callback %d: missing name", i)
		}
		if seen[cb.Name] {
			return nil, fmt.Errorf("duplicate callback name %q", cb.Name)
		}
		seen[cb.Name] = true
		if cb.Return == "" {
			return nil, fmt.Errorf("callback %q: missing return type", cb.Name)
		}
	}
	return &f, nil
}

// Resolve maps the callback's type names through the registry. Unknown
// names are reported with the role they appeared in.
func (c *Callback) Resolve(reg *types.Registry) (ret types.Type, params []types.Type, err error) {
	ret, ok := reg.Lookup(c.Return)
	if !ok {
		return nil, nil, fmt.Errorf("callback %q: unknown return type %q", c.Name, c.Return)
	}
	params = make([]types.Type, len(c.Params))
	for i, name := range c.Params {
		t, ok := reg.Lookup(name)
		if !ok {
			return nil, nil, fmt.Errorf("callback %q: unknown parameter type %q at index %d", c.Name, name, i)
		}
		params[i] = t
	}
	return ret, params, nil
}
