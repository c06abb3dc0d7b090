// SPDX-License-Identifier: MIT
// Package: lvboot/resample
//
// registry.go — name → Method lookup.
//
// A Registry is an ordinary value: there are no package-level tables, so
// two registries never interfere and tests can build their own.

package resample

import (
	"sort"
	"strings"
	"sync"
)

// Constructor returns a Method configured with its defaults.
type Constructor func() Method

// Registry maps case-insensitive method names to constructors.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registryEntry
}

type registryEntry struct {
	name string
	ctor Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]registryEntry)}
}

// Builtin returns a registry holding Stationary, Circular, IID and GBM,
// each with default parameters (automatic block lengths, returns domain,
// calibrated GBM).
func Builtin() *Registry {
	r := NewRegistry()
	_ = r.Register(NameStationary, func() Method { return Stationary{} })
	_ = r.Register(NameCircular, func() Method { return Circular{} })
	_ = r.Register(NameIID, func() Method { return IID{} })
	_ = r.Register(NameGBM, func() Method { return GBM{} })
	return r
}

// Register adds a method under name.
// Errors: ErrBadParameter for an empty name or nil ctor,
// ErrDuplicateMethod if the name (case-insensitively) is taken.
func (r *Registry) Register(name string, ctor Constructor) error {
	if strings.TrimSpace(name) == "" || ctor == nil {
		return errorf("Register", ErrBadParameter, "name %q / constructor nil=%t", name, ctor == nil)
	}
	key := strings.ToLower(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; ok {
		return errorf("Register", ErrDuplicateMethod, "%q", name)
	}
	r.entries[key] = registryEntry{name: name, ctor: ctor}
	return nil
}

// Lookup returns a fresh Method for name (case-insensitive).
// Unknown names yield ErrUnsupportedMethod.
func (r *Registry) Lookup(name string) (Method, error) {
	r.mu.RLock()
	e, ok := r.entries[strings.ToLower(strings.TrimSpace(name))]
	r.mu.RUnlock()
	if !ok {
		return nil, errorf("Lookup", ErrUnsupportedMethod, "%q", name)
	}
	return e.ctor(), nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.name)
	}
	sort.Strings(out)
	return out
}
