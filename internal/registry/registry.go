// Package registry provides demo registration and name resolution.
// It keeps demos in registration order and maps names and aliases to them,
// so --select can accept either form.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/leapstack-labs/drills/pkg/core"
)

var (
	// ErrDuplicate is returned when a name or alias is already taken.
	ErrDuplicate = errors.New("registry: duplicate demo name")

	// ErrUnknownDemo is returned when a selection names no registered demo.
	ErrUnknownDemo = errors.New("registry: unknown demo")
)

// DemoRegistry maps demo names and aliases to demos.
type DemoRegistry struct {
	mu sync.RWMutex

	// order holds demos as registered; runs follow this order
	order []*core.Demo

	// byName maps canonical names: "fizzbuzz" → demo
	byName map[string]*core.Demo

	// byAlias maps alternative names to canonical ones: "functions" → "fizzbuzz"
	byAlias map[string]string
}

// NewDemoRegistry creates a new empty registry.
func NewDemoRegistry() *DemoRegistry {
	return &DemoRegistry{
		byName:  make(map[string]*core.Demo),
		byAlias: make(map[string]string),
	}
}

// New creates a registry pre-populated with demos, in order.
func New(demos ...*core.Demo) (*DemoRegistry, error) {
	r := NewDemoRegistry()
	for _, d := range demos {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a demo under its name and aliases.
// Names are case-insensitive; a clash with any existing name or alias, or
// between the demo's own keys, fails.
func (r *DemoRegistry) Register(d *core.Demo) error {
	if d == nil || d.Name == "" {
		return errors.New("registry: demo must have a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	keys := append([]string{d.Name}, d.Aliases...)
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		key = normalize(key)
		if _, dup := seen[key]; dup || r.taken(key) {
			return fmt.Errorf("%w: %q", ErrDuplicate, key)
		}
		seen[key] = struct{}{}
	}

	name := normalize(d.Name)
	r.byName[name] = d
	for _, alias := range d.Aliases {
		r.byAlias[normalize(alias)] = name
	}
	r.order = append(r.order, d)
	return nil
}

func (r *DemoRegistry) taken(key string) bool {
	if _, ok := r.byName[key]; ok {
		return true
	}
	_, ok := r.byAlias[key]
	return ok
}

// Get returns the demo registered under its canonical name.
func (r *DemoRegistry) Get(name string) (*core.Demo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byName[normalize(name)]
	return d, ok
}

// Resolve looks a demo up by canonical name first, then by alias.
func (r *DemoRegistry) Resolve(nameOrAlias string) (*core.Demo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := normalize(nameOrAlias)
	if d, ok := r.byName[key]; ok {
		return d, true
	}
	if name, ok := r.byAlias[key]; ok {
		return r.byName[name], true
	}
	return nil, false
}

// All returns every demo in registration order.
func (r *DemoRegistry) All() []*core.Demo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*core.Demo, len(r.order))
	copy(out, r.order)
	return out
}

// Names returns canonical names in registration order.
func (r *DemoRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	for i, d := range r.order {
		names[i] = d.Name
	}
	return names
}

// Count returns the number of registered demos.
func (r *DemoRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Select resolves names (or aliases) and returns the matching demos in
// registration order, each at most once. Unknown names are collected into a
// single ErrUnknownDemo error.
func (r *DemoRegistry) Select(names []string) ([]*core.Demo, error) {
	wanted := make(map[*core.Demo]struct{})
	var unknown []string

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		d, ok := r.Resolve(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		wanted[d] = struct{}{}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %s (available: %s)",
			ErrUnknownDemo, strings.Join(unknown, ", "), strings.Join(r.Names(), ", "))
	}

	var selected []*core.Demo
	for _, d := range r.All() {
		if _, ok := wanted[d]; ok {
			selected = append(selected, d)
		}
	}
	return selected, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
