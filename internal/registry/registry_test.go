package registry

import (
	"context"
	"testing"

	"github.com/leapstack-labs/drills/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demo(name string, aliases ...string) *core.Demo {
	return &core.Demo{
		Name:    name,
		Aliases: aliases,
		Run:     func(context.Context, *core.Env) error { return nil },
	}
}

func newTestRegistry(t *testing.T) *DemoRegistry {
	t.Helper()
	r, err := New(
		demo("banner", "hello"),
		demo("bindings", "collatz"),
		demo("fizzbuzz", "functions"),
		demo("transpose", "matrix"),
	)
	require.NoError(t, err)
	return r
}

func TestDemoRegistry_Register(t *testing.T) {
	r := NewDemoRegistry()

	d := demo("fizzbuzz")
	require.NoError(t, r.Register(d))

	assert.Equal(t, 1, r.Count(), "expected count 1")

	got, ok := r.Get("fizzbuzz")
	assert.True(t, ok, "expected to find demo by name")
	assert.Same(t, d, got, "expected same demo instance")
}

func TestDemoRegistry_RegisterRejects(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name string
		demo *core.Demo
	}{
		{name: "duplicate name", demo: demo("banner")},
		{name: "name clashes with alias", demo: demo("collatz")},
		{name: "alias clashes with name", demo: demo("other", "fizzbuzz")},
		{name: "case-insensitive clash", demo: demo("MATRIX")},
		{name: "alias repeats own name", demo: demo("fresh", "fresh")},
		{name: "alias listed twice", demo: demo("newer", "x", "X")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Register(tt.demo)
			assert.ErrorIs(t, err, ErrDuplicate)
		})
	}

	assert.Error(t, r.Register(nil))
	assert.Error(t, r.Register(&core.Demo{}))
	assert.Equal(t, 4, r.Count(), "failed registrations leave the registry unchanged")
}

func TestDemoRegistry_Resolve(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name      string
		input     string
		wantName  string
		wantFound bool
	}{
		{name: "canonical name", input: "fizzbuzz", wantName: "fizzbuzz", wantFound: true},
		{name: "alias", input: "functions", wantName: "fizzbuzz", wantFound: true},
		{name: "mixed case with spaces", input: "  Matrix ", wantName: "transpose", wantFound: true},
		{name: "unknown", input: "generics", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := r.Resolve(tt.input)
			assert.Equal(t, tt.wantFound, ok)
			if tt.wantFound {
				assert.Equal(t, tt.wantName, d.Name)
			}
		})
	}

	_, ok := r.Get("functions")
	assert.False(t, ok, "Get does not follow aliases")
}

func TestDemoRegistry_OrderAndNames(t *testing.T) {
	r := newTestRegistry(t)

	assert.Equal(t, []string{"banner", "bindings", "fizzbuzz", "transpose"}, r.Names())

	all := r.All()
	all[0] = nil
	assert.NotNil(t, r.All()[0], "All returns a copy")
}

func TestDemoRegistry_Select(t *testing.T) {
	r := newTestRegistry(t)

	selected, err := r.Select([]string{"matrix", "banner", "transpose", " ", "hello"})
	require.NoError(t, err)

	var names []string
	for _, d := range selected {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"banner", "transpose"}, names, "registry order, deduplicated")

	_, err = r.Select([]string{"banner", "nope", "also-nope"})
	require.ErrorIs(t, err, ErrUnknownDemo)
	assert.Contains(t, err.Error(), "also-nope, nope")
	assert.Contains(t, err.Error(), "available: banner, bindings, fizzbuzz, transpose")

	selected, err = r.Select(nil)
	require.NoError(t, err)
	assert.Empty(t, selected)
}
