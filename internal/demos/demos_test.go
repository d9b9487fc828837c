package demos

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/leapstack-labs/drills/internal/config"
	"github.com/leapstack-labs/drills/internal/drills"
	"github.com/leapstack-labs/drills/internal/testutil"
	"github.com/leapstack-labs/drills/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runDemo executes the named demo with params and returns its output lines.
func runDemo(t *testing.T, params config.Exercises, name string) ([]string, error) {
	t.Helper()

	for _, d := range All(params) {
		if d.Name != name {
			continue
		}
		var buf bytes.Buffer
		err := d.Run(context.Background(), &core.Env{Out: &buf, Logger: testutil.NewTestLogger(t)})
		return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"), err
	}
	t.Fatalf("demo %q not found", name)
	return nil, nil
}

func TestAll_Order(t *testing.T) {
	var names []string
	for _, d := range All(config.DefaultExercises()) {
		names = append(names, d.Name)
		assert.NotEmpty(t, d.Title, "%s title", d.Name)
		assert.NotEmpty(t, d.Summary, "%s summary", d.Name)
		assert.NotNil(t, d.Run, "%s run", d.Name)
	}

	assert.Equal(t, []string{
		NameBanner, NameBindings, NameCompound, NameFizzBuzz, NameStructs,
		NameGenerics, NameConversions, NameLoops, NameTranspose,
	}, names)
}

func TestDemoOutput(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{
			name: NameBindings,
			want: []string{"3 -> 10 -> 5 -> 16 -> 8 -> 4 -> 2 -> 1"},
		},
		{
			name: NameCompound,
			want: []string{
				"a: [42 42 42 42 42 0 42 42 42 42]",
				"1st index: 7",
				"2nd index: true",
				"x: 20",
				"ref_x: 10",
				"a: [10 20 30 40 50 60]",
				"s: [30 40]",
				"s1: Hello",
				"s2: Hello ",
				"s2: Hello Hello",
			},
		},
		{
			name: NameStructs,
			want: []string{"old area: 50", "new area: 75"},
		},
		{
			name: NameConversions,
			want: []string{"15 * 1000 = 15000"},
		},
		{
			name: NameLoops,
			want: []string{
				"array: [10 20 30]",
				"Iterating over array: 10 20 30",
				"Iterating over range: 10 20 30",
			},
		},
		{
			name: NameTranspose,
			want: []string{
				"matrix:",
				"101 102 103 ",
				"201 202 203 ",
				"301 302 303 ",
				"transposed:",
				"101 201 301 ",
				"102 202 302 ",
				"103 203 303 ",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runDemo(t, config.DefaultExercises(), tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFizzBuzzDemo(t *testing.T) {
	got, err := runDemo(t, config.DefaultExercises(), NameFizzBuzz)
	require.NoError(t, err)
	assert.Equal(t, drills.FizzBuzzTo(20), got)
	assert.Equal(t, "fizzbuzz", got[14])
}

func TestGenericsDemo(t *testing.T) {
	got, err := runDemo(t, config.DefaultExercises(), NameGenerics)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Contains(t, []string{"coin toss: heads", "coin toss: tails"}, got[0])
	assert.Contains(t, []string{"cash prize: 500", "cash prize: 1000"}, got[1])

	// Both picks share the process-id parity.
	headsFirst := got[0] == "coin toss: heads"
	assert.Equal(t, headsFirst, got[1] == "cash prize: 500")
}

func TestBannerDemo(t *testing.T) {
	got, err := runDemo(t, config.DefaultExercises(), NameBanner)
	require.NoError(t, err)

	out := strings.Join(got, "\n")
	assert.Contains(t, out, "Hello fellow Rustaceans! w00t")
	assert.Contains(t, out, "Hi again lol")
	assert.Equal(t, 2, strings.Count(out, "_~^~^~_"), "one crab per message")
	assert.Equal(t, "Done.", got[len(got)-1])
}

func TestDemoInputErrors(t *testing.T) {
	t.Run("collatz zero", func(t *testing.T) {
		params := config.DefaultExercises()
		params.Collatz.Start = 0
		_, err := runDemo(t, params, NameBindings)
		assert.ErrorIs(t, err, drills.ErrZeroStart)
	})

	t.Run("bad matrix", func(t *testing.T) {
		params := config.DefaultExercises()
		params.Transpose.Matrix = [][]int32{{1, 2}}
		_, err := runDemo(t, params, NameTranspose)
		assert.ErrorIs(t, err, drills.ErrBadShape)
	})

	t.Run("empty banner", func(t *testing.T) {
		params := config.DefaultExercises()
		params.Banner.Messages = []string{""}
		_, err := runDemo(t, params, NameBanner)
		assert.ErrorIs(t, err, drills.ErrEmptyMessage)
	})
}

func TestJoinTrajectory(t *testing.T) {
	assert.Equal(t, "1", JoinTrajectory([]uint64{1}))
	assert.Equal(t, "4 -> 2 -> 1", JoinTrajectory([]uint64{4, 2, 1}))
	assert.Equal(t, "", JoinTrajectory(nil))
}
