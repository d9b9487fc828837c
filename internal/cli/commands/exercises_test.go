package commands

import (
	"testing"

	"github.com/leapstack-labs/drills/internal/cli/output"
	"github.com/leapstack-labs/drills/internal/drills"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFizzBuzzCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr string
	}{
		{
			name: "default limit",
			want: []string{"# FizzBuzz 1..20", "```\n1\n2\nfizz\n4\nbuzz\n", "14\nfizzbuzz\n16\n"},
		},
		{
			name: "explicit n",
			args: []string{"5"},
			want: []string{"# FizzBuzz 1..5", "4\nbuzz\n```"},
		},
		{
			name: "only",
			args: []string{"--only", "9"},
			want: []string{"fizz\n"},
		},
		{
			name:    "not a number",
			args:    []string{"abc"},
			wantErr: `invalid number "abc"`,
		},
		{
			name:    "negative",
			args:    []string{"--only", "-3"},
			wantErr: "invalid number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useConfig(t, nil)

			out, _, err := executeCommand(t, NewFizzBuzzCommand(), tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestFizzBuzzCommand_Only(t *testing.T) {
	useConfig(t, nil)

	out, _, err := executeCommand(t, NewFizzBuzzCommand(), "--only", "0")
	require.NoError(t, err)
	assert.Equal(t, "fizzbuzz\n", out)
}

func TestFizzBuzzCommand_JSON(t *testing.T) {
	useConfig(t, map[string]string{"DRILLS_OUTPUT": "json"})

	out, _, err := executeCommand(t, NewFizzBuzzCommand(), "15")
	require.NoError(t, err)

	var got output.FizzBuzzOutput
	require.NoError(t, jsonUnmarshal(out, &got))
	require.Len(t, got.Results, 15)
	assert.Equal(t, output.FizzBuzzResult{N: 3, Category: "fizz", Text: "fizz"}, got.Results[2])
	assert.Equal(t, output.FizzBuzzResult{N: 7, Category: "number", Text: "7"}, got.Results[6])
	assert.Equal(t, output.FizzBuzzResult{N: 15, Category: "fizzbuzz", Text: "fizzbuzz"}, got.Results[14])
}

func TestCollatzCommand(t *testing.T) {
	t.Run("default start", func(t *testing.T) {
		useConfig(t, nil)

		out, _, err := executeCommand(t, NewCollatzCommand())
		require.NoError(t, err)
		assert.Contains(t, out, "# Collatz trajectory of 3")
		assert.Contains(t, out, "3 -> 10 -> 5 -> 16 -> 8 -> 4 -> 2 -> 1")
		assert.Contains(t, out, "- **Steps:** 7")
		assert.Contains(t, out, "- **Peak:** 16")
	})

	t.Run("groups large numbers", func(t *testing.T) {
		useConfig(t, nil)

		out, _, err := executeCommand(t, NewCollatzCommand(), "27")
		require.NoError(t, err)
		assert.Contains(t, out, "- **Steps:** 111")
		assert.Contains(t, out, "- **Peak:** 9,232")
	})

	t.Run("zero", func(t *testing.T) {
		useConfig(t, nil)

		_, _, err := executeCommand(t, NewCollatzCommand(), "0")
		require.ErrorIs(t, err, drills.ErrZeroStart)
	})

	t.Run("overflow keeps partial trajectory", func(t *testing.T) {
		useConfig(t, nil)

		out, _, err := executeCommand(t, NewCollatzCommand(), "6148914691236517205")
		require.ErrorIs(t, err, drills.ErrOverflow)
		assert.Contains(t, out, "6148914691236517205")
		assert.Contains(t, out, "- **Stopped after:** 0 steps")
	})

	t.Run("json", func(t *testing.T) {
		useConfig(t, map[string]string{"DRILLS_OUTPUT": "json"})

		out, _, err := executeCommand(t, NewCollatzCommand(), "6")
		require.NoError(t, err)

		var got output.CollatzOutput
		require.NoError(t, jsonUnmarshal(out, &got))
		assert.Equal(t, uint64(6), got.Start)
		assert.Equal(t, []uint64{6, 3, 10, 5, 16, 8, 4, 2, 1}, got.Trajectory)
		assert.Equal(t, 8, got.Steps)
		assert.Equal(t, uint64(16), got.Peak)
		assert.Empty(t, got.Error)
	})
}

func TestTransposeCommand(t *testing.T) {
	t.Run("default matrix", func(t *testing.T) {
		useConfig(t, nil)

		out, _, err := executeCommand(t, NewTransposeCommand())
		require.NoError(t, err)
		assert.Contains(t, out, "## Matrix")
		assert.Contains(t, out, "| r0 | 101 | 102 | 103 |")
		assert.Contains(t, out, "## Transposed")
		assert.Contains(t, out, "| r0 | 101 | 201 | 301 |")
	})

	t.Run("flag", func(t *testing.T) {
		useConfig(t, map[string]string{"DRILLS_OUTPUT": "json"})

		out, _, err := executeCommand(t, NewTransposeCommand(), "--matrix", "1,2,3; 4,5,6; 7,8,9")
		require.NoError(t, err)

		var got output.TransposeOutput
		require.NoError(t, jsonUnmarshal(out, &got))
		assert.Equal(t, [][]int32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, got.Matrix)
		assert.Equal(t, [][]int32{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, got.Transposed)
	})

	t.Run("bad shape", func(t *testing.T) {
		useConfig(t, nil)

		_, _, err := executeCommand(t, NewTransposeCommand(), "--matrix", "1,2;3,4")
		require.ErrorIs(t, err, drills.ErrBadShape)
		assert.Contains(t, err.Error(), "invalid --matrix")
	})

	t.Run("bad value", func(t *testing.T) {
		useConfig(t, nil)

		_, _, err := executeCommand(t, NewTransposeCommand(), "--matrix", "1,2,x;4,5,6;7,8,9")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid matrix value "x"`)
	})
}

func TestParseMatrixFlag(t *testing.T) {
	rows, err := parseMatrixFlag("1,2,3;4,5,6")
	require.NoError(t, err)
	assert.Equal(t, [][]int32{{1, 2, 3}, {4, 5, 6}}, rows)
}
