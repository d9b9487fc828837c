package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/drills/internal/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitCommand(t *testing.T) {
	tests := []struct {
		name      string
		setupDir  func(t *testing.T, dir string) // setup before running
		args      []string
		wantErr   bool
		wantFiles []string
	}{
		{
			name:      "init empty directory",
			args:      []string{},
			wantErr:   false,
			wantFiles: []string{"drills.yaml"},
		},
		{
			name: "init existing config without force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, "drills.yaml"), []byte("existing"), 0600)
			},
			args:    []string{},
			wantErr: true,
		},
		{
			name: "init existing alt config without force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, "drills.yml"), []byte("existing"), 0600)
			},
			args:    []string{},
			wantErr: true,
		},
		{
			name: "init existing config with force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, "drills.yaml"), []byte("existing"), 0600)
			},
			args:      []string{"--force"},
			wantErr:   false,
			wantFiles: []string{"drills.yaml"},
		},
		{
			name:      "init example",
			args:      []string{"--example"},
			wantErr:   false,
			wantFiles: []string{"drills.yaml", ".gitignore"},
		},
		{
			name:      "init subdirectory",
			args:      []string{"nested/dir"},
			wantErr:   false,
			wantFiles: []string{"nested/dir/drills.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.ResetConfig()
			tmpDir := t.TempDir()
			t.Chdir(tmpDir)

			if tt.setupDir != nil {
				tt.setupDir(t, tmpDir)
			}

			cmd := NewInitCommand()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), "drills configuration written!")

			for _, f := range tt.wantFiles {
				path := filepath.Join(tmpDir, f)
				_, err := os.Stat(path)
				assert.False(t, os.IsNotExist(err), "expected file/dir %q to exist", f)
			}
		})
	}
}

func TestInitCommandMetadata(t *testing.T) {
	cmd := NewInitCommand()

	assert.Equal(t, "init [directory]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("force"), "--force flag should exist")
	assert.NotNil(t, cmd.Flags().Lookup("example"), "--example flag should exist")
}

func TestInitCreatesLoadableConfig(t *testing.T) {
	for _, args := range [][]string{nil, {"--example"}} {
		config.ResetConfig()
		t.Chdir(t.TempDir())

		cmd := NewInitCommand()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute())

		content, err := os.ReadFile("drills.yaml")
		require.NoError(t, err, "failed to read drills.yaml")
		assert.Contains(t, string(content), "limit: 20")

		cfg, err := config.LoadConfig("", nil)
		require.NoError(t, err, "written config should load")
		assert.Equal(t, uint32(20), cfg.FizzBuzz.Limit)
		assert.Equal(t, uint64(3), cfg.Collatz.Start)
		config.ResetConfig()
	}
}
