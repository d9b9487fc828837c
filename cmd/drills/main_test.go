// Package main provides tests for the drills CLI.
package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/leapstack-labs/drills/internal/cli"
	"github.com/leapstack-labs/drills/internal/cli/config"
)

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("version command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "drills v") {
		t.Errorf("version output should contain 'drills v', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	expectedCommands := []string{"run", "list", "fizzbuzz", "collatz", "transpose", "repl", "init", "config"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestRunCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	config.ResetConfig()

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"run", "--output", "markdown"})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("run command error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"Hello fellow Rustaceans! w00t",
		"3 -> 10 -> 5 -> 16 -> 8 -> 4 -> 2 -> 1",
		"a: [42 42 42 42 42 0 42 42 42 42]",
		"fizzbuzz",
		"new area: 75",
		"15 * 1000 = 15000",
		"Iterating over array: 10 20 30",
		"301 302 303 ",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("run output should contain %q, got: %s", want, output)
		}
	}
}

func TestRunCommandSelect(t *testing.T) {
	t.Chdir(t.TempDir())
	config.ResetConfig()

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"run", "--select", "transpose", "--output", "markdown"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("run --select error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "transposed:") {
		t.Errorf("output should contain the transpose demo, got: %s", output)
	}
	if strings.Contains(output, "Hello fellow Rustaceans") {
		t.Errorf("output should not contain unselected demos, got: %s", output)
	}
}

func TestCompletionCommand(t *testing.T) {
	shells := []string{"bash", "zsh", "fish", "powershell"}

	for _, shell := range shells {
		t.Run(shell, func(t *testing.T) {
			cmd := cli.NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs([]string{"completion", shell})

			err := cmd.Execute()
			if err != nil {
				t.Errorf("completion %s command error = %v", shell, err)
			}
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"unknown-command"})

	err := cmd.Execute()
	if err == nil {
		t.Error("unknown command should return an error")
	}
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}
