package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestRun checks that the built-in cases pass when run from the command.
func TestRun(t *testing.T) {
	require.NoError(t, run(&config{logLevel: "error", timeout: time.Second}))
}

// TestRunInvalidConfig checks that invalid flag values are rejected before
// anything is verified.
func TestRunInvalidConfig(t *testing.T) {
	require.Error(t, run(&config{logLevel: "loud", timeout: time.Second}))
	require.Error(t, run(&config{logLevel: "info", timeout: 0}))
}

// TestRootCommand checks flag parsing and argument validation of the root command.
func TestRootCommand(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--log-level", "warn", "--timeout", "2s"})
	require.NoError(t, cmd.Execute())

	cmd = newRootCommand()
	cmd.SetArgs([]string{"unexpected"})
	require.Error(t, cmd.Execute())

	cmd = newRootCommand()
	cmd.SetArgs([]string{"--timeout", "forever"})
	require.Error(t, cmd.Execute())
}
