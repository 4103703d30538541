package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"sim", "--duration", "2s", "--seed", "7", "--fps", "50", "--log-level", "error"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "frames     100\n")
	assert.Contains(t, out.String(), "simulated  2s\n")
	assert.Contains(t, out.String(), "shots")
}

func TestBadLogLevel(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"sim", "--duration", "1s", "--log-level", "loud"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagLogLevel = "info"
	})

	assert.ErrorContains(t, rootCmd.Execute(), "log level")
}

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)
	w, h, err := s.getSize()
	require.NoError(t, err)
	assert.Equal(t, [2]int{80, 24}, [2]int{w, h})

	s.update(120, 40)
	w, h, _ = s.getSize()
	assert.Equal(t, [2]int{120, 40}, [2]int{w, h})
}
