package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"deedles.dev/lerp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		out  string
	}{
		{"default", []string{"-start", "0,10", "-end", "1,20"}, "0.5,15\n"},
		{"scalar", []string{"-start", "3", "-end", "4", "-t", "5"}, "8\n"},
		{"elementwise", []string{"-start", "0,0", "-end", "10,10", "-t", "0,1"}, "0,10\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out strings.Builder
			require.NoError(t, run(test.args, &out))
			assert.Equal(t, test.out, out.String())
		})
	}
}

func TestRunErrors(t *testing.T) {
	var out strings.Builder
	err := run([]string{"-start", "1,2", "-end", "1"}, &out)
	assert.ErrorIs(t, err, lerp.ErrLengthMismatch)

	err = run([]string{"-start", "1,2", "-end", "1,2", "-t", "1,2,3"}, &out)
	assert.ErrorIs(t, err, lerp.ErrLengthMismatch)

	err = run([]string{"-start", "1"}, &out)
	assert.ErrorIs(t, err, errNoInput)
	assert.Empty(t, out.String())
}

func TestRunConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lerp.ini")
	err := os.WriteFile(path, []byte(strings.Join([]string{
		"[lerp]",
		"start = 0",
		"start = 10",
		"end = 2",
		"end = 20",
		"t = 0.25",
	}, "\n")), 0644)
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, run([]string{"-config", path}, &out))
	assert.Equal(t, "0.5,12.5\n", out.String())

	out.Reset()
	require.NoError(t, run([]string{"-config", path, "-t", "1"}, &out))
	assert.Equal(t, "2,20\n", out.String())

	out.Reset()
	require.NoError(t, run([]string{"-config", path, "-start", "4,8"}, &out))
	assert.Equal(t, "3.5,11\n", out.String())

	out.Reset()
	require.NoError(t, run([]string{"-config", path, "-end", "4", "-start", "0"}, &out))
	assert.Equal(t, "1\n", out.String())

	out.Reset()
	err = run([]string{"-config", path, "-end", "4"}, &out)
	assert.ErrorIs(t, err, lerp.ErrLengthMismatch)

	err = run([]string{"-config", filepath.Join(t.TempDir(), "missing.ini")}, &out)
	assert.Error(t, err)
}
