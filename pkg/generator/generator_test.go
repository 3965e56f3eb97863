package generator

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "specify")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+content), 0o755))
	return path
}

func TestRun_Success(t *testing.T) {
	bin := writeScript(t, "echo generated\nexit 0\n")

	r := NewSpecifyRunner(t.TempDir(), "sh", WithBinary(bin))

	assert.NoError(t, r.Run(context.Background()))
}

func TestRun_FailureSurfacesStderr(t *testing.T) {
	bin := writeScript(t, "echo 'template pack unavailable' >&2\nexit 1\n")

	r := NewSpecifyRunner(t.TempDir(), "sh", WithBinary(bin))

	err := r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template pack unavailable")
}

func TestRun_ReceivesDialectSelector(t *testing.T) {
	root := t.TempDir()
	bin := writeScript(t, `echo "$@" > args.txt`)

	r := NewSpecifyRunner(root, "sh", WithBinary(bin))
	require.NoError(t, r.Run(context.Background()))

	args, err := os.ReadFile(filepath.Join(root, "args.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(args), "--script sh")
	assert.Contains(t, string(args), "--force")
}

func TestRun_MissingBinary(t *testing.T) {
	r := NewSpecifyRunner(t.TempDir(), "sh", WithBinary(filepath.Join(t.TempDir(), "no-such-binary")))

	assert.Error(t, r.Run(context.Background()))
}
