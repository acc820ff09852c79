package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzavadindev/dbdm/pkg/filesystem"
	"github.com/dzavadindev/dbdm/pkg/types"
)

// writeFile creates a file with parents for test fixtures
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, dir string) types.LinkSpec
		expected types.LinkState
	}{
		{
			name: "nonexistent destination is missing",
			setup: func(t *testing.T, dir string) types.LinkSpec {
				src := filepath.Join(dir, "src")
				writeFile(t, src, "data")
				return types.LinkSpec{Source: src, Destination: filepath.Join(dir, "dst")}
			},
			expected: types.StateMissing,
		},
		{
			name: "symlink to source is matched",
			setup: func(t *testing.T, dir string) types.LinkSpec {
				src := filepath.Join(dir, "src")
				dst := filepath.Join(dir, "dst")
				writeFile(t, src, "data")
				require.NoError(t, os.Symlink(src, dst))
				return types.LinkSpec{Source: src, Destination: dst}
			},
			expected: types.StateMatched,
		},
		{
			name: "relative symlink resolving to source is matched",
			setup: func(t *testing.T, dir string) types.LinkSpec {
				src := filepath.Join(dir, "src")
				dst := filepath.Join(dir, "dst")
				writeFile(t, src, "data")
				require.NoError(t, os.Symlink("src", dst))
				return types.LinkSpec{Source: src, Destination: dst}
			},
			expected: types.StateMatched,
		},
		{
			name: "dangling symlink is missing",
			setup: func(t *testing.T, dir string) types.LinkSpec {
				src := filepath.Join(dir, "src")
				dst := filepath.Join(dir, "dst")
				writeFile(t, src, "data")
				require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), dst))
				return types.LinkSpec{Source: src, Destination: dst}
			},
			expected: types.StateMissing,
		},
		{
			name: "empty directory is missing",
			setup: func(t *testing.T, dir string) types.LinkSpec {
				src := filepath.Join(dir, "src")
				dst := filepath.Join(dir, "dst")
				writeFile(t, src, "data")
				require.NoError(t, os.Mkdir(dst, 0755))
				return types.LinkSpec{Source: src, Destination: dst}
			},
			expected: types.StateMissing,
		},
		{
			name: "regular file is a conflict",
			setup: func(t *testing.T, dir string) types.LinkSpec {
				src := filepath.Join(dir, "src")
				dst := filepath.Join(dir, "dst")
				writeFile(t, src, "data")
				writeFile(t, dst, "other data")
				return types.LinkSpec{Source: src, Destination: dst}
			},
			expected: types.StateConflict,
		},
		{
			name: "non-empty directory is a conflict",
			setup: func(t *testing.T, dir string) types.LinkSpec {
				src := filepath.Join(dir, "src")
				dst := filepath.Join(dir, "dst")
				writeFile(t, src, "data")
				writeFile(t, filepath.Join(dst, "occupant"), "data")
				return types.LinkSpec{Source: src, Destination: dst}
			},
			expected: types.StateConflict,
		},
		{
			name: "symlink to something else is a conflict",
			setup: func(t *testing.T, dir string) types.LinkSpec {
				src := filepath.Join(dir, "src")
				other := filepath.Join(dir, "other")
				dst := filepath.Join(dir, "dst")
				writeFile(t, src, "data")
				writeFile(t, other, "other data")
				require.NoError(t, os.Symlink(other, dst))
				return types.LinkSpec{Source: src, Destination: dst}
			},
			expected: types.StateConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := tt.setup(t, t.TempDir())

			state, err := Evaluate(filesystem.NewOS(), spec)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, state)
		})
	}
}

func TestEvaluateIsReadOnly(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	writeFile(t, src, "data")
	writeFile(t, dst, "precious")

	_, err := Evaluate(filesystem.NewOS(), types.LinkSpec{Source: src, Destination: dst})
	require.NoError(t, err)

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "precious", string(content))
}

func TestResolveSymlinkTarget(t *testing.T) {
	assert.Equal(t, "/abs/target", ResolveSymlinkTarget("/links/l", "/abs/target"))
	assert.Equal(t, "/links/target", ResolveSymlinkTarget("/links/l", "target"))
	assert.Equal(t, "/target", ResolveSymlinkTarget("/links/l", "../target"))
}
