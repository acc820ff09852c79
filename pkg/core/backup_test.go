package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzavadindev/dbdm/pkg/filesystem"
)

func TestNextBackupPath(t *testing.T) {
	fs := filesystem.NewOS()

	t.Run("first backup uses the bare suffix", func(t *testing.T) {
		dir := t.TempDir()
		dst := filepath.Join(dir, "nvim")

		got := NextBackupPath(fs, dst)
		assert.Equal(t, filepath.Join(dir, "nvim.bak.dbdm"), got)
	})

	t.Run("is deterministic without filesystem changes", func(t *testing.T) {
		dir := t.TempDir()
		dst := filepath.Join(dir, "nvim")

		first := NextBackupPath(fs, dst)
		second := NextBackupPath(fs, dst)
		assert.Equal(t, first, second)
	})

	t.Run("never returns an existing path", func(t *testing.T) {
		dir := t.TempDir()
		dst := filepath.Join(dir, "nvim")
		writeFile(t, filepath.Join(dir, "nvim.bak.dbdm"), "old backup")

		got := NextBackupPath(fs, dst)
		assert.Equal(t, filepath.Join(dir, "nvim.bak.dbdm.1"), got)
		_, err := os.Lstat(got)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("counter keeps incrementing past taken slots", func(t *testing.T) {
		dir := t.TempDir()
		dst := filepath.Join(dir, "nvim")
		writeFile(t, filepath.Join(dir, "nvim.bak.dbdm"), "b0")
		writeFile(t, filepath.Join(dir, "nvim.bak.dbdm.1"), "b1")
		writeFile(t, filepath.Join(dir, "nvim.bak.dbdm.2"), "b2")

		got := NextBackupPath(fs, dst)
		assert.Equal(t, filepath.Join(dir, "nvim.bak.dbdm.3"), got)
	})

	t.Run("dangling symlink counts as occupied", func(t *testing.T) {
		dir := t.TempDir()
		dst := filepath.Join(dir, "nvim")
		require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "nvim.bak.dbdm")))

		got := NextBackupPath(fs, dst)
		assert.Equal(t, filepath.Join(dir, "nvim.bak.dbdm.1"), got)
	})

	t.Run("directory destination backs up beside itself", func(t *testing.T) {
		dir := t.TempDir()
		dst := filepath.Join(dir, "confdir")
		require.NoError(t, os.Mkdir(dst, 0755))

		got := NextBackupPath(fs, dst)
		assert.Equal(t, filepath.Join(dir, "confdir.bak.dbdm"), got)
	})

	t.Run("computes without creating anything", func(t *testing.T) {
		dir := t.TempDir()
		NextBackupPath(fs, filepath.Join(dir, "nvim"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
