package core

import (
	"fmt"
	"path/filepath"

	"github.com/dzavadindev/dbdm/pkg/types"
)

// BackupSuffix is appended to a destination's basename to form its backup name
const BackupSuffix = ".bak.dbdm"

// NextBackupPath computes a collision-free backup path for a conflicting
// destination. The backup sits in the destination's parent directory as
// <basename>.bak.dbdm; if that exists, .1, .2, ... are tried until an unused
// path is found. Pure computation: deterministic for a given filesystem
// state, creates nothing. The move itself happens during sync.
func NextBackupPath(fs types.FS, destination string) string {
	dir := filepath.Dir(destination)
	base := filepath.Base(destination) + BackupSuffix

	candidate := filepath.Join(dir, base)
	for counter := 1; pathExists(fs, candidate); counter++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s.%d", base, counter))
	}
	return candidate
}

// pathExists reports whether anything occupies the path, without following
// symlinks. A dangling symlink still counts as occupied here: renaming onto
// it would clobber it.
func pathExists(fs types.FS, path string) bool {
	_, err := fs.Lstat(path)
	return err == nil
}
