package core

import (
	"os"
	"path/filepath"

	"github.com/dzavadindev/dbdm/pkg/errors"
	"github.com/dzavadindev/dbdm/pkg/types"
)

// Evaluate classifies the relationship between a link spec and the real
// filesystem. It is strictly read-only.
//
// The destination is Missing when nothing of value would be lost by linking
// over it: it does not exist, it is a dangling symlink, or it is an empty
// directory. A symlink whose target resolves to the source is Matched.
// Everything else is a Conflict.
func Evaluate(fs types.FS, spec types.LinkSpec) (types.LinkState, error) {
	info, err := fs.Lstat(spec.Destination)
	if err != nil {
		if os.IsNotExist(err) {
			return types.StateMissing, nil
		}
		return "", errors.Wrapf(err, errors.ErrEvaluate, "cannot inspect %s", spec.Destination)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		return evaluateSymlink(fs, spec)
	}

	if info.IsDir() {
		entries, err := fs.ReadDir(spec.Destination)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrEvaluate, "cannot list %s", spec.Destination)
		}
		if len(entries) == 0 {
			return types.StateMissing, nil
		}
		return types.StateConflict, nil
	}

	return types.StateConflict, nil
}

func evaluateSymlink(fs types.FS, spec types.LinkSpec) (types.LinkState, error) {
	target, err := fs.Readlink(spec.Destination)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrEvaluate, "cannot read symlink %s", spec.Destination)
	}

	resolved := ResolveSymlinkTarget(spec.Destination, target)
	if filepath.Clean(resolved) == filepath.Clean(spec.Source) {
		return types.StateMatched, nil
	}

	// A dangling symlink holds nothing worth preserving
	if _, err := fs.Stat(spec.Destination); err != nil {
		if os.IsNotExist(err) {
			return types.StateMissing, nil
		}
		return "", errors.Wrapf(err, errors.ErrEvaluate, "cannot resolve symlink %s", spec.Destination)
	}

	return types.StateConflict, nil
}

// ResolveSymlinkTarget normalizes a raw symlink target into a concrete path.
// Readlink can return a relative target, which is interpreted relative to
// the symlink's parent directory; the result can then be compared reliably
// with the expected source.
func ResolveSymlinkTarget(linkPath, target string) string {
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(filepath.Dir(linkPath), target)
}
