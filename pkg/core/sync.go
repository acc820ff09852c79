package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/dzavadindev/dbdm/pkg/errors"
	"github.com/dzavadindev/dbdm/pkg/logging"
	"github.com/dzavadindev/dbdm/pkg/types"
)

// Outcome describes what sync did (or decided not to do) for one link
type Outcome string

const (
	// OutcomeUnchanged means the link was already correct
	OutcomeUnchanged Outcome = "unchanged"

	// OutcomeCreated means a missing link was created
	OutcomeCreated Outcome = "created"

	// OutcomeReplaced means a conflicting destination was removed and linked over
	OutcomeReplaced Outcome = "replaced"

	// OutcomeBackedUp means the destination was archived before linking
	OutcomeBackedUp Outcome = "backed-up"

	// OutcomeSkipped means the operator chose to leave the conflict alone
	OutcomeSkipped Outcome = "skipped"

	// OutcomeFailed means this link's processing aborted on an error
	OutcomeFailed Outcome = "failed"
)

// SyncOptions contains options for the sync command
type SyncOptions struct {
	// FS is the filesystem to reconcile against
	FS types.FS

	// Specs is the parsed link list, in declaration order
	Specs []types.LinkSpec

	// Force resolves every conflict as Replace without consulting Decisions
	Force bool

	// Decisions supplies resolution decisions for conflicts. Required
	// unless Force is set; never consulted when it is.
	Decisions types.DecisionSource
}

// SyncResult contains the result of the sync command
type SyncResult struct {
	// Links holds one action record per declared link, in declaration order
	Links []LinkAction `json:"links" yaml:"links"`
}

// LinkAction records what happened to a single link during sync
type LinkAction struct {
	Spec       types.LinkSpec  `json:"spec" yaml:"spec"`
	State      types.LinkState `json:"state,omitempty" yaml:"state,omitempty"`
	Outcome    Outcome         `json:"outcome" yaml:"outcome"`
	BackupPath string          `json:"backupPath,omitempty" yaml:"backupPath,omitempty"`
	Error      string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports how many links ended in a failure outcome
func (r *SyncResult) Failed() int {
	count := 0
	for _, link := range r.Links {
		if link.Outcome == OutcomeFailed {
			count++
		}
	}
	return count
}

// Sync reconciles every declared link against the filesystem, in declaration
// order. Matched links are left alone, missing links are created, and
// conflicts go through the resolution protocol (skip / replace /
// backup-then-replace). A failure aborts only that link's processing; the
// rest of the batch continues.
func Sync(opts SyncOptions) (*SyncResult, error) {
	if !opts.Force && opts.Decisions == nil {
		return nil, errors.New(errors.ErrInvalidInput, "sync requires a decision source unless force is set")
	}

	logger := logging.GetLogger("core.sync")

	result := &SyncResult{Links: make([]LinkAction, 0, len(opts.Specs))}
	for _, spec := range opts.Specs {
		result.Links = append(result.Links, syncLink(opts, spec, logger))
	}

	return result, nil
}

func syncLink(opts SyncOptions, spec types.LinkSpec, logger zerolog.Logger) LinkAction {
	action := LinkAction{Spec: spec}

	state, err := Evaluate(opts.FS, spec)
	if err != nil {
		logger.Warn().Err(err).Str("destination", spec.Destination).Msg("Link evaluation failed")
		return failed(action, err)
	}
	action.State = state

	switch state {
	case types.StateMatched:
		action.Outcome = OutcomeUnchanged

	case types.StateMissing:
		if err := createLink(opts.FS, spec); err != nil {
			logger.Warn().Err(err).Str("destination", spec.Destination).Msg("Link creation failed")
			return failed(action, err)
		}
		action.Outcome = OutcomeCreated
		logger.Info().Str("source", spec.Source).Str("destination", spec.Destination).Msg("Link created")

	case types.StateConflict:
		return resolveConflict(opts, spec, action, logger)
	}

	return action
}

func resolveConflict(opts SyncOptions, spec types.LinkSpec, action LinkAction, logger zerolog.Logger) LinkAction {
	decision, err := decideConflict(opts, spec)
	if err != nil {
		logger.Warn().Err(err).Str("destination", spec.Destination).Msg("Conflict resolution failed")
		return failed(action, err)
	}

	switch decision {
	case types.DecisionSkip:
		action.Outcome = OutcomeSkipped
		logger.Info().Str("destination", spec.Destination).Msg("Conflict skipped")

	case types.DecisionReplace:
		if err := removeExisting(opts.FS, spec.Destination); err != nil {
			return failed(action, err)
		}
		if err := createLink(opts.FS, spec); err != nil {
			return failed(action, err)
		}
		action.Outcome = OutcomeReplaced
		logger.Info().Str("source", spec.Source).Str("destination", spec.Destination).Msg("Link replaced")

	case types.DecisionBackup:
		backup := NextBackupPath(opts.FS, spec.Destination)
		if err := opts.FS.Rename(spec.Destination, backup); err != nil {
			return failed(action, errors.Wrapf(err, errors.ErrBackupMove,
				"cannot move %s to %s", spec.Destination, backup))
		}
		if err := createLink(opts.FS, spec); err != nil {
			action.BackupPath = backup
			return failed(action, err)
		}
		action.Outcome = OutcomeBackedUp
		action.BackupPath = backup
		logger.Info().
			Str("destination", spec.Destination).
			Str("backup", backup).
			Msg("Link backed up and replaced")

	default:
		return failed(action, errors.Newf(errors.ErrDecide, "unknown resolution decision %q", decision))
	}

	return action
}

// decideConflict obtains the resolution decision for one conflict. Force
// mode synthesizes Replace without touching the decision source.
func decideConflict(opts SyncOptions, spec types.LinkSpec) (types.ResolutionDecision, error) {
	if opts.Force {
		return types.DecisionReplace, nil
	}

	preview := types.ConflictPreview{
		Spec:       spec,
		Existing:   describeExisting(opts.FS, spec.Destination),
		BackupPath: NextBackupPath(opts.FS, spec.Destination),
	}

	decision, err := opts.Decisions.Resolve(preview)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrDecide, "cannot obtain decision for %s", spec.Destination)
	}
	return decision, nil
}

// createLink creates the symlink at the destination, making parent
// directories as needed and clearing any safely-replaceable remnant
// (dangling symlink, empty directory) first. A remnant that grew content
// between evaluation and mutation makes Remove fail, which is exactly the
// abort we want.
func createLink(fs types.FS, spec types.LinkSpec) error {
	parent := filepath.Dir(spec.Destination)
	if err := fs.MkdirAll(parent, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent directory %s", parent)
	}

	if _, err := fs.Lstat(spec.Destination); err == nil {
		if err := fs.Remove(spec.Destination); err != nil {
			return errors.Wrapf(err, errors.ErrRemove, "cannot clear %s", spec.Destination)
		}
	}

	if err := fs.Symlink(spec.Source, spec.Destination); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate,
			"cannot link %s to %s", spec.Destination, spec.Source)
	}
	return nil
}

// removeExisting removes whatever occupies the path: files and symlinks via
// Remove, directories recursively. A path that vanished already is fine.
func removeExisting(fs types.FS, path string) error {
	info, err := fs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrRemove, "cannot inspect %s", path)
	}

	if info.Mode()&os.ModeSymlink != 0 || !info.IsDir() {
		err = fs.Remove(path)
	} else {
		err = fs.RemoveAll(path)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrRemove, "cannot remove %s", path)
	}
	return nil
}

// describeExisting summarizes what occupies the destination, for previews
func describeExisting(fs types.FS, path string) string {
	info, err := fs.Lstat(path)
	if err != nil {
		return "unknown"
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		target, err := fs.Readlink(path)
		if err != nil {
			return "symlink"
		}
		return fmt.Sprintf("symlink -> %s", target)
	case info.IsDir():
		return "directory"
	default:
		return "file"
	}
}

func failed(action LinkAction, err error) LinkAction {
	action.Outcome = OutcomeFailed
	action.Error = err.Error()
	return action
}
