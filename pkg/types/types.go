package types

// LinkSpec is one declared mapping from the config: a source file or
// directory that should be reachable through a symlink at Destination.
// Both paths are fully expanded and absolute by the time a LinkSpec exists.
type LinkSpec struct {
	// Source is the file or directory the symlink should point at
	Source string `json:"source" yaml:"source"`

	// Destination is the path where the symlink should live
	Destination string `json:"destination" yaml:"destination"`
}

// LinkState classifies the relationship between a LinkSpec and the real
// filesystem. It is computed fresh on every invocation, never cached.
type LinkState string

const (
	// StateMatched means the destination is a symlink resolving to the source
	StateMatched LinkState = "matched"

	// StateMissing means the destination does not exist, or is safely
	// replaceable (dangling symlink, empty directory)
	StateMissing LinkState = "missing"

	// StateConflict means the destination holds something that would be
	// lost by linking over it
	StateConflict LinkState = "conflict"
)

// ResolutionDecision is the operator's answer for one conflicting link.
type ResolutionDecision string

const (
	// DecisionSkip leaves the destination untouched
	DecisionSkip ResolutionDecision = "skip"

	// DecisionReplace removes the destination and links over it
	DecisionReplace ResolutionDecision = "replace"

	// DecisionBackup moves the destination aside before linking
	DecisionBackup ResolutionDecision = "backup"
)

// ConflictPreview describes what a Replace or BackupAndReplace would do,
// so a decision source can show the operator what is at stake.
type ConflictPreview struct {
	// Spec is the link whose destination conflicts
	Spec LinkSpec

	// Existing describes what currently occupies the destination
	// ("file", "directory", or "symlink -> <target>")
	Existing string

	// BackupPath is where the destination would be moved on backup
	BackupPath string
}

// DecisionSource supplies resolution decisions for conflicting links.
// The console implementation prompts the operator; tests inject fakes.
// In force mode the engine never consults the source.
type DecisionSource interface {
	Resolve(preview ConflictPreview) (ResolutionDecision, error)
}
