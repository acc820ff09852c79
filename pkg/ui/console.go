package ui

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/dzavadindev/dbdm/pkg/types"
)

// Option labels shown in the conflict prompt
const (
	optionSkip    = "Skip"
	optionReplace = "Replace"
	optionBackup  = "Backup and replace"
)

// ConsoleDecisionSource implements types.DecisionSource by prompting the
// operator on the terminal
type ConsoleDecisionSource struct{}

// NewConsoleDecisionSource creates a new console decision source
func NewConsoleDecisionSource() *ConsoleDecisionSource {
	return &ConsoleDecisionSource{}
}

// Resolve shows the conflict preview and asks the operator what to do
func (c *ConsoleDecisionSource) Resolve(preview types.ConflictPreview) (types.ResolutionDecision, error) {
	fmt.Println()
	fmt.Printf("Conflict at %s\n", PathStyle.Render(preview.Spec.Destination))
	fmt.Printf("  currently:  %s\n", preview.Existing)
	fmt.Printf("  wanted:     symlink -> %s\n", preview.Spec.Source)
	fmt.Printf("  backup to:  %s\n", preview.BackupPath)

	selected, err := pterm.DefaultInteractiveSelect.
		WithOptions([]string{optionSkip, optionReplace, optionBackup}).
		WithDefaultText("Resolve conflict").
		Show()
	if err != nil {
		return "", fmt.Errorf("failed to read resolution choice: %w", err)
	}

	switch selected {
	case optionReplace:
		return types.DecisionReplace, nil
	case optionBackup:
		return types.DecisionBackup, nil
	default:
		return types.DecisionSkip, nil
	}
}

// Verify interface compliance
var _ types.DecisionSource = (*ConsoleDecisionSource)(nil)
