package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/dzavadindev/dbdm/pkg/core"
	"github.com/dzavadindev/dbdm/pkg/types"
)

// stateWidth aligns the leading status column across report lines
const stateWidth = 10

// RenderCheck renders a check report in the given format
func RenderCheck(result *core.CheckResult, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return renderJSON(result)
	case FormatYAML:
		return renderYAML(result)
	default:
		return renderCheckText(result, format == FormatTerminal), nil
	}
}

// RenderSync renders a sync report in the given format
func RenderSync(result *core.SyncResult, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return renderJSON(result)
	case FormatYAML:
		return renderYAML(result)
	default:
		return renderSyncText(result, format == FormatTerminal), nil
	}
}

func renderCheckText(result *core.CheckResult, styled bool) string {
	var out strings.Builder

	for _, link := range result.Links {
		label, style := stateLabel(link.State, link.Error)
		out.WriteString(reportLine(label, style, link.Spec, styled))
		if link.Error != "" {
			out.WriteString(errorLine(link.Error, styled))
		}
	}

	return out.String()
}

func renderSyncText(result *core.SyncResult, styled bool) string {
	var out strings.Builder

	for _, link := range result.Links {
		label, style := outcomeLabel(link.Outcome)
		out.WriteString(reportLine(label, style, link.Spec, styled))
		if link.BackupPath != "" {
			out.WriteString(detailLine(fmt.Sprintf("backup: %s", link.BackupPath), styled))
		}
		if link.Error != "" {
			out.WriteString(errorLine(link.Error, styled))
		}
	}

	return out.String()
}

func reportLine(label string, style lipgloss.Style, spec types.LinkSpec, styled bool) string {
	padded := fmt.Sprintf("%-*s", stateWidth, label)
	arrow := fmt.Sprintf("%s -> %s", spec.Source, spec.Destination)
	if styled {
		return style.Render(padded) + PathStyle.Render(arrow) + "\n"
	}
	return padded + arrow + "\n"
}

func detailLine(text string, styled bool) string {
	line := strings.Repeat(" ", stateWidth) + text
	if styled {
		return MutedStyle.Render(line) + "\n"
	}
	return line + "\n"
}

func errorLine(text string, styled bool) string {
	line := strings.Repeat(" ", stateWidth) + text
	if styled {
		return ErrorStyle.Render(line) + "\n"
	}
	return line + "\n"
}

func stateLabel(state types.LinkState, errMsg string) (string, lipgloss.Style) {
	if errMsg != "" {
		return "error", ErrorStyle
	}
	switch state {
	case types.StateMatched:
		return "matched", MatchedStyle
	case types.StateMissing:
		return "missing", MissingStyle
	case types.StateConflict:
		return "conflict", ConflictStyle
	default:
		return string(state), MutedStyle
	}
}

func outcomeLabel(outcome core.Outcome) (string, lipgloss.Style) {
	switch outcome {
	case core.OutcomeUnchanged:
		return "ok", MatchedStyle
	case core.OutcomeCreated:
		return "created", MatchedStyle
	case core.OutcomeReplaced:
		return "replaced", MissingStyle
	case core.OutcomeBackedUp:
		return "backed-up", MissingStyle
	case core.OutcomeSkipped:
		return "skipped", MutedStyle
	case core.OutcomeFailed:
		return "failed", ErrorStyle
	default:
		return string(outcome), MutedStyle
	}
}

func renderJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(data) + "\n", nil
}

func renderYAML(v interface{}) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(data), nil
}
