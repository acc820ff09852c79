// Package ui renders reconciliation reports for the terminal and provides
// the interactive conflict prompt.
//
// Output adapts to the environment: rich lipgloss styling on capable
// terminals, plain text when piped or when NO_COLOR is set, and json/yaml
// for machine consumption. The conflict prompt implements
// types.DecisionSource, so the engine never talks to a terminal directly.
package ui
