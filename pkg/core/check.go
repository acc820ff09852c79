package core

import (
	"github.com/dzavadindev/dbdm/pkg/logging"
	"github.com/dzavadindev/dbdm/pkg/types"
)

// CheckOptions contains options for the check command
type CheckOptions struct {
	// FS is the filesystem to inspect
	FS types.FS

	// Specs is the parsed link list, in declaration order
	Specs []types.LinkSpec
}

// CheckResult contains the result of the check command
type CheckResult struct {
	// Links holds one report per declared link, in declaration order
	Links []LinkReport `json:"links" yaml:"links"`
}

// LinkReport is the evaluated state of a single declared link
type LinkReport struct {
	Spec  types.LinkSpec  `json:"spec" yaml:"spec"`
	State types.LinkState `json:"state,omitempty" yaml:"state,omitempty"`
	Error string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// Check evaluates every declared link and reports its state. No mutation:
// check is safe to run at any time. Links that cannot be evaluated carry
// the error on their report and do not block the rest of the batch.
func Check(opts CheckOptions) *CheckResult {
	logger := logging.GetLogger("core.check")

	result := &CheckResult{Links: make([]LinkReport, 0, len(opts.Specs))}
	for _, spec := range opts.Specs {
		report := LinkReport{Spec: spec}

		state, err := Evaluate(opts.FS, spec)
		if err != nil {
			report.Error = err.Error()
			logger.Warn().Err(err).Str("destination", spec.Destination).Msg("Link evaluation failed")
		} else {
			report.State = state
			logger.Debug().
				Str("source", spec.Source).
				Str("destination", spec.Destination).
				Str("state", string(state)).
				Msg("Link evaluated")
		}

		result.Links = append(result.Links, report)
	}

	return result
}
