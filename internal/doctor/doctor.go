// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"errors"

	"github.com/tfdoctor/tfdoctor/internal/check"
	"github.com/tfdoctor/tfdoctor/internal/cliexec"
	"github.com/tfdoctor/tfdoctor/internal/log"
	"github.com/tfdoctor/tfdoctor/internal/output"
)

// ErrPreflight signals that a fatal check failed. The check has already
// printed its diagnostics, so callers map this to exit code 1 without
// printing anything further.
var ErrPreflight = errors.New("preflight failed")

// Check is one diagnostic step in the fixed sequence.
type Check interface {
	Name() string
	Title() string
	// Fatal reports whether a failing result aborts the whole run.
	Fatal() bool
	Run(ctx context.Context, rs *RunState) check.Result
}

// RunState is the only state shared across checks in a run: the execution
// runner, the operator's selections, and the output captured from the
// identity probe, which the clock-skew check and the SDK cross-check re-read.
type RunState struct {
	Exec    cliexec.Runner
	Profile string
	ScanDir string

	IdentityRaw string
	IdentityOK  bool
	Account     string
}

// Outcome aggregates a finished run: whether the identity probe succeeded
// (which alone decides the exit code) and the per-check results.
type Outcome struct {
	IdentityVerified bool
	Results          []check.Result
}

// Runner executes checks in order, rendering each result as it lands.
type Runner struct {
	Out    *output.Printer
	State  *RunState
	Checks []Check
}

// NewRunner wires a runner over the given state with the default check
// sequence unless an explicit one is provided.
func NewRunner(out *output.Printer, rs *RunState, checks ...Check) *Runner {
	if len(checks) == 0 {
		checks = DefaultChecks()
	}
	return &Runner{Out: out, State: rs, Checks: checks}
}

// DefaultChecks returns the full diagnostic sequence in its fixed order.
func DefaultChecks() []Check {
	return []Check{
		&AWSCLICheck{},
		&EnvCheck{},
		&CredFileCheck{},
		&ConfigFileCheck{},
		&IdentityCheck{},
		&ClockSkewCheck{},
		&TerraformCheck{},
		NewChainCheck(),
		NewBackendCheck(),
	}
}

// Run executes the sequence. A fatal check failure stops the run immediately
// and returns ErrPreflight; otherwise the success summary is printed and the
// outcome reports the identity verification result.
func (r *Runner) Run(ctx context.Context) (Outcome, error) {
	var outcome Outcome

	total := len(r.Checks)
	for i, c := range r.Checks {
		r.Out.Section(i+1, total, c.Title())

		res := c.Run(ctx, r.State)
		log.Debugf("check ran: name=%s status=%s lines=%d", c.Name(), res.Status, len(res.Lines))

		r.Out.Result(res)
		outcome.Results = append(outcome.Results, res)

		if res.Failed() && c.Fatal() {
			return outcome, ErrPreflight
		}
	}

	outcome.IdentityVerified = r.State.IdentityOK

	r.Out.Banner("All credential checks passed. You are ready to run Terraform.")
	r.Out.Checklist("Next steps", nextSteps)
	r.Out.Summary(outcome.Results)

	return outcome, nil
}
