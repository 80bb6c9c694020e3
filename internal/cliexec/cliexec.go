// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cliexec

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/tfdoctor/tfdoctor/internal/log"
)

// Runner abstracts external command execution so checks can be exercised
// without the real AWS or Terraform binaries on PATH.
type Runner interface {
	// LookPath reports the resolved path of an executable, or an error when it
	// cannot be found.
	LookPath(file string) (string, error)
	// CombinedOutput runs a command, waiting for completion, and returns its
	// combined stdout+stderr, its exit code, and any invocation error. A
	// non-zero exit code is reported alongside the captured output rather than
	// swallowing it.
	CombinedOutput(ctx context.Context, name string, args ...string) (string, int, error)
}

// OSRunner is the Runner used outside of tests. It spawns real processes.
type OSRunner struct{}

// LookPath searches for an executable in PATH.
func (r *OSRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// CombinedOutput executes a command and captures stdout and stderr together,
// preserving the interleaving the operator would have seen in a shell.
func (r *OSRunner) CombinedOutput(ctx context.Context, name string, args ...string) (string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	out, err := cmd.CombinedOutput()
	log.Debugf("command ran: name=%s args=%v bytes=%d err=%v", name, args, len(out), err)

	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		} else {
			// Start failures have no exit code; use -1 so callers can tell the
			// two apart.
			code = -1
		}
	}

	return string(out), code, err
}

// Script is a canned response for one command invocation.
type Script struct {
	Out  string
	Code int
	Err  error
}

// ScriptRunner is a Runner test double driven by canned responses. Paths maps
// executable names to resolved paths for LookPath; Cmds maps the full command
// line (name and args joined by spaces) to scripted results.
type ScriptRunner struct {
	Paths map[string]string
	Cmds  map[string]Script
	// Calls records every command line executed, in order.
	Calls []string
}

// LookPath resolves from the Paths map.
func (r *ScriptRunner) LookPath(file string) (string, error) {
	if p, ok := r.Paths[file]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
}

// CombinedOutput replays the scripted result for the given command line.
func (r *ScriptRunner) CombinedOutput(_ context.Context, name string, args ...string) (string, int, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	r.Calls = append(r.Calls, key)

	if s, ok := r.Cmds[key]; ok {
		return s.Out, s.Code, s.Err
	}
	return "", -1, &exec.Error{Name: name, Err: exec.ErrNotFound}
}
