// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package check

import "fmt"

// Status classifies a single finding or a whole check.
type Status string

const (
	StatusInfo Status = "info"
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// severity orders statuses for escalation. A result's overall Status is the
// worst status of any line appended to it.
var severity = map[Status]int{
	StatusInfo: 0,
	StatusPass: 1,
	StatusWarn: 2,
	StatusFail: 3,
}

// Line is one finding within a check: a status glyph and its message.
type Line struct {
	Status Status
	Text   string
}

// Result holds the outcome of a single check. It exists only for the duration
// of one run; nothing is persisted.
type Result struct {
	Name   string
	Title  string
	Status Status
	Lines  []Line
}

// New returns an empty Result for the named check. Until a line lands it
// reports as informational.
func New(name string, title string) *Result {
	return &Result{Name: name, Title: title, Status: StatusInfo}
}

// Add appends a finding and escalates the overall status when the new line is
// worse than anything seen so far.
func (r *Result) Add(status Status, text string) *Result {
	r.Lines = append(r.Lines, Line{Status: status, Text: text})
	if severity[status] > severity[r.Status] {
		r.Status = status
	}
	return r
}

// Passf appends a passing finding.
func (r *Result) Passf(format string, args ...interface{}) *Result {
	return r.Add(StatusPass, fmt.Sprintf(format, args...))
}

// Warnf appends a warning finding.
func (r *Result) Warnf(format string, args ...interface{}) *Result {
	return r.Add(StatusWarn, fmt.Sprintf(format, args...))
}

// Failf appends a failing finding.
func (r *Result) Failf(format string, args ...interface{}) *Result {
	return r.Add(StatusFail, fmt.Sprintf(format, args...))
}

// Infof appends an informational finding.
func (r *Result) Infof(format string, args ...interface{}) *Result {
	return r.Add(StatusInfo, fmt.Sprintf(format, args...))
}

// Detailf appends an indented detail line under the previous finding. Details
// never alter the overall status.
func (r *Result) Detailf(format string, args ...interface{}) *Result {
	r.Lines = append(r.Lines, Line{Status: "", Text: fmt.Sprintf(format, args...)})
	return r
}

// Failed reports whether the check failed outright.
func (r Result) Failed() bool {
	return r.Status == StatusFail
}
