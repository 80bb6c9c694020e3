// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders diagnostic results as styled console text: status
// glyphs per finding, section headers, remediation checklists, the closing
// summary table and the success banner. There is intentionally no
// machine-readable mode; the audience is a human working through a lesson.
package output
