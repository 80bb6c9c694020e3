// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI surface for tfdoctor. It wires flags, the
// root diagnostic action, and shell completion.
package command
