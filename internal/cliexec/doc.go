// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package cliexec wraps external process invocation behind a small Runner
// interface. The diagnostic checks delegate all AWS and Terraform interaction
// to the respective CLIs, so everything interesting about a check is in the
// command line it builds and how it reads the captured output; the ScriptRunner
// double lets tests drive both without spawning processes.
package cliexec
