// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package tfscan locates the backend declaration in a Terraform working
// directory. It reads configuration only; it never touches state.
package tfscan
