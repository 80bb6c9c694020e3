// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package doctor runs the ordered credential diagnostic sequence: AWS CLI
// presence, credential environment variables, the shared credentials and
// config files, the STS identity probe, clock-skew detection, the Terraform
// binary, and two advisory SDK probes (credential chain, state bucket).
//
// The sequence is strictly linear. Two checks (the AWS CLI probe and the
// identity probe) are fatal when they fail and abort the run with a non-zero
// exit; everything else is advisory and never alters the exit code.
package doctor
