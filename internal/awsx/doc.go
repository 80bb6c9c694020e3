// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package awsx adapts the AWS SDK v2 for the advisory diagnostics: config
// loading over the shared credential chain plus thin STS and S3 client
// constructors. The SDK performs its own signing and credential resolution;
// nothing here reimplements either.
package awsx
