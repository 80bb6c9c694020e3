// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"strings"

	"github.com/tfdoctor/tfdoctor/internal/check"
)

// AWSCLICheck verifies that the aws executable is resolvable and reports its
// version. This is the only prerequisite the rest of the sequence cannot
// work around, so a failure here aborts the run.
type AWSCLICheck struct{}

func (c *AWSCLICheck) Name() string  { return "awscli" }
func (c *AWSCLICheck) Title() string { return "AWS CLI installation" }
func (c *AWSCLICheck) Fatal() bool   { return true }

func (c *AWSCLICheck) Run(ctx context.Context, rs *RunState) check.Result {
	r := check.New(c.Name(), c.Title())

	path, err := rs.Exec.LookPath("aws")
	if err != nil {
		r.Failf("AWS CLI not found on PATH")
		r.Detailf("install it from %s", awsInstallURL)
		return *r
	}

	out, code, err := rs.Exec.CombinedOutput(ctx, "aws", "--version")
	if err != nil || code != 0 {
		r.Failf("aws found at %s but 'aws --version' failed", path)
		if s := strings.TrimSpace(out); s != "" {
			r.Detailf("%s", s)
		}
		return *r
	}

	r.Passf("%s", firstLine(out))
	r.Detailf("path: %s", path)
	return *r
}

// firstLine trims the output to its first non-empty line.
func firstLine(s string) string {
	for _, l := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			return t
		}
	}
	return strings.TrimSpace(s)
}
