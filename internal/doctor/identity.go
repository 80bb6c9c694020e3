// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/tfdoctor/tfdoctor/internal/check"
)

// IdentityCheck is the credential-validity probe: a read-only STS
// get-caller-identity call through the AWS CLI, so the CLI's own credential
// resolution chain is the thing being exercised. A failure is fatal and
// prints the fixed cause and remediation checklists.
type IdentityCheck struct{}

func (c *IdentityCheck) Name() string  { return "identity" }
func (c *IdentityCheck) Title() string { return "Identity verification" }
func (c *IdentityCheck) Fatal() bool   { return true }

func (c *IdentityCheck) Run(ctx context.Context, rs *RunState) check.Result {
	r := check.New(c.Name(), c.Title())

	args := []string{"sts", "get-caller-identity", "--output", "json"}
	if rs.Profile != "" {
		args = append(args, "--profile", rs.Profile)
	}

	out, code, err := rs.Exec.CombinedOutput(ctx, "aws", args...)
	rs.IdentityRaw = out

	if err != nil || code != 0 {
		r.Failf("could not verify credentials with AWS")
		rawLines(r, out)

		for i, cause := range identityCauses {
			if i == 0 {
				r.Infof("common causes:")
			}
			r.Detailf("%d. %s", i+1, cause)
		}
		for i, step := range identityRemediation {
			if i == 0 {
				r.Infof("how to fix:")
			}
			r.Detailf("%d. %s", i+1, step)
		}
		return *r
	}

	rs.IdentityOK = true

	// Parsing is best-effort and purely cosmetic: a valid call with output we
	// cannot parse is still a pass, shown raw.
	parsed := gjson.Parse(out)
	userID := parsed.Get("UserId").String()
	account := parsed.Get("Account").String()
	arn := parsed.Get("Arn").String()

	if userID == "" || account == "" || arn == "" {
		r.Passf("credentials are valid")
		rawLines(r, out)
		return *r
	}

	rs.Account = account

	r.Passf("credentials are valid")
	r.Detailf("UserId:  %s", userID)
	r.Detailf("Account: %s", account)
	r.Detailf("Arn:     %s", arn)
	return *r
}

// rawLines appends captured CLI output verbatim as detail lines.
func rawLines(r *check.Result, out string) {
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line != "" {
			r.Detailf("%s", line)
		}
	}
}
