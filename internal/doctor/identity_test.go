// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package doctor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tfdoctor/tfdoctor/internal/check"
	"github.com/tfdoctor/tfdoctor/internal/cliexec"
)

const identityJSON = `{
    "UserId": "AIDAJQABLZS4A3QDU576Q",
    "Account": "123456789012",
    "Arn": "arn:aws:iam::123456789012:user/terraform-course"
}`

func identityRunner(out string, code int) *cliexec.ScriptRunner {
	return &cliexec.ScriptRunner{
		Cmds: map[string]cliexec.Script{
			"aws sts get-caller-identity --output json": {Out: out, Code: code},
		},
	}
}

func TestIdentityCheck_Success(t *testing.T) {
	rs := &RunState{Exec: identityRunner(identityJSON, 0)}

	res := (&IdentityCheck{}).Run(context.Background(), rs)

	assert.Equal(t, check.StatusPass, res.Status)
	assert.True(t, rs.IdentityOK)
	assert.Equal(t, "123456789012", rs.Account)
	assert.Equal(t, identityJSON, rs.IdentityRaw)

	out := resultText(res)
	assert.Contains(t, out, "UserId:  AIDAJQABLZS4A3QDU576Q")
	assert.Contains(t, out, "Account: 123456789012")
	assert.Contains(t, out, "Arn:     arn:aws:iam::123456789012:user/terraform-course")
}

func TestIdentityCheck_SuccessUnparsableOutput(t *testing.T) {
	raw := "Account: 123456789012 (legacy table output)"
	rs := &RunState{Exec: identityRunner(raw, 0)}

	res := (&IdentityCheck{}).Run(context.Background(), rs)

	// Valid exit status with unparsable output is still a pass; the raw text
	// is echoed instead of the three fields.
	assert.Equal(t, check.StatusPass, res.Status)
	assert.True(t, rs.IdentityOK)
	assert.Empty(t, rs.Account)
	assert.Contains(t, resultText(res), raw)
}

func TestIdentityCheck_Failure(t *testing.T) {
	raw := "An error occurred (InvalidClientTokenId) when calling the GetCallerIdentity operation"
	rs := &RunState{Exec: identityRunner(raw, 255)}

	res := (&IdentityCheck{}).Run(context.Background(), rs)

	assert.True(t, res.Failed())
	assert.False(t, rs.IdentityOK)

	out := resultText(res)
	assert.Contains(t, out, "could not verify credentials")
	assert.Contains(t, out, raw)

	// The five-cause and four-step lists appear exactly once each.
	for _, cause := range identityCauses {
		assert.Equal(t, 1, strings.Count(out, cause))
	}
	for _, step := range identityRemediation {
		assert.Equal(t, 1, strings.Count(out, step))
	}
	assert.Len(t, identityCauses, 5)
	assert.Len(t, identityRemediation, 4)
}

func TestIdentityCheck_ProfileForwarded(t *testing.T) {
	exec := &cliexec.ScriptRunner{
		Cmds: map[string]cliexec.Script{
			"aws sts get-caller-identity --output json --profile dev": {Out: identityJSON},
		},
	}
	rs := &RunState{Exec: exec, Profile: "dev"}

	res := (&IdentityCheck{}).Run(context.Background(), rs)

	assert.Equal(t, check.StatusPass, res.Status)
	assert.Equal(t, []string{"aws sts get-caller-identity --output json --profile dev"}, exec.Calls)
}

func TestIdentityCheck_SkewOutputCaptured(t *testing.T) {
	raw := "An error occurred (RequestTimeTooSkewed): the difference between the request time and the current time is too large"
	rs := &RunState{Exec: identityRunner(raw, 255)}

	res := (&IdentityCheck{}).Run(context.Background(), rs)

	assert.True(t, res.Failed())
	// The raw output stays available for the clock-skew check.
	assert.Contains(t, rs.IdentityRaw, skewMarker)
}
