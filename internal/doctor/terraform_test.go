// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package doctor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tfdoctor/tfdoctor/internal/check"
	"github.com/tfdoctor/tfdoctor/internal/cliexec"
)

func TestTerraformCheck_Found(t *testing.T) {
	rs := &RunState{Exec: &cliexec.ScriptRunner{
		Paths: map[string]string{"terraform": "/usr/local/bin/terraform"},
		Cmds: map[string]cliexec.Script{
			"terraform version": {Out: "Terraform v1.9.5\non linux_amd64\n"},
		},
	}}

	res := (&TerraformCheck{}).Run(context.Background(), rs)

	assert.Equal(t, check.StatusPass, res.Status)
	out := resultText(res)
	assert.Contains(t, out, "Terraform v1.9.5")
	assert.Contains(t, out, "path: /usr/local/bin/terraform")
}

func TestTerraformCheck_NotFound(t *testing.T) {
	res := (&TerraformCheck{}).Run(context.Background(), &RunState{Exec: &cliexec.ScriptRunner{}})

	// Absence is a warning, never a failure.
	assert.Equal(t, check.StatusWarn, res.Status)
	assert.False(t, res.Failed())
	out := resultText(res)
	assert.Contains(t, out, "terraform not found on PATH")
	assert.Contains(t, out, terraformInstallURL)
}

func TestTerraformCheck_VersionCommandBroken(t *testing.T) {
	rs := &RunState{Exec: &cliexec.ScriptRunner{
		Paths: map[string]string{"terraform": "/opt/terraform"},
	}}

	res := (&TerraformCheck{}).Run(context.Background(), rs)

	assert.Equal(t, check.StatusWarn, res.Status)
	assert.Contains(t, resultText(res), "'terraform version' failed")
}
