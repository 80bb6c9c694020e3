// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"

	"github.com/tfdoctor/tfdoctor/internal/check"
)

// TerraformCheck probes for the terraform binary. It is queried for presence
// and version only; no provisioning command is ever invoked. Absence is a
// warning since the credential checks stand on their own.
type TerraformCheck struct{}

func (c *TerraformCheck) Name() string  { return "terraform" }
func (c *TerraformCheck) Title() string { return "Terraform installation" }
func (c *TerraformCheck) Fatal() bool   { return false }

func (c *TerraformCheck) Run(ctx context.Context, rs *RunState) check.Result {
	r := check.New(c.Name(), c.Title())

	path, err := rs.Exec.LookPath("terraform")
	if err != nil {
		r.Warnf("terraform not found on PATH")
		r.Detailf("install it from %s", terraformInstallURL)
		return *r
	}

	out, code, err := rs.Exec.CombinedOutput(ctx, "terraform", "version")
	if err != nil || code != 0 {
		r.Warnf("terraform found at %s but 'terraform version' failed", path)
		return *r
	}

	r.Passf("%s", firstLine(out))
	r.Detailf("path: %s", path)
	return *r
}
