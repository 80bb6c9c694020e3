// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"strings"
	"time"

	"github.com/tfdoctor/tfdoctor/internal/check"
)

// ClockSkewCheck reports the local UTC time and re-examines the output
// captured by the identity probe for the STS skew error code. This is a
// string search over prior output, not a time-sync measurement; it exists to
// name the one failure mode operators rarely suspect.
type ClockSkewCheck struct{}

func (c *ClockSkewCheck) Name() string  { return "clockskew" }
func (c *ClockSkewCheck) Title() string { return "System clock" }
func (c *ClockSkewCheck) Fatal() bool   { return false }

func (c *ClockSkewCheck) Run(_ context.Context, rs *RunState) check.Result {
	r := check.New(c.Name(), c.Title())

	r.Infof("local time: %s", time.Now().UTC().Format("2006-01-02 15:04:05 MST"))

	if strings.Contains(rs.IdentityRaw, skewMarker) {
		r.Warnf("AWS reported %s: the system clock is out of sync", skewMarker)
		r.Detailf("resync with: %s", skewCommand())
		return *r
	}

	r.Passf("system clock appears to be in sync with AWS")
	return *r
}
