// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"os"
	"strings"

	"github.com/tfdoctor/tfdoctor/internal/check"
	"github.com/tfdoctor/tfdoctor/internal/util"
)

// ConfigFileCheck inspects the shared config file and asks the CLI itself for
// the effective default region, so whatever precedence rules the CLI applies
// are the ones reported.
type ConfigFileCheck struct{}

func (c *ConfigFileCheck) Name() string  { return "configfile" }
func (c *ConfigFileCheck) Title() string { return "AWS config file" }
func (c *ConfigFileCheck) Fatal() bool   { return false }

func (c *ConfigFileCheck) Run(ctx context.Context, rs *RunState) check.Result {
	r := check.New(c.Name(), c.Title())

	path, err := util.ConfigFile()
	if err != nil {
		r.Warnf("could not resolve home directory: %v", err)
		return *r
	}

	if _, err := os.Stat(path); err != nil {
		r.Infof("config file not found: %s", path)
		r.Detailf("run 'aws configure' to set a default region and output format")
		return *r
	}

	r.Passf("config file found: %s", path)

	args := []string{"configure", "get", "region"}
	if rs.Profile != "" {
		args = append(args, "--profile", rs.Profile)
	}

	out, code, err := rs.Exec.CombinedOutput(ctx, "aws", args...)
	region := strings.TrimSpace(out)
	if err != nil || code != 0 || region == "" {
		r.Warnf("no default region is set")
		r.Detailf("set one with 'aws configure set region <region>'")
		return *r
	}

	r.Passf("default region: %s", region)
	return *r
}
