// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	stsv2 "github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/dustin/go-humanize"

	"github.com/tfdoctor/tfdoctor/internal/awsx"
	"github.com/tfdoctor/tfdoctor/internal/check"
	"github.com/tfdoctor/tfdoctor/internal/config"
)

// ChainCheck resolves the credential chain through the AWS SDK and
// cross-checks the account against what the CLI reported. The SDK and the
// CLI implement the same resolution rules independently, so a disagreement
// points at a split environment (e.g. env vars visible to one and not the
// other). Advisory only.
type ChainCheck struct {
	loadConfig func(ctx context.Context, opts ...awsx.Option) (awsv2.Config, error)
	newSTS     func(cfg awsv2.Config) awsx.STSAPI
}

// NewChainCheck wires the check to the real SDK.
func NewChainCheck() *ChainCheck {
	return &ChainCheck{
		loadConfig: awsx.LoadAWSConfig,
		newSTS: func(cfg awsv2.Config) awsx.STSAPI {
			return awsx.NewSTS(cfg)
		},
	}
}

func (c *ChainCheck) Name() string  { return "chain" }
func (c *ChainCheck) Title() string { return "Credential chain (SDK)" }
func (c *ChainCheck) Fatal() bool   { return false }

func (c *ChainCheck) Run(ctx context.Context, rs *RunState) check.Result {
	r := check.New(c.Name(), c.Title())

	var opts []awsx.Option
	if rs.Profile != "" {
		opts = append(opts, awsx.WithProfile(rs.Profile))
	}

	cfg, err := c.loadConfig(ctx, opts...)
	if err != nil {
		r.Warnf("could not load SDK config: %v", err)
		return *r
	}

	if cfg.Region != "" {
		r.Passf("resolved region: %s", cfg.Region)
	} else {
		r.Infof("the SDK chain resolved no region")
	}

	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		r.Warnf("credential chain resolution failed: %v", err)
		return *r
	}

	accessLen, _ := config.GetInt("redact.access-key-id", defaultAccessKeyPreview)

	r.Passf("credentials resolved from %s", creds.Source)
	r.Detailf("access key: %s", redact(creds.AccessKeyID, accessLen))
	if creds.CanExpire {
		r.Detailf("expires %s", humanize.Time(creds.Expires))
	}

	out, err := c.newSTS(cfg).GetCallerIdentity(ctx, &stsv2.GetCallerIdentityInput{})
	if err != nil {
		r.Warnf("SDK identity cross-check failed: %v", err)
		return *r
	}

	account := awsv2.ToString(out.Account)
	if rs.Account != "" && account != rs.Account {
		r.Warnf("SDK resolved account %s but the CLI reported %s", account, rs.Account)
		return *r
	}

	r.Passf("SDK cross-check confirms account %s", account)
	return *r
}
