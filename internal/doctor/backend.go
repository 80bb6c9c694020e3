// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tfdoctor/tfdoctor/internal/awsx"
	"github.com/tfdoctor/tfdoctor/internal/check"
	"github.com/tfdoctor/tfdoctor/internal/tfscan"
)

// BackendCheck scans the working directory for a backend declaration and,
// when an s3 backend names a literal bucket, probes the bucket with a
// read-only HeadBucket call. State content is never read. Advisory only: a
// lesson directory with no backend at all is the common case.
type BackendCheck struct {
	find       func(dir string) (*tfscan.Backend, error)
	loadConfig func(ctx context.Context, opts ...awsx.Option) (awsv2.Config, error)
	newS3      func(cfg awsv2.Config) awsx.S3API
}

// NewBackendCheck wires the check to the real scanner and SDK.
func NewBackendCheck() *BackendCheck {
	return &BackendCheck{
		find:       tfscan.FindBackend,
		loadConfig: awsx.LoadAWSConfig,
		newS3: func(cfg awsv2.Config) awsx.S3API {
			return awsx.NewS3(cfg)
		},
	}
}

func (c *BackendCheck) Name() string  { return "backend" }
func (c *BackendCheck) Title() string { return "Terraform backend (advisory)" }
func (c *BackendCheck) Fatal() bool   { return false }

func (c *BackendCheck) Run(ctx context.Context, rs *RunState) check.Result {
	r := check.New(c.Name(), c.Title())

	be, err := c.find(rs.ScanDir)
	if err != nil {
		r.Warnf("could not scan %s: %v", rs.ScanDir, err)
		return *r
	}

	if be == nil {
		r.Infof("no backend declaration found in %s", rs.ScanDir)
		return *r
	}

	r.Passf("%s backend declared in %s", be.Type, be.File)

	if be.Type != "s3" {
		r.Infof("no bucket to probe for a %s backend", be.Type)
		return *r
	}

	if be.Bucket == "" {
		r.Infof("bucket is not a literal value; skipping the reachability probe")
		return *r
	}

	var opts []awsx.Option
	if rs.Profile != "" {
		opts = append(opts, awsx.WithProfile(rs.Profile))
	}
	if be.Region != "" {
		opts = append(opts, awsx.WithRegion(be.Region))
	}

	cfg, err := c.loadConfig(ctx, opts...)
	if err != nil {
		r.Warnf("could not load SDK config: %v", err)
		return *r
	}

	_, err = c.newS3(cfg).HeadBucket(ctx, &s3v2.HeadBucketInput{
		Bucket: awsv2.String(be.Bucket),
	})
	if err != nil {
		r.Warnf("state bucket %q is not reachable: %v", be.Bucket, err)
		r.Detailf("'terraform init' will fail until the bucket exists and is readable")
		return *r
	}

	r.Passf("state bucket %q is reachable", be.Bucket)
	return *r
}
