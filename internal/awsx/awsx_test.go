// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package awsx

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	stsv2 "github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWithProfile verifies that WithProfile sets the profile option
// correctly.
func TestWithProfile(t *testing.T) {
	tests := []struct {
		name     string
		profile  string
		expected string
	}{
		{
			name:     "empty profile",
			profile:  "",
			expected: "",
		},
		{
			name:     "default profile",
			profile:  "default",
			expected: "default",
		},
		{
			name:     "custom profile",
			profile:  "my-profile",
			expected: "my-profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts options
			opt := WithProfile(tt.profile)
			opt(&opts)
			assert.Equal(t, tt.expected, opts.profile)
		})
	}
}

// TestWithRegion verifies that WithRegion sets the region option
// correctly.
func TestWithRegion(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		expected string
	}{
		{
			name:     "empty region",
			region:   "",
			expected: "",
		},
		{
			name:     "us-east-1",
			region:   "us-east-1",
			expected: "us-east-1",
		},
		{
			name:     "eu-west-1",
			region:   "eu-west-1",
			expected: "eu-west-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts options
			opt := WithRegion(tt.region)
			opt(&opts)
			assert.Equal(t, tt.expected, opts.region)
		})
	}
}

// TestWithRetryer verifies that WithRetryer sets the retryer function
// option.
func TestWithRetryer(t *testing.T) {
	mockRetryer := func() awsv2.Retryer {
		return retry.NewStandard()
	}

	var opts options
	opt := WithRetryer(mockRetryer)
	opt(&opts)

	assert.NotNil(t, opts.retryer)
	result := opts.retryer()
	assert.NotNil(t, result)
}

// TestLoadAWSConfig_NoOptions verifies LoadAWSConfig loads successfully
// with no overrides, relying on defaults and environment.
func TestLoadAWSConfig_NoOptions(t *testing.T) {
	ctx := context.Background()
	cfg, err := LoadAWSConfig(ctx)

	// We expect this to succeed (no network required, uses default config
	// chain). The config should be valid even if no credentials are
	// available locally (config chain just won't load creds).
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
}

// TestLoadAWSConfig_WithRegion verifies that region option is applied
// during config loading.
func TestLoadAWSConfig_WithRegion(t *testing.T) {
	ctx := context.Background()
	testRegion := "us-west-2"

	cfg, err := LoadAWSConfig(ctx, WithRegion(testRegion))

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, testRegion, cfg.Region)
}

// TestLoadAWSConfig_OptionsOrder verifies that later options override
// earlier ones.
func TestLoadAWSConfig_OptionsOrder(t *testing.T) {
	region1 := "us-east-1"
	region2 := "eu-west-1"

	ctx := context.Background()
	cfg, err := LoadAWSConfig(
		ctx,
		WithRegion(region1),
		WithRegion(region2),
	)

	assert.NoError(t, err)
	assert.Equal(t, region2, cfg.Region)
}

// TestNewSTS_BasicConstruction verifies that NewSTS constructs an STS
// client from a valid config and that it satisfies STSAPI.
func TestNewSTS_BasicConstruction(t *testing.T) {
	ctx := context.Background()
	cfg, err := LoadAWSConfig(ctx, WithRegion("us-east-1"))
	require.NoError(t, err)

	client := NewSTS(cfg)

	assert.NotNil(t, client)
	assert.IsType(t, &stsv2.Client{}, client)

	var _ STSAPI = client
}

// TestNewS3_BasicConstruction verifies that NewS3 constructs an S3 client
// from a valid config and that it satisfies S3API.
func TestNewS3_BasicConstruction(t *testing.T) {
	ctx := context.Background()
	cfg, err := LoadAWSConfig(ctx, WithRegion("us-east-1"))
	require.NoError(t, err)

	client := NewS3(cfg)

	assert.NotNil(t, client)
	assert.IsType(t, &s3v2.Client{}, client)

	var _ S3API = client
}
