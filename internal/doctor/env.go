// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"os"
	"strings"
	"unicode"

	"github.com/tfdoctor/tfdoctor/internal/check"
	"github.com/tfdoctor/tfdoctor/internal/config"
)

const (
	envAccessKey    = "AWS_ACCESS_KEY_ID"
	envSecretKey    = "AWS_SECRET_ACCESS_KEY"
	envSessionToken = "AWS_SESSION_TOKEN"
	envProfile      = "AWS_PROFILE"
)

// Preview lengths match what operators are used to seeing from the course
// scripts; the config file can override them.
const (
	defaultAccessKeyPreview = 12
	defaultSecretKeyPreview = 5
)

// EnvCheck inspects the four credential-related environment variables. It
// never fails: unset variables are informational since the shared
// credentials file is an equally valid source.
type EnvCheck struct{}

func (c *EnvCheck) Name() string  { return "env" }
func (c *EnvCheck) Title() string { return "Credential environment variables" }
func (c *EnvCheck) Fatal() bool   { return false }

func (c *EnvCheck) Run(_ context.Context, _ *RunState) check.Result {
	r := check.New(c.Name(), c.Title())

	accessLen, _ := config.GetInt("redact.access-key-id", defaultAccessKeyPreview)
	secretLen, _ := config.GetInt("redact.secret-access-key", defaultSecretKeyPreview)

	anySet := false

	if v, ok := os.LookupEnv(envAccessKey); ok {
		anySet = true
		r.Passf("%s is set (%s)", envAccessKey, redact(v, accessLen))
		warnWhitespace(r, envAccessKey, v)
	} else {
		r.Infof("%s is not set", envAccessKey)
	}

	if v, ok := os.LookupEnv(envSecretKey); ok {
		anySet = true
		r.Passf("%s is set (%s)", envSecretKey, redact(v, secretLen))
		warnWhitespace(r, envSecretKey, v)
	} else {
		r.Infof("%s is not set", envSecretKey)
	}

	if _, ok := os.LookupEnv(envSessionToken); ok {
		anySet = true
		r.Passf("%s is set (temporary credentials in use)", envSessionToken)
	} else {
		r.Infof("%s is not set", envSessionToken)
	}

	if v, ok := os.LookupEnv(envProfile); ok {
		anySet = true
		r.Passf("%s=%s", envProfile, v)
	} else {
		r.Infof("%s is not set", envProfile)
	}

	if !anySet {
		r.Infof("no credential variables set; the AWS CLI will use the shared credentials file")
	}

	return *r
}

// warnWhitespace flags embedded whitespace, the classic copy/paste mistake
// that turns into an InvalidClientTokenId error.
func warnWhitespace(r *check.Result, name string, v string) {
	if strings.IndexFunc(v, unicode.IsSpace) >= 0 {
		r.Warnf("%s contains whitespace; re-paste the value without spaces or line breaks", name)
	}
}

// redact returns a preview of at most n leading characters followed by an
// ellipsis. Values shorter than n are shown whole, still suffixed so the
// reader knows the value is truncated on principle.
func redact(v string, n int) string {
	if n < 0 {
		n = 0
	}
	if len(v) > n {
		v = v[:n]
	}
	return v + "..."
}
