// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tfdoctor/tfdoctor/internal/check"
)

func TestPrinter_Result(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	r := check.New("env", "Environment variables")
	r.Passf("AWS_ACCESS_KEY_ID is set (AKIAIOSFODNN...)")
	r.Warnf("value contains whitespace")
	r.Detailf("profiles: default, dev")
	r.Infof("AWS_SESSION_TOKEN is not set")

	p.Result(*r)

	out := buf.String()
	assert.Contains(t, out, "✓ AWS_ACCESS_KEY_ID is set (AKIAIOSFODNN...)")
	assert.Contains(t, out, "! value contains whitespace")
	assert.Contains(t, out, "      profiles: default, dev")
	assert.Contains(t, out, "· AWS_SESSION_TOKEN is not set")

	// No escape sequences without color.
	assert.NotContains(t, out, "\x1b[")
}

func TestPrinter_Section(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Section(5, 9, "Identity verification")

	assert.Contains(t, buf.String(), "[5/9] Identity verification")
}

func TestPrinter_Checklist(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Checklist("Common causes", []string{"first", "second", "third"})

	out := buf.String()
	assert.Contains(t, out, "Common causes")
	assert.Contains(t, out, "  1. first")
	assert.Contains(t, out, "  2. second")
	assert.Contains(t, out, "  3. third")
}

func TestPrinter_Banner(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Banner("All credential checks passed")

	assert.Contains(t, buf.String(), "All credential checks passed")
}

func TestPrinter_Summary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	r1 := check.New("awscli", "AWS CLI installation")
	r1.Passf("found")
	r2 := check.New("configfile", "AWS config file")
	r2.Warnf("no default region")

	p.Summary([]check.Result{*r1, *r2})

	out := buf.String()
	assert.Contains(t, out, "AWS CLI installation")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "AWS config file")
	assert.Contains(t, out, "WARN")
}

func TestPrinter_Summary_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Summary(nil)

	assert.Empty(t, buf.String())
}
