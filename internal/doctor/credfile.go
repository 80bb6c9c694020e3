// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/tfdoctor/tfdoctor/internal/check"
	"github.com/tfdoctor/tfdoctor/internal/util"
)

// CredFileCheck inspects the shared credentials file: existence, the
// [default] section, and the full profile inventory. Only section headers are
// parsed; key material inside sections is never read.
type CredFileCheck struct{}

func (c *CredFileCheck) Name() string  { return "credfile" }
func (c *CredFileCheck) Title() string { return "Shared credentials file" }
func (c *CredFileCheck) Fatal() bool   { return false }

func (c *CredFileCheck) Run(_ context.Context, rs *RunState) check.Result {
	r := check.New(c.Name(), c.Title())

	path, err := util.CredentialsFile()
	if err != nil {
		r.Warnf("could not resolve home directory: %v", err)
		return *r
	}

	fi, err := os.Stat(path)
	if err != nil {
		r.Infof("credentials file not found: %s", path)
		r.Detailf("run 'aws configure' to create it")
		return *r
	}

	r.Passf("credentials file found: %s", path)
	r.Detailf("last modified %s", humanize.Time(fi.ModTime()))

	sections, err := iniSections(path)
	if err != nil {
		r.Warnf("could not read credentials file: %v", err)
		return *r
	}

	if len(sections) == 0 {
		r.Warnf("credentials file has no profile sections")
		return *r
	}

	if containsString(sections, "default") {
		r.Passf("[default] profile present")
	} else {
		r.Warnf("no [default] profile found")
	}
	r.Detailf("profiles: %s", strings.Join(sections, ", "))

	if rs.Profile != "" && !containsString(sections, rs.Profile) {
		r.Warnf("selected profile [%s] not found in credentials file", rs.Profile)
	}

	return *r
}

// iniSections returns section header names in file order. Lines that are not
// [section] headers are ignored entirely, so a malformed body never breaks
// the scan.
func iniSections(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sections []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, strings.TrimSpace(line[1:len(line)-1]))
		}
	}

	return sections, scanner.Err()
}

func containsString(ss []string, s string) bool {
	for _, candidate := range ss {
		if candidate == s {
			return true
		}
	}
	return false
}
