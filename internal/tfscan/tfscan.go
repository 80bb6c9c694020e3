// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tfscan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/tfdoctor/tfdoctor/internal/log"
)

// Backend describes a backend block found in a Terraform configuration.
// Bucket, Key and Region are populated only for literal values; expressions
// needing evaluation are left empty since the scan never builds an eval
// context.
type Backend struct {
	Type   string
	Bucket string
	Key    string
	Region string
	File   string
}

var terraformSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "terraform"},
	},
}

var backendSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "backend", LabelNames: []string{"type"}},
		{Type: "cloud"},
	},
}

// FindBackend scans *.tf files in dir for a terraform block declaring a
// backend and returns the first one found, or nil when no file declares one.
// Files that fail to parse are skipped; a partial or misconfigured working
// directory is an advisory condition, not an error.
func FindBackend(dir string) (*Backend, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".tf") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	parser := hclparse.NewParser()

	for _, name := range names {
		path := filepath.Join(dir, name)

		f, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			log.Debugf("parse skipped: file=%s diags=%v", path, diags)
			continue
		}

		if be := findInBody(f.Body, path); be != nil {
			return be, nil
		}
	}

	return nil, nil
}

// findInBody walks terraform blocks in one file body looking for backend or
// cloud blocks.
func findInBody(body hcl.Body, path string) *Backend {
	content, _, diags := body.PartialContent(terraformSchema)
	if diags.HasErrors() {
		log.Debugf("terraform block content err: file=%s diags=%v", path, diags)
		return nil
	}

	for _, tfBlock := range content.Blocks {
		inner, _, diags := tfBlock.Body.PartialContent(backendSchema)
		if diags.HasErrors() {
			log.Debugf("backend block content err: file=%s diags=%v", path, diags)
			continue
		}

		for _, blk := range inner.Blocks {
			switch blk.Type {
			case "cloud":
				return &Backend{Type: "cloud", File: path}
			case "backend":
				be := &Backend{File: path}
				if len(blk.Labels) > 0 {
					be.Type = blk.Labels[0]
				}

				attrs, _ := blk.Body.JustAttributes()
				be.Bucket = literalString(attrs, "bucket")
				be.Key = literalString(attrs, "key")
				be.Region = literalString(attrs, "region")

				return be
			}
		}
	}

	return nil
}

// literalString evaluates the named attribute without an eval context, so
// only literal strings resolve. Anything else yields "".
func literalString(attrs hcl.Attributes, name string) string {
	a, ok := attrs[name]
	if !ok {
		return ""
	}

	v, diags := a.Expr.Value(nil)
	if diags.HasErrors() || v.Type() != cty.String || v.IsNull() {
		return ""
	}

	return v.AsString()
}
