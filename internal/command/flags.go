// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var (
	colorFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "color",
		Aliases:     []string{"c"},
		Usage:       "force colored output even when stdout is not a terminal",
		HideDefault: true,
	}

	noColorFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "no-color",
		Usage:       "disable colored output",
		HideDefault: true,
	}
)

// NewProfileFlag constructs the "profile" flag. The value chain is the flag
// itself, then AWS_PROFILE, then the namespaced and global config file keys
// when a config file is present.
func NewProfileFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "profile",
		Aliases: []string{"p"},
		Usage:   "AWS profile to diagnose. Passed through to every aws invocation",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWS_PROFILE"),
		),
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewDirFlag constructs the "dir" flag naming the Terraform working directory
// whose backend configuration is inspected.
func NewDirFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "dir",
		Aliases: []string{"d"},
		Usage:   "Terraform working directory to inspect for backend configuration",
		Value:   ".",
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
