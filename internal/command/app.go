// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tfdoctor/tfdoctor/internal/config"
	"github.com/tfdoctor/tfdoctor/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// Save the CWD at startup so the scan directory can be resolved relative
	// to where the operator ran the command.
	sd, _ := os.Getwd()

	// allow short if-style local cfg; no actual outer cfg
	cfg2, _ := config.Load() //nolint
	meta := meta.Meta{
		Args:        args,
		Config:      cfg2,
		Context:     ctx,
		StartingDir: sd,
	}

	// Config file sources only make sense when a config file was found.
	var cfgParams []string
	if cfg2.Source != "" {
		cfgParams = []string{"doctor", cfg2.Source}
	}

	app := &cli.Command{
		Name:  "tfdoctor",
		Usage: "Terraform credential preflight",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "tfdoctor version info",
				HideDefault: true,
			},
			NewProfileFlag(cfgParams...),
			NewDirFlag(cfgParams...),
			colorFlag,
			noColorFlag,
		},
		Action: doctorAction(meta),
	}

	app.Commands = append(app.Commands,
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
