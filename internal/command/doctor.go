// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfdoctor/tfdoctor/internal/cliexec"
	"github.com/tfdoctor/tfdoctor/internal/doctor"
	"github.com/tfdoctor/tfdoctor/internal/log"
	"github.com/tfdoctor/tfdoctor/internal/meta"
	"github.com/tfdoctor/tfdoctor/internal/output"
	"github.com/tfdoctor/tfdoctor/internal/util"
)

// doctorAction is the root command action: it resolves the scan directory and
// output mode, then walks the diagnostic sequence.
func doctorAction(meta meta.Meta) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		dir, err := util.ParseScanDir(cmd.String("dir"))
		if err != nil {
			return fmt.Errorf("failed to parse dir (%s): %w", cmd.String("dir"), err)
		}

		profile := cmd.String("profile")
		log.Debugf("doctor starting: profile=%q dir=%s", profile, dir)

		out := output.NewPrinter(os.Stdout, resolveColor(cmd))
		rs := &doctor.RunState{
			Exec:    &cliexec.OSRunner{},
			Profile: profile,
			ScanDir: dir,
		}

		_, err = doctor.NewRunner(out, rs).Run(ctx)
		return err
	}
}

// resolveColor decides whether output is colorized. NO_COLOR and --no-color
// always win, --color forces it on, and otherwise color simply tracks whether
// stdout is a terminal.
func resolveColor(cmd *cli.Command) bool {
	if cmd.Bool("no-color") || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if cmd.Bool("color") {
		return true
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
