// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/tfdoctor/tfdoctor/internal/config"
)

// Meta contains runtime metadata shared by the diagnostic run. It carries CLI
// arguments, loaded configuration, context, the directory scanned for backend
// configuration, and the starting working directory.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	ScanDir     string
	StartingDir string
}
