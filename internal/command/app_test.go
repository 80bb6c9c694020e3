// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/tfdoctor/tfdoctor/internal/meta"
)

func TestInitApp_FlagSurface(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"tfdoctor"})
	require.NoError(t, err)

	assert.Equal(t, "tfdoctor", app.Name)
	assert.NotNil(t, app.Action)

	var names []string
	for _, f := range app.Flags {
		names = append(names, f.Names()[0])
	}
	assert.Equal(t, []string{"color", "dir", "no-color", "profile", "version"}, names)
}

func TestInitApp_CompletionSubcommand(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"tfdoctor"})
	require.NoError(t, err)

	var cmd *cli.Command
	for _, c := range app.Commands {
		if c.Name == "completion" {
			cmd = c
		}
	}
	require.NotNil(t, cmd)
	assert.NotNil(t, cmd.Action)
}

func TestCompletionScripts_TargetBinary(t *testing.T) {
	assert.Contains(t, bashCompletionScript, "complete -F _tfdoctor tfdoctor")
	assert.Contains(t, zshCompletionScript, "compdef _tfdoctor tfdoctor")
	assert.NotContains(t, bashCompletionScript, "tfctl")
	assert.NotContains(t, zshCompletionScript, "tfctl")
}

func TestNewProfileFlag_EnvSource(t *testing.T) {
	t.Setenv("AWS_PROFILE", "staging")

	flag := NewProfileFlag()
	app := &cli.Command{
		Name:  "tfdoctor",
		Flags: []cli.Flag{flag},
		Action: func(_ context.Context, cmd *cli.Command) error {
			assert.Equal(t, "staging", cmd.String("profile"))
			return nil
		},
	}

	require.NoError(t, app.Run(context.Background(), []string{"tfdoctor"}))
}

func TestNewProfileFlag_ExplicitWinsOverEnv(t *testing.T) {
	t.Setenv("AWS_PROFILE", "staging")

	app := &cli.Command{
		Name:  "tfdoctor",
		Flags: []cli.Flag{NewProfileFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			assert.Equal(t, "prod", cmd.String("profile"))
			return nil
		},
	}

	require.NoError(t, app.Run(context.Background(), []string{"tfdoctor", "--profile", "prod"}))
}

func TestNameSpacedValueChain_AppendsTwoSources(t *testing.T) {
	flag := &cli.StringFlag{
		Name:    "profile",
		Sources: cli.NewValueSourceChain(cli.EnvVar("AWS_PROFILE")),
	}

	before := len(flag.Sources.Chain)
	flag = NameSpacedValueChainFlagFromConfigFile("doctor", "/tmp/tfdoctor.yaml", flag)
	assert.Len(t, flag.Sources.Chain, before+2)
}

func TestNewDirFlag_Default(t *testing.T) {
	flag := NewDirFlag()
	assert.Equal(t, ".", flag.Value)
	assert.Equal(t, []string{"dir", "d"}, flag.Names())
}

func TestCompletionBuilder_CarriesMeta(t *testing.T) {
	m := meta.Meta{StartingDir: "/work"}
	cmd := completionCommandBuilder(m)
	got, ok := cmd.Metadata["meta"].(meta.Meta)
	require.True(t, ok)
	assert.Equal(t, "/work", got.StartingDir)
}
