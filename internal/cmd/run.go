// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/bootcheck/internal/boottest"
	"github.com/aibor/bootcheck/internal/exitcode"
	"github.com/aibor/bootcheck/internal/qemu"
	"github.com/urfave/cli/v2"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	bootCfg, err := flags.bootConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	sup := &boottest.QEMUSupervisor{
		Supervisor: qemu.Supervisor{
			TerminateGrace: flags.terminateGrace,
		},
	}

	// Diagnostics go to stdout, log messages to stderr.
	err = boottest.Run(ctx, bootCfg, sup, cfg.Stdout)
	if err != nil {
		return fmt.Errorf("boot check: %w", err)
	}

	return nil
}

func handleRunError(err error) int {
	if err != nil {
		slog.Error(err.Error())
	}

	return exitcode.From(err)
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return handleRunError(err)
	}

	flags := &flags{}
	app := newApp(flags, cfg, func(cCtx *cli.Context) error {
		setupLogging(cfg.Stderr, flags.debug)

		return run(cCtx.Context, flags, cfg)
	})

	err = app.RunContext(ctx, args)

	return handleRunError(err)
}
