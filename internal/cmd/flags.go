// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/aibor/bootcheck/internal/boottest"
	"github.com/aibor/bootcheck/internal/keys"
	"github.com/aibor/bootcheck/internal/poll"
	"github.com/aibor/bootcheck/internal/qemu"
	"github.com/urfave/cli/v2"
)

const (
	name = "bootcheck"

	imageDefault = "build/dav-go-os.iso"
	logDefault   = "qemu.log"

	usageText = `bootcheck [flags...]

Boots the DavOS disc image in QEMU, types commands into its shell and checks
the debug console log for the expected output.

All flags can also be provided via file ./` + localConfigFile + `, with one
argument per line, or via the environment variables given below.`
)

// Set on build.
var version = "dev"

type flags struct {
	image          string
	debugLog       string
	qemuBin        string
	scenario       string
	timeout        time.Duration
	terminateGrace time.Duration
	pollInterval   time.Duration
	keyDelay       time.Duration
	debug          bool
}

func envVar(flagName string) []string {
	suffix := strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
	return []string{"BOOTCHECK_" + suffix}
}

func (f *flags) cliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "image",
			Usage:       "disc image to boot",
			Value:       imageDefault,
			EnvVars:     envVar("image"),
			Destination: &f.image,
		},
		&cli.StringFlag{
			Name:        "log",
			Usage:       "file the guest's debug console is written to",
			Value:       logDefault,
			EnvVars:     envVar("log"),
			Destination: &f.debugLog,
		},
		&cli.StringFlag{
			Name:        "qemu-bin",
			Usage:       "QEMU binary to use",
			Value:       qemu.DefaultExecutable,
			EnvVars:     envVar("qemu-bin"),
			Destination: &f.qemuBin,
		},
		&cli.StringFlag{
			Name:        "scenario",
			Usage:       "YAML file with the steps to run instead of the default",
			EnvVars:     envVar("scenario"),
			Destination: &f.scenario,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "cap for the whole run, 0 for none",
			EnvVars:     envVar("timeout"),
			Destination: &f.timeout,
		},
		&cli.DurationFlag{
			Name:        "terminate-grace",
			Usage:       "time QEMU gets to exit before it is killed",
			Value:       qemu.DefaultTerminateGrace,
			EnvVars:     envVar("terminate-grace"),
			Destination: &f.terminateGrace,
		},
		&cli.DurationFlag{
			Name:        "poll-interval",
			Usage:       "pause between reads of the log file",
			Value:       poll.DefaultInterval,
			EnvVars:     envVar("poll-interval"),
			Destination: &f.pollInterval,
		},
		&cli.DurationFlag{
			Name:        "key-delay",
			Usage:       "pause between key events",
			Value:       keys.DefaultDelay,
			EnvVars:     envVar("key-delay"),
			Destination: &f.keyDelay,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug output",
			EnvVars:     envVar("debug"),
			Destination: &f.debug,
		},
	}
}

func (f *flags) validate() error {
	durations := []struct {
		name  string
		value time.Duration
	}{
		{"timeout", f.timeout},
		{"terminate-grace", f.terminateGrace},
		{"poll-interval", f.pollInterval},
		{"key-delay", f.keyDelay},
	}

	for _, d := range durations {
		if d.value < 0 {
			return &ParseArgsError{
				msg: "invalid flag value",
				err: fmt.Errorf("%s: negative duration %s", d.name, d.value),
			}
		}
	}

	return nil
}

func (f *flags) bootConfig() (boottest.Config, error) {
	cfg := boottest.Config{
		Qemu: qemu.CommandSpec{
			Executable: f.qemuBin,
			Image:      f.image,
			DebugLog:   f.debugLog,
		},
		Timeout:      f.timeout,
		PollInterval: f.pollInterval,
		KeyDelay:     f.keyDelay,
	}

	if f.scenario != "" {
		scenario, err := boottest.LoadScenario(f.scenario)
		if err != nil {
			return boottest.Config{}, err //nolint:wrapcheck
		}

		cfg.Scenario = scenario
	}

	return cfg, nil
}

func newApp(f *flags, cfg IO, action func(*cli.Context) error) *cli.App {
	return &cli.App{
		Name:      name,
		Usage:     "verify the DavOS disc image boots into a working shell",
		UsageText: usageText,
		Version:   version,
		Flags:     f.cliFlags(),
		Reader:    cfg.Stdin,
		Writer:    cfg.Stdout,
		ErrWriter: cfg.Stderr,
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() > 0 {
				return &ParseArgsError{
					msg: "parse args",
					err: fmt.Errorf("%w: %s", ErrUnexpectedArgs,
						strings.Join(cCtx.Args().Slice(), " ")),
				}
			}

			err := f.validate()
			if err != nil {
				return err
			}

			return action(cCtx)
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return &ParseArgsError{msg: "parse args", err: err}
		},
		// Exit codes are handled by [Run].
		ExitErrHandler: func(*cli.Context, error) {},
	}
}
