// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boottest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/aibor/bootcheck/internal/keys"
	"github.com/aibor/bootcheck/internal/poll"
	"github.com/aibor/bootcheck/internal/qemu"
)

// Config describes a single [Run].
type Config struct {
	// Qemu is the emulator invocation. Image and DebugLog are mandatory.
	Qemu qemu.CommandSpec

	// Scenario to run. If empty, [DefaultScenario] is used.
	Scenario Scenario

	// Timeout caps the whole run. Zero means no cap besides the checkpoint
	// timeouts.
	Timeout time.Duration

	// PollInterval is the pause between log file reads. If zero,
	// [poll.DefaultInterval] is used.
	PollInterval time.Duration

	// KeyDelay is the pause between key events. If zero, [keys.DefaultDelay]
	// is used.
	KeyDelay time.Duration

	// Clock used for all waiting. If nil, [poll.SystemClock] is used.
	Clock poll.Clock
}

func (c *Config) addDefaults() {
	c.Qemu.AddDefaults()

	if len(c.Scenario.Steps) == 0 {
		c.Scenario = DefaultScenario()
	}

	if c.PollInterval <= 0 {
		c.PollInterval = poll.DefaultInterval
	}

	if c.KeyDelay <= 0 {
		c.KeyDelay = keys.DefaultDelay
	}

	if c.Clock == nil {
		c.Clock = poll.SystemClock{}
	}
}

// run is the state of a single [Run].
type run struct {
	cfg     Config
	out     io.Writer
	stage   Stage
	logFile poll.LogFile
	proc    Process

	deliveryErrs []error
}

// Run launches QEMU with the configured disc image and works through the
// configured [Scenario].
//
// It returns nil if all checkpoints passed. If a checkpoint that asks for it
// fails, the [Diagnostics] are written to out before returning. The QEMU
// process is terminated before Run returns.
func Run(ctx context.Context, cfg Config, sup Supervisor, out io.Writer) error {
	cfg.addDefaults()

	err := cfg.Scenario.Validate()
	if err != nil {
		return err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	r := &run{
		cfg:     cfg,
		out:     out,
		stage:   StageInit,
		logFile: poll.LogFile{Path: cfg.Qemu.DebugLog},
	}

	err = r.run(ctx, sup)
	if err != nil {
		r.enter(StageFail)
		return err
	}

	r.enter(StagePass)

	return nil
}

func (r *run) enter(stage Stage) {
	slog.Debug("Entering stage",
		slog.String("from", r.stage.String()),
		slog.String("to", stage.String()))

	r.stage = stage
}

func (r *run) run(ctx context.Context, sup Supervisor) error {
	err := r.prepare()
	if err != nil {
		return fmt.Errorf("%s: %w", r.stage, err)
	}

	cmd, err := qemu.NewCommand(r.cfg.Qemu)
	if err != nil {
		return fmt.Errorf("%s: %w", r.stage, err)
	}

	r.enter(StageLaunching)

	slog.Info("Starting QEMU verification",
		slog.String("image", r.cfg.Qemu.Image),
		slog.String("log", r.cfg.Qemu.DebugLog))
	slog.Debug("QEMU command", slog.String("command", cmd.String()))

	r.proc, err = sup.Launch(ctx, cmd)
	if err != nil {
		return fmt.Errorf("%s: %w", r.stage, err)
	}

	defer r.release()

	injector := &keys.Injector{
		Sender: r.proc,
		Delay:  r.cfg.KeyDelay,
		Clock:  r.cfg.Clock,
	}

	for _, step := range r.cfg.Scenario.Steps {
		r.enter(step.Stage())

		switch {
		case step.Checkpoint != nil:
			err = r.await(ctx, *step.Checkpoint)
			if err != nil {
				return err
			}
		case step.Input != nil:
			r.send(ctx, injector, *step.Input)
		}
	}

	slog.Info("All checkpoints passed")

	return nil
}

// prepare makes sure the image exists and no stale log is present that could
// produce false positive matches.
func (r *run) prepare() error {
	stat, err := os.Stat(r.cfg.Qemu.Image)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrImageNotFound, r.cfg.Qemu.Image)
		}

		return fmt.Errorf("image: %w", err)
	}

	if !stat.Mode().IsRegular() {
		return fmt.Errorf("image %s: %w", r.cfg.Qemu.Image, ErrNotRegularFile)
	}

	err = os.Remove(r.logFile.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove stale log: %w", err)
	}

	return nil
}

func (r *run) release() {
	err := r.proc.Terminate()
	if err != nil {
		slog.Error("Failed to terminate QEMU process", slog.Any("error", err))
	}
}

func (r *run) send(ctx context.Context, injector *keys.Injector, input Input) {
	slog.Info("Sending command",
		slog.String("stage", r.stage.String()),
		slog.String("command", input.Command))

	err := injector.Type(ctx, input.Command)
	if err != nil {
		// A closed channel means QEMU is gone. The next checkpoint is going
		// to fail and report it.
		slog.Warn("Key delivery failed",
			slog.String("stage", r.stage.String()),
			slog.Any("error", err))

		r.deliveryErrs = append(r.deliveryErrs,
			fmt.Errorf("%s: %w", r.stage, err))
	}
}

func (r *run) await(ctx context.Context, checkpoint Checkpoint) error {
	slog.Info("Waiting for marker",
		slog.String("stage", r.stage.String()),
		slog.String("marker", checkpoint.Marker))

	found := poll.Until(
		ctx,
		r.cfg.Clock,
		r.cfg.PollInterval,
		checkpoint.Timeout,
		r.logFile.ContainsFunc(checkpoint.Marker),
	)
	if found {
		slog.Info("Marker found", slog.String("stage", r.stage.String()))
		return nil
	}

	var err error = &CheckpointTimeoutError{
		Stage:      r.stage,
		Checkpoint: checkpoint,
	}

	ctxErr := ctx.Err()
	if ctxErr != nil {
		err = fmt.Errorf("%s: run aborted: %w", r.stage, ctxErr)
	}

	if checkpoint.Diagnostics || ctxErr != nil {
		diag := r.collectDiagnostics()

		_, writeErr := diag.WriteTo(r.out)
		if writeErr != nil {
			slog.Error("Failed to write diagnostics",
				slog.Any("error", writeErr))
		}
	}

	return err
}
