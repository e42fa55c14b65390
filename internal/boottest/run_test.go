// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boottest_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aibor/bootcheck/internal/boottest"
	"github.com/aibor/bootcheck/internal/poll"
	"github.com/aibor/bootcheck/internal/qemu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRun struct {
	cfg   boottest.Config
	sup   *fakeSupervisor
	clock *poll.FakeClock
	out   bytes.Buffer
}

func newTestRun(t *testing.T) *testRun {
	t.Helper()

	dir := t.TempDir()
	image := filepath.Join(dir, "dav-go-os.iso")
	logPath := filepath.Join(dir, "qemu.log")

	require.NoError(t, os.WriteFile(image, []byte("iso"), 0o600))

	clock := poll.NewFakeClock()

	return &testRun{
		cfg: boottest.Config{
			Qemu: qemu.CommandSpec{
				Image:    image,
				DebugLog: logPath,
			},
			Clock: clock,
		},
		sup: &fakeSupervisor{
			proc: &fakeProcess{
				t:         t,
				logPath:   logPath,
				responses: davOSResponses(),
			},
			bootLog: ptr("Welcome To OS Dav\nWelcome to DavOS 0.1.0\n> "),
		},
		clock: clock,
	}
}

func (r *testRun) run(ctx context.Context) error {
	return boottest.Run(ctx, r.cfg, r.sup, &r.out)
}

func TestRunPass(t *testing.T) {
	r := newTestRun(t)

	err := r.run(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 1, r.sup.launches, "launches")
	assert.Equal(t, 1, r.sup.proc.terminations, "terminations")
	assert.Empty(t, r.out.String(), "no diagnostics")
	assert.Equal(t, []string{
		"h", "e", "l", "p", "ret",
		"v", "e", "r", "s", "i", "o", "n", "ret",
	}, r.sup.proc.keys)
}

func TestRunCommandArguments(t *testing.T) {
	r := newTestRun(t)

	require.NoError(t, r.run(t.Context()))

	assert.Equal(t, qemu.DefaultExecutable, r.sup.cmd.Name())
	assert.Equal(t, []string{
		"-cdrom", r.cfg.Qemu.Image,
		"-debugcon", "file:" + r.cfg.Qemu.DebugLog,
		"-serial", "none",
		"-monitor", "stdio",
		"-display", "none",
		"-no-reboot",
		"-no-shutdown",
	}, r.sup.cmd.Args())
}

func TestRunImageNotFound(t *testing.T) {
	r := newTestRun(t)
	r.cfg.Qemu.Image = filepath.Join(t.TempDir(), "missing.iso")

	err := r.run(t.Context())
	require.ErrorIs(t, err, boottest.ErrImageNotFound)

	assert.Zero(t, r.sup.launches, "launches")
	assert.Zero(t, r.sup.proc.terminations, "terminations")
}

func TestRunImageNotRegular(t *testing.T) {
	r := newTestRun(t)
	r.cfg.Qemu.Image = t.TempDir()

	err := r.run(t.Context())
	require.ErrorIs(t, err, boottest.ErrNotRegularFile)

	assert.Zero(t, r.sup.launches, "launches")
}

func TestRunLaunchError(t *testing.T) {
	r := newTestRun(t)
	r.sup.launchErr = &qemu.LaunchError{
		Executable: qemu.DefaultExecutable,
		Err:        os.ErrNotExist,
	}

	err := r.run(t.Context())
	require.ErrorIs(t, err, &qemu.LaunchError{})

	assert.Equal(t, 1, r.sup.launches, "launches")
	assert.Zero(t, r.sup.proc.terminations, "terminations")
}

func TestRunBootTimeout(t *testing.T) {
	tests := []struct {
		name        string
		bootLog     *string
		expectedLog string
	}{
		{
			name:        "no log file",
			expectedLog: "qemu.log file not found.\n",
		},
		{
			name:        "empty log file",
			bootLog:     ptr(""),
			expectedLog: "qemu.log content ---\n-----",
		},
		{
			name:        "wrong output",
			bootLog:     ptr("SeaBIOS\nBooting from DVD/CD...\n"),
			expectedLog: "Booting from DVD/CD...\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRun(t)
			r.sup.bootLog = tt.bootLog

			err := r.run(t.Context())

			var timeoutErr *boottest.CheckpointTimeoutError
			require.ErrorAs(t, err, &timeoutErr)

			assert.Equal(t, boottest.Stage("AwaitBoot"), timeoutErr.Stage)
			assert.Equal(t, 10*time.Second, r.clock.Elapsed(), "bounded wait")
			assert.Equal(t, 1, r.sup.proc.terminations, "terminations")
			assert.Empty(t, r.sup.proc.keys, "no keys sent")
			assert.Contains(t, r.out.String(), "QEMU process still running")
			assert.Contains(t, r.out.String(), tt.expectedLog)
		})
	}
}

func TestRunBootMarkerPresentOnFirstPoll(t *testing.T) {
	r := newTestRun(t)
	r.cfg.Scenario = boottest.Scenario{
		Steps: boottest.DefaultScenario().Steps[:1],
	}

	require.NoError(t, r.run(t.Context()))

	assert.Empty(t, r.clock.Sleeps, "no sleep")
}

func TestRunStaleLogRemoved(t *testing.T) {
	r := newTestRun(t)
	r.sup.bootLog = nil

	stale := "Welcome to DavOS\nCommands:\nDavOS 0.1.0 (64bit)\n"
	require.NoError(t, os.WriteFile(r.cfg.Qemu.DebugLog, []byte(stale), 0o600))

	err := r.run(t.Context())
	require.ErrorIs(t, err, &boottest.CheckpointTimeoutError{})

	assert.Contains(t, r.out.String(), "qemu.log file not found.")
}

func TestRunChannelClosedAfterBoot(t *testing.T) {
	r := newTestRun(t)
	r.sup.proc.crashOnKey = true
	r.sup.proc.exitCode = 1
	r.sup.proc.stderr = "qemu-system-x86_64: guest crashed\n"

	err := r.run(t.Context())

	var timeoutErr *boottest.CheckpointTimeoutError
	require.ErrorAs(t, err, &timeoutErr)

	assert.Equal(t, boottest.Stage("AwaitHelpOutput"), timeoutErr.Stage)
	assert.Equal(t, boottest.MarkerHelp, timeoutErr.Checkpoint.Marker)
	assert.Equal(t, 1, r.sup.proc.terminations, "terminations")

	out := r.out.String()
	assert.Contains(t, out, "QEMU process exited early with code 1")
	assert.Contains(t, out, "qemu-system-x86_64: guest crashed")
	assert.Contains(t, out, "Key delivery failed: SendHelp: delivered 0 of 5 keys")
	assert.Contains(t, out, "Welcome to DavOS 0.1.0")
}

func TestRunModeMarkerMissing(t *testing.T) {
	r := newTestRun(t)
	r.sup.proc.responses["version"] = "version\nDavOS 0.1.0\n> "

	err := r.run(t.Context())

	var timeoutErr *boottest.CheckpointTimeoutError
	require.ErrorAs(t, err, &timeoutErr)

	assert.Equal(t, boottest.Stage("AwaitModeMarker"), timeoutErr.Stage)
	assert.Equal(t, 1, r.sup.proc.terminations, "terminations")
	assert.Empty(t, r.out.String(), "no diagnostics for mode check")
}

func TestRunCanceled(t *testing.T) {
	r := newTestRun(t)
	r.sup.bootLog = nil

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := r.run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, &boottest.CheckpointTimeoutError{})

	assert.Equal(t, 1, r.sup.proc.terminations, "terminations")
	assert.Contains(t, r.out.String(), "qemu.log file not found.")
}

func TestRunOverallTimeout(t *testing.T) {
	r := newTestRun(t)
	r.sup.bootLog = nil
	r.cfg.Timeout = 10 * time.Millisecond
	r.clock.OnSleep = func(time.Duration) {
		time.Sleep(50 * time.Millisecond)
	}

	err := r.run(t.Context())
	require.ErrorIs(t, err, context.DeadlineExceeded)

	assert.Equal(t, 1, r.sup.proc.terminations, "terminations")
}

func TestRunInvalidScenario(t *testing.T) {
	r := newTestRun(t)
	r.cfg.Scenario = boottest.Scenario{
		Steps: []boottest.Step{{}},
	}

	err := r.run(t.Context())
	require.ErrorIs(t, err, boottest.ErrInvalidScenario)

	assert.Zero(t, r.sup.launches, "launches")
}

func TestRunTerminatesOnEveryPath(t *testing.T) {
	scenarios := map[string]func(r *testRun){
		"pass":         func(*testRun) {},
		"boot timeout": func(r *testRun) { r.sup.bootLog = nil },
		"crash":        func(r *testRun) { r.sup.proc.crashOnKey = true },
		"no help": func(r *testRun) {
			delete(r.sup.proc.responses, "help")
		},
		"no version": func(r *testRun) {
			delete(r.sup.proc.responses, "version")
		},
	}

	for name, setup := range scenarios {
		t.Run(name, func(t *testing.T) {
			r := newTestRun(t)
			setup(r)

			_ = r.run(t.Context())

			assert.Equal(t, 1, r.sup.launches, "launches")
			assert.Equal(t, 1, r.sup.proc.terminations, "terminations")
		})
	}
}
