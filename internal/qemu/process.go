// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
)

// DefaultTerminateGrace is the time a process gets to exit after being asked
// to terminate before it is killed.
const DefaultTerminateGrace = 2 * time.Second

// Supervisor launches QEMU processes.
type Supervisor struct {
	// TerminateGrace is the time a process gets to exit after SIGTERM
	// before it is killed. If zero, [DefaultTerminateGrace] is used.
	TerminateGrace time.Duration
}

// Launch starts the given [Command].
//
// The process's stdin is the monitor channel, its stdout is discarded and its
// stderr is captured. If the context is done, the process is terminated the
// same way as by [Process.Terminate].
func (s *Supervisor) Launch(ctx context.Context, cmd *Command) (*Process, error) {
	grace := s.TerminateGrace
	if grace <= 0 {
		grace = DefaultTerminateGrace
	}

	proc := &Process{
		done:  make(chan struct{}),
		grace: grace,
	}

	execCmd := exec.CommandContext(ctx, cmd.name, cmd.args...)
	execCmd.Stdout = nil
	execCmd.Stderr = &proc.stderr
	execCmd.SysProcAttr = sysProcAttr()
	execCmd.WaitDelay = grace
	execCmd.Cancel = func() error {
		return execCmd.Process.Signal(unix.SIGTERM)
	}

	stdin, err := execCmd.StdinPipe()
	if err != nil {
		return nil, &LaunchError{Executable: cmd.name, Err: err}
	}

	err = execCmd.Start()
	if err != nil {
		_ = stdin.Close()
		return nil, &LaunchError{Executable: cmd.name, Err: err}
	}

	proc.cmd = execCmd
	proc.stdin = stdin

	proc.reaper.Go(func() error {
		defer close(proc.done)
		return execCmd.Wait() //nolint:wrapcheck
	})

	slog.Debug("QEMU process started", slog.Int("pid", execCmd.Process.Pid))

	return proc, nil
}

// ExitInfo describes how a [Process] ended.
type ExitInfo struct {
	// Code is the exit code of the process. It is -1 if the process was
	// terminated by a signal.
	Code int

	// Stderr is everything the process wrote to its stderr.
	Stderr string
}

// Process is a running QEMU process launched by [Supervisor.Launch].
//
// It must not be used concurrently.
type Process struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
	grace  time.Duration

	reaper        errgroup.Group
	done          chan struct{}
	terminateOnce sync.Once
	terminateErr  error
}

// Pid returns the process ID.
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// Alive returns true if the process has not exited yet. It does not block.
func (p *Process) Alive() bool {
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// ExitInfo returns the exit code and the captured stderr output.
//
// It returns [ErrProcessRunning] if the process has not exited yet.
func (p *Process) ExitInfo() (ExitInfo, error) {
	if p.Alive() {
		return ExitInfo{}, ErrProcessRunning
	}

	info := ExitInfo{
		Code:   -1,
		Stderr: p.stderr.String(),
	}

	if p.cmd.ProcessState != nil {
		info.Code = p.cmd.ProcessState.ExitCode()
	}

	return info, nil
}

// SendLine writes a single line to the monitor channel.
//
// The returned error matches [ErrChannelClosed] if the process already exited
// or the channel is broken.
func (p *Process) SendLine(text string) error {
	if !p.Alive() {
		return fmt.Errorf("%w: process exited", ErrChannelClosed)
	}

	_, err := io.WriteString(p.stdin, text+"\n")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrChannelClosed, err)
	}

	return nil
}

// SendKey sends a single key event via the monitor's sendkey command.
func (p *Process) SendKey(key string) error {
	return p.SendLine("sendkey " + key)
}

// Terminate stops the process.
//
// It is a no-op if the process already exited. Otherwise the process is asked
// to terminate and killed if it does not exit within the grace period.
// Subsequent calls return the result of the first call.
func (p *Process) Terminate() error {
	p.terminateOnce.Do(func() {
		p.terminateErr = p.terminate()
		_ = p.stdin.Close()
	})

	return p.terminateErr
}

func (p *Process) terminate() error {
	if !p.Alive() {
		return nil
	}

	slog.Debug("Terminating QEMU process", slog.Int("pid", p.Pid()))

	err := p.cmd.Process.Signal(unix.SIGTERM)
	if err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("signal: %w", err)
	}

	if p.waitDone(p.grace) {
		return nil
	}

	slog.Warn("QEMU process did not terminate, killing it",
		slog.Int("pid", p.Pid()))

	err = p.cmd.Process.Kill()
	if err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("kill: %w", err)
	}

	if !p.waitDone(p.grace) {
		return ErrTerminateTimeout
	}

	return nil
}

func (p *Process) waitDone(timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-p.done:
		err := p.reaper.Wait()
		slog.Debug("QEMU process exited", slog.Any("result", err))

		return true
	case <-timer.C:
		return false
	}
}
