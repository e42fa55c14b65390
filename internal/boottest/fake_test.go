// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boottest_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/aibor/bootcheck/internal/boottest"
	"github.com/aibor/bootcheck/internal/keys"
	"github.com/aibor/bootcheck/internal/qemu"
)

// fakeProcess emulates a guest shell that appends the configured response to
// the log once a command is completed with the return key.
type fakeProcess struct {
	t         *testing.T
	logPath   string
	responses map[string]string

	// crashOnKey makes the process exit on the first key event.
	crashOnKey bool
	exitCode   int
	stderr     string

	alive        bool
	line         []string
	keys         []string
	terminations int
}

func (p *fakeProcess) appendLog(text string) {
	p.t.Helper()

	file, err := os.OpenFile(p.logPath,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		p.t.Fatalf("open log: %v", err)
	}
	defer file.Close()

	_, err = file.WriteString(text)
	if err != nil {
		p.t.Fatalf("write log: %v", err)
	}
}

func (p *fakeProcess) SendKey(key string) error {
	if p.crashOnKey {
		p.alive = false
	}

	if !p.alive {
		return fmt.Errorf("%w: process exited", qemu.ErrChannelClosed)
	}

	p.keys = append(p.keys, key)

	if key != keys.Return {
		p.line = append(p.line, key)
		return nil
	}

	command := strings.Join(p.line, "")
	p.line = nil

	if response, exists := p.responses[command]; exists {
		p.appendLog(response)
	}

	return nil
}

func (p *fakeProcess) Alive() bool {
	return p.alive
}

func (p *fakeProcess) ExitInfo() (qemu.ExitInfo, error) {
	if p.alive {
		return qemu.ExitInfo{}, qemu.ErrProcessRunning
	}

	return qemu.ExitInfo{Code: p.exitCode, Stderr: p.stderr}, nil
}

func (p *fakeProcess) Terminate() error {
	p.terminations++
	p.alive = false

	return nil
}

type fakeSupervisor struct {
	proc      *fakeProcess
	launchErr error

	// bootLog is written to the log file on launch, if not nil.
	bootLog *string

	launches int
	cmd      *qemu.Command
}

func (s *fakeSupervisor) Launch(
	_ context.Context,
	cmd *qemu.Command,
) (boottest.Process, error) {
	s.launches++
	s.cmd = cmd

	if s.launchErr != nil {
		return nil, s.launchErr
	}

	s.proc.alive = true

	if s.bootLog != nil {
		s.proc.appendLog(*s.bootLog)
	}

	return s.proc, nil
}

func ptr[T any](v T) *T {
	return &v
}

func davOSResponses() map[string]string {
	return map[string]string{
		"help":    "help\nCommands:\n  help\n  version\n> ",
		"version": "version\nDavOS 0.1.0 (64bit)\n> ",
	}
}
