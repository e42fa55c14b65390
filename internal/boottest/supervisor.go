// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boottest

import (
	"context"

	"github.com/aibor/bootcheck/internal/keys"
	"github.com/aibor/bootcheck/internal/qemu"
)

// Process is the control surface of a launched emulator.
type Process interface {
	keys.Sender

	Alive() bool
	ExitInfo() (qemu.ExitInfo, error)
	Terminate() error
}

// Supervisor launches emulator processes.
type Supervisor interface {
	Launch(ctx context.Context, cmd *qemu.Command) (Process, error)
}

// QEMUSupervisor is the [Supervisor] running actual QEMU processes.
type QEMUSupervisor struct {
	Supervisor qemu.Supervisor
}

// Launch implements [Supervisor].
func (s *QEMUSupervisor) Launch(
	ctx context.Context,
	cmd *qemu.Command,
) (Process, error) {
	proc, err := s.Supervisor.Launch(ctx, cmd)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return proc, nil
}
