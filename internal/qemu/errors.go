// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"errors"
)

var (
	// ErrArgumentCollision is returned if two [Argument]s collide.
	ErrArgumentCollision = errors.New("colliding args")

	// ErrChannelClosed is returned if the monitor channel can not be written
	// to anymore, usually because the process exited or crashed.
	ErrChannelClosed = errors.New("monitor channel closed")

	// ErrProcessRunning is returned if exit information is requested while
	// the process is still running.
	ErrProcessRunning = errors.New("process still running")

	// ErrTerminateTimeout is returned if the process did not exit even after
	// it has been killed.
	ErrTerminateTimeout = errors.New("process did not exit in time")
)

// ArgumentError indicates an issue with an input argument.
type ArgumentError struct {
	msg string
}

// Error implements the [error] interface.
func (e *ArgumentError) Error() string {
	return "argument error: " + e.msg
}

// Is implements the [errors.Is] interface.
func (*ArgumentError) Is(other error) bool {
	_, ok := other.(*ArgumentError)
	return ok
}

// LaunchError is returned if the QEMU process could not be started.
type LaunchError struct {
	Executable string
	Err        error
}

// Error implements the [error] interface.
func (e *LaunchError) Error() string {
	return "launch " + e.Executable + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*LaunchError) Is(other error) bool {
	_, ok := other.(*LaunchError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *LaunchError) Unwrap() error {
	return e.Err
}
