// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boottest

import (
	"errors"
	"fmt"
)

var (
	// ErrImageNotFound is returned if the disc image does not exist.
	ErrImageNotFound = errors.New("image not found")

	// ErrNotRegularFile is returned if the disc image is not a regular file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrInvalidScenario is returned if a [Scenario] can not be run.
	ErrInvalidScenario = errors.New("invalid scenario")
)

// CheckpointTimeoutError is returned if the marker of a [Checkpoint] did not
// show up in the debug log in time.
type CheckpointTimeoutError struct {
	Stage      Stage
	Checkpoint Checkpoint
}

// Error implements the [error] interface.
func (e *CheckpointTimeoutError) Error() string {
	return fmt.Sprintf("%s: marker %q not found within %s",
		e.Stage, e.Checkpoint.Marker, e.Checkpoint.Timeout)
}

// Is implements the [errors.Is] interface.
func (*CheckpointTimeoutError) Is(other error) bool {
	_, ok := other.(*CheckpointTimeoutError)
	return ok
}
