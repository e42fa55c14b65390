// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package exitcode maps run results to process exit codes.
package exitcode

// Exit codes of the bootcheck command.
const (
	Success = 0
	Failure = 1
)

// From returns the exit code for the given run error.
//
// If the error is nil, the exit code is [Success]. Any error, be it a missing
// image, a failed checkpoint or bad configuration, results in [Failure].
func From(err error) int {
	if err == nil {
		return Success
	}

	return Failure
}
