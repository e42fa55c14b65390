// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package poll provides the bounded-deadline wait primitive used to watch
// the guest's debug log for expected markers.
//
// Polling re-reads the whole log file on every attempt. Boot and command
// latencies are in the range of seconds and the log stays small, so there is
// no need for incremental reads.
package poll
