// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package poll

import (
	"context"
	"time"
)

// DefaultInterval is the pause between two evaluations in [Until].
const DefaultInterval = 500 * time.Millisecond

// Condition is evaluated by [Until] on each attempt.
type Condition func() bool

// Until evaluates cond until it returns true or the timeout elapsed.
//
// Between attempts it sleeps for interval. It returns true as soon as cond
// succeeds, without sleeping if the first attempt already succeeds. It
// returns false once the elapsed time reached timeout or the context is done.
func Until(
	ctx context.Context,
	clock Clock,
	interval time.Duration,
	timeout time.Duration,
	cond Condition,
) bool {
	start := clock.Now()

	for clock.Now().Sub(start) < timeout {
		if cond() {
			return true
		}

		if ctx.Err() != nil {
			return false
		}

		clock.Sleep(ctx, interval)
	}

	return false
}
