// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package poll

import (
	"context"
	"time"
)

// Clock abstracts time for [Until] and anything else that sleeps.
type Clock interface {
	Now() time.Time

	// Sleep pauses for the given duration or until the context is done.
	Sleep(ctx context.Context, d time.Duration)
}

// SystemClock is the [Clock] backed by the [time] package.
type SystemClock struct{}

// Now implements [Clock].
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep implements [Clock].
func (SystemClock) Sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
