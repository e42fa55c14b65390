// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package poll

import (
	"context"
	"time"
)

// FakeClock is a [Clock] for tests. Time only advances on [FakeClock.Sleep].
type FakeClock struct {
	Current time.Time
	Sleeps  []time.Duration

	// OnSleep is called after each sleep with the total elapsed time since the
	// first call of [FakeClock.Now].
	OnSleep func(elapsed time.Duration)

	start time.Time
}

// NewFakeClock returns a [FakeClock] starting at a fixed point in time.
func NewFakeClock() *FakeClock {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	return &FakeClock{Current: start, start: start}
}

// Now implements [Clock].
func (c *FakeClock) Now() time.Time {
	return c.Current
}

// Sleep implements [Clock].
func (c *FakeClock) Sleep(_ context.Context, d time.Duration) {
	c.Current = c.Current.Add(d)
	c.Sleeps = append(c.Sleeps, d)

	if c.OnSleep != nil {
		c.OnSleep(c.Elapsed())
	}
}

// Elapsed returns the fake time passed since creation.
func (c *FakeClock) Elapsed() time.Duration {
	return c.Current.Sub(c.start)
}

// SleptFor returns the sum of all sleeps.
func (c *FakeClock) SleptFor() time.Duration {
	var total time.Duration
	for _, d := range c.Sleeps {
		total += d
	}

	return total
}
