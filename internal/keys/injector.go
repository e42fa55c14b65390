// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package keys

import (
	"context"
	"log/slog"
	"time"

	"github.com/aibor/bootcheck/internal/poll"
)

// DefaultDelay is the pause between two key events.
const DefaultDelay = 100 * time.Millisecond

// Sender sends a single key event.
type Sender interface {
	SendKey(key string) error
}

// Injector delivers key sequences through a [Sender].
type Injector struct {
	Sender Sender

	// Delay between two consecutive key events. Must be greater than zero.
	Delay time.Duration

	// Clock used for the delay. If nil, [poll.SystemClock] is used.
	Clock poll.Clock
}

// Inject sends all keys of the sequence in order.
//
// If sending a key fails, the rest of the sequence is skipped and a
// [DeliveryError] wrapping the sender's error is returned.
func (i *Injector) Inject(ctx context.Context, seq Sequence) error {
	clock := i.Clock
	if clock == nil {
		clock = poll.SystemClock{}
	}

	for idx, key := range seq {
		if idx > 0 {
			clock.Sleep(ctx, i.Delay)
		}

		err := ctx.Err()
		if err == nil {
			err = i.Sender.SendKey(key)
		}

		if err != nil {
			return &DeliveryError{
				Delivered: idx,
				Total:     len(seq),
				Err:       err,
			}
		}

		slog.Debug("Sent key", slog.String("key", key))
	}

	return nil
}

// Type builds the [Sequence] for the command and injects it.
func (i *Injector) Type(ctx context.Context, command string) error {
	seq, err := FromCommand(command)
	if err != nil {
		return err
	}

	return i.Inject(ctx, seq)
}
