// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package keys

import (
	"errors"
	"fmt"
)

// ErrUnsupportedKey is returned if a character has no known key name.
var ErrUnsupportedKey = errors.New("unsupported key")

// DeliveryError is returned if a [Sequence] was only partially delivered.
type DeliveryError struct {
	Delivered int
	Total     int
	Err       error
}

// Error implements the [error] interface.
func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivered %d of %d keys: %v",
		e.Delivered, e.Total, e.Err)
}

// Is implements the [errors.Is] interface.
func (*DeliveryError) Is(other error) bool {
	_, ok := other.(*DeliveryError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *DeliveryError) Unwrap() error {
	return e.Err
}
