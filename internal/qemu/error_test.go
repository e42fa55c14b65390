// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu_test

import (
	"testing"

	"github.com/aibor/bootcheck/internal/qemu"
	"github.com/stretchr/testify/assert"
)

func TestArgumentErrorIs(t *testing.T) {
	//nolint:testifylint
	assert.ErrorIs(t, error(&qemu.ArgumentError{}), &qemu.ArgumentError{})
	assert.NotErrorIs(t, assert.AnError, &qemu.ArgumentError{})
}

func TestLaunchError(t *testing.T) {
	err := &qemu.LaunchError{Executable: "qemu-system-x86_64", Err: assert.AnError}

	//nolint:testifylint
	assert.ErrorIs(t, err, &qemu.LaunchError{})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, assert.AnError, &qemu.LaunchError{})
	assert.Equal(t, "launch qemu-system-x86_64: "+assert.AnError.Error(),
		err.Error())
}
