// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ArgumentValueAssertionFunc returns an [assert.ComparisonAssertionFunc] that
// can be used to assert the value of the Argument with the given name.
func ArgumentValueAssertionFunc(
	name string,
	assertion assert.ComparisonAssertionFunc,
) assert.ComparisonAssertionFunc {
	return func(t assert.TestingT, arg1, arg2 any, arg3 ...any) bool {
		args, ok := arg1.([]Argument)
		if !assert.True(t, ok, "first argument should be []Argument") {
			return false
		}

		for _, arg := range args {
			if name != arg.name {
				continue
			}

			return assertion(t, arg.value, arg2, arg3...)
		}

		return assert.Fail(t, "Argument not found")
	}
}

// FakeEmulatorPreamble is the start of every script written by
// [WriteFakeEmulator]. It sets the variable "log" to the path given with the
// "-debugcon" argument and "image" to the one given with "-cdrom".
const FakeEmulatorPreamble = `#!/bin/sh
while [ $# -gt 0 ]; do
	case "$1" in
		-debugcon) log="${2#file:}"; shift ;;
		-cdrom) image="$2"; shift ;;
	esac
	shift
done
`

// WriteFakeEmulator writes an executable shell script that can be used in
// place of QEMU and returns its path. The body is appended to
// [FakeEmulatorPreamble].
func WriteFakeEmulator(tb testing.TB, body string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "fake-qemu")

	//nolint:gosec
	err := os.WriteFile(path, []byte(FakeEmulatorPreamble+body), 0o755)
	if err != nil {
		tb.Fatalf("write fake emulator: %v", err)
	}

	return path
}
