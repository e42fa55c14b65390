// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu provides utilities for composing and running the QEMU system
// emulation command used for boot checks. It expects the required QEMU binary
// to be present on the system.
//
// The guest is booted from a disc image. It is expected to write its console
// output to the debugcon port, which is redirected into a log file. The QEMU
// monitor is bound to the process's stdin, so key events can be injected with
// the monitor's sendkey command. Stdout of the process is discarded and stderr
// is captured for diagnostics.
package qemu
