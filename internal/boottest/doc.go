// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package boottest runs the boot check protocol against a disc image.
//
// A run launches QEMU, then works through the steps of a [Scenario] in
// order: it either waits for a marker to show up in the guest's debug log or
// types a command into the guest shell. The run fails at the first
// checkpoint whose marker does not show up in time. The QEMU process is
// terminated exactly once when the run returns, whatever the outcome.
package boottest
