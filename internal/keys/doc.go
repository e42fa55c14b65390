// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package keys turns shell commands into QEMU monitor key events and delivers
// them one by one with a settle delay in between, so a guest that polls its
// keyboard buffer slowly does not drop any of them.
package keys
