// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides a CLI command entry point for bootcheck. It handles flag
// parsing, logging setup and mapping of run errors to exit codes.
package cmd
