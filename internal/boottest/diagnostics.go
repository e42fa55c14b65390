// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boottest

import (
	"fmt"
	"io"
	"strings"
)

// Diagnostics is everything an operator needs to triage a failed run without
// running it again.
type Diagnostics struct {
	// Exited is true if the QEMU process exited before the diagnostics were
	// collected. ExitCode and Stderr are only set in this case.
	Exited   bool
	ExitCode int
	Stderr   string

	LogPath  string
	LogFound bool
	Log      string

	// DeliveryErrors are the key delivery failures of the run.
	DeliveryErrors []error
}

func (r *run) collectDiagnostics() Diagnostics {
	diag := Diagnostics{
		LogPath:        r.logFile.Path,
		DeliveryErrors: r.deliveryErrs,
	}

	if r.proc != nil && !r.proc.Alive() {
		info, err := r.proc.ExitInfo()
		if err == nil {
			diag.Exited = true
			diag.ExitCode = info.Code
			diag.Stderr = info.Stderr
		}
	}

	diag.Log, diag.LogFound = r.logFile.Content()

	return diag
}

// WriteTo writes the diagnostics in human readable form.
func (d *Diagnostics) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder

	if d.Exited {
		fmt.Fprintf(&b, "QEMU process exited early with code %d\n", d.ExitCode)
		writeSection(&b, "QEMU stderr", d.Stderr)
	} else {
		b.WriteString("QEMU process still running\n")
	}

	for _, err := range d.DeliveryErrors {
		fmt.Fprintf(&b, "Key delivery failed: %v\n", err)
	}

	if d.LogFound {
		writeSection(&b, d.LogPath+" content", d.Log)
	} else {
		writeSection(&b, d.LogPath+" content", d.LogPath+" file not found.\n")
	}

	n, err := io.WriteString(w, b.String())

	return int64(n), err //nolint:wrapcheck
}

func writeSection(b *strings.Builder, title, content string) {
	header := "--- " + title + " ---"

	b.WriteString(header + "\n")
	b.WriteString(content)

	if content != "" && !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("-", len(header)) + "\n")
}
