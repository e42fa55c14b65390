// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package poll

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
)

// ReadFileFunc reads the whole file with the given name.
type ReadFileFunc func(name string) ([]byte, error)

var _ ReadFileFunc = os.ReadFile

// LogFile is a text file written by another process.
type LogFile struct {
	Path string

	// ReadFile is used for reading the file. If nil, [os.ReadFile] is used.
	ReadFile ReadFileFunc
}

// Content returns the current content of the file.
//
// Invalid UTF-8 sequences are dropped, so encoding noise written by the guest
// never makes a read fail. The second return value is false if the file does
// not exist or cannot be read.
func (l *LogFile) Content() (string, bool) {
	readFile := l.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	data, err := readFile(l.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Debug("Failed to read log file",
				slog.String("path", l.Path),
				slog.Any("error", err))
		}

		return "", false
	}

	return strings.ToValidUTF8(string(data), ""), true
}

// Contains returns true if the current content of the file contains the given
// marker. A missing file never contains anything.
func (l *LogFile) Contains(marker string) bool {
	content, exists := l.Content()
	if !exists {
		return false
	}

	return strings.Contains(content, marker)
}

// ContainsFunc returns a [Condition] that checks the file for the marker.
func (l *LogFile) ContainsFunc(marker string) Condition {
	return func() bool {
		return l.Contains(marker)
	}
}
