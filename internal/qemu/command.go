// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// Command is a single QEMU command that can be launched.
type Command struct {
	name string
	args []string
}

// NewCommand creates a new [Command] from the given [CommandSpec].
//
// The [CommandSpec] is validated and its arguments are compiled.
func NewCommand(spec CommandSpec) (*Command, error) {
	err := spec.Validate()
	if err != nil {
		return nil, err
	}

	args, err := BuildArgumentStrings(spec.arguments())
	if err != nil {
		return nil, fmt.Errorf("build argument strings: %w", err)
	}

	return &Command{
		name: spec.Executable,
		args: args,
	}, nil
}

// Name returns the executable of the command.
func (c *Command) Name() string {
	return c.name
}

// Args returns a copy of the command's arguments.
func (c *Command) Args() []string {
	return append([]string(nil), c.args...)
}

// String returns the command line with all elements quoted for use in a
// shell.
func (c *Command) String() string {
	parts := make([]string, 0, len(c.args)+1)
	parts = append(parts, shellescape.Quote(c.name))

	for _, arg := range c.args {
		parts = append(parts, shellescape.Quote(arg))
	}

	return strings.Join(parts, " ")
}
