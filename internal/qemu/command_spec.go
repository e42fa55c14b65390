// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

// DefaultExecutable is the QEMU binary used if none is given.
const DefaultExecutable = "qemu-system-x86_64"

// CommandSpec defines the parameters for a [Command].
type CommandSpec struct {
	// Path to the qemu-system binary.
	Executable string

	// Path to the bootable disc image.
	Image string

	// Path to the file the guest's debugcon output is written to. QEMU
	// creates the file.
	DebugLog string

	// ExtraArgs are extra arguments that are passed to the QEMU command.
	// They must not collide with the essential arguments set by the command
	// itself or an error is returned on [NewCommand].
	ExtraArgs []Argument
}

// AddDefaults sets default values for fields that are not set yet.
func (s *CommandSpec) AddDefaults() {
	if s.Executable == "" {
		s.Executable = DefaultExecutable
	}
}

// Validate checks for missing mandatory parameters.
func (s *CommandSpec) Validate() error {
	switch {
	case s.Executable == "":
		return &ArgumentError{"no executable"}
	case s.Image == "":
		return &ArgumentError{"no image"}
	case s.DebugLog == "":
		return &ArgumentError{"no debug log"}
	}

	return nil
}

// arguments compiles the argument list for the QEMU command.
func (s *CommandSpec) arguments() []Argument {
	args := []Argument{
		// Boot from the disc image.
		UniqueArg("cdrom", s.Image),
		// Guest writes its console output to port 0xe9.
		UniqueArg("debugcon", "file:"+s.DebugLog),
		// No serial line, so the guest does not block on it.
		UniqueArg("serial", "none"),
		// Monitor on stdio for injecting key events.
		UniqueArg("monitor", "stdio"),
		// Disable video output.
		UniqueArg("display", "none"),
		// Keep the machine as is on faults, so the log stays inspectable.
		UniqueArg("no-reboot"),
		UniqueArg("no-shutdown"),
	}

	return append(args, s.ExtraArgs...)
}
