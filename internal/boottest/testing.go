// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boottest

// FakeDavOSScript is a body for [qemu.WriteFakeEmulator] that behaves like the
// DavOS shell as seen through the debug log and the QEMU monitor. It prints
// the welcome banner, collects "sendkey" events into a line and answers the
// "help" and "version" commands.
const FakeDavOSScript = `
printf 'Welcome To OS Dav\nWelcome to DavOS 0.1.0\n> ' > "$log"
line=""
while read -r cmd key; do
	[ "$cmd" = sendkey ] || continue
	if [ "$key" != ret ]; then
		line="$line$key"
		continue
	fi
	case "$line" in
		help) printf '%s\nCommands:\n  help\n  version\n> ' "$line" >> "$log" ;;
		version) printf '%s\nDavOS 0.1.0 (64bit)\n> ' "$line" >> "$log" ;;
	esac
	line=""
done
`
