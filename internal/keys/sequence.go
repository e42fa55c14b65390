// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package keys

import (
	"fmt"
	"strings"
)

// Return is the key name of the return key.
const Return = "ret"

// Key names of the QEMU monitor's sendkey command for characters that are not
// their own key name. Names refer to US keyboard positions.
var namedKeys = map[rune]string{
	' ':  "spc",
	'\t': "tab",
	'-':  "minus",
	'=':  "equal",
	'[':  "bracket_left",
	']':  "bracket_right",
	'\\': "backslash",
	';':  "semicolon",
	'\'': "apostrophe",
	'`':  "grave_accent",
	',':  "comma",
	'.':  "dot",
	'/':  "slash",
	'!':  "shift-1",
	'@':  "shift-2",
	'#':  "shift-3",
	'$':  "shift-4",
	'%':  "shift-5",
	'^':  "shift-6",
	'&':  "shift-7",
	'*':  "shift-8",
	'(':  "shift-9",
	')':  "shift-0",
	'_':  "shift-minus",
	'+':  "shift-equal",
	'{':  "shift-bracket_left",
	'}':  "shift-bracket_right",
	'|':  "shift-backslash",
	':':  "shift-semicolon",
	'"':  "shift-apostrophe",
	'~':  "shift-grave_accent",
	'<':  "shift-comma",
	'>':  "shift-dot",
	'?':  "shift-slash",
}

// Sequence is an ordered list of key names.
type Sequence []string

// String implements [fmt.Stringer].
func (s Sequence) String() string {
	return strings.Join(s, " ")
}

// KeyName returns the QEMU key name for the given character.
func KeyName(char rune) (string, error) {
	switch {
	case 'a' <= char && char <= 'z', '0' <= char && char <= '9':
		return string(char), nil
	case 'A' <= char && char <= 'Z':
		return "shift-" + strings.ToLower(string(char)), nil
	}

	name, exists := namedKeys[char]
	if !exists {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKey, char)
	}

	return name, nil
}

// FromCommand returns the [Sequence] for typing the given command followed by
// the return key.
func FromCommand(command string) (Sequence, error) {
	seq := make(Sequence, 0, len(command)+1)

	for _, char := range command {
		name, err := KeyName(char)
		if err != nil {
			return nil, err
		}

		seq = append(seq, name)
	}

	return append(seq, Return), nil
}
