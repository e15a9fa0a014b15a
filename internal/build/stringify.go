// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package build

import (
	"fmt"
	"strings"
)

// Stringify returns value as a C string literal, quotes included, so it can
// be used as the body of a macro: `#define NAME <Stringify(value)>`.
//
// Backslash and double quote are escaped, \n, \r and \t use their short
// escapes and every other control byte is written as a three digit octal
// escape. Bytes >= 0x80 are copied as-is, so UTF-8 text survives.
func Stringify(value string) string {
	var b strings.Builder
	b.Grow(len(value) + 2)

	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\%03o`, c)
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')

	return b.String()
}

// ValidateMacroName checks that name is a valid C identifier.
func ValidateMacroName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidMacroName)
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return fmt.Errorf("%w: %q", ErrInvalidMacroName, name)
		}
	}

	return nil
}

// shellQuote wraps s in single quotes for a POSIX shell.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
