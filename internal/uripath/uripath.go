// seehuhn.de/go/pdflink - link destinations and actions for PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package uripath implements the percent-encoding and path normalization
// rules used for file names inside link URIs.
package uripath

import (
	"path"
	"strings"
	"unicode/utf8"
)

// Decode replaces %XX escape sequences by the corresponding bytes.
// Malformed escapes are kept as they are.  If the decoded bytes are not
// valid UTF-8, s is returned unchanged.
func Decode(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		buf = append(buf, c)
	}

	if !utf8.Valid(buf) {
		return s
	}
	return string(buf)
}

// DecodePath percent-decodes a path and then normalizes it.  Empty and "."
// segments are removed, and ".." removes the preceding segment where
// possible.  Backslashes and drive letters are left alone.
func DecodePath(s string) string {
	return path.Clean(Decode(s))
}

// EscapeComponent percent-encodes all bytes of s except ASCII letters,
// digits and the characters - _ . ! ~ * ' ( ).
func EscapeComponent(s string) string {
	return escape(s, false)
}

// EscapePath is like [EscapeComponent], but also keeps '/' unescaped.
func EscapePath(s string) string {
	return escape(s, true)
}

func escape(s string, keepSlash bool) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !keep(s[i], keepSlash) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	const upperhex = "0123456789ABCDEF"
	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if keep(c, keepSlash) {
			buf = append(buf, c)
		} else {
			buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
		}
	}
	return string(buf)
}

func keep(c byte, keepSlash bool) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	case '/':
		return keepSlash
	}
	return false
}

// IsExternalLink reports whether uri starts with a URI scheme of at least
// three characters.  The length restriction keeps DOS drive letters like
// "C:" from being taken for a scheme.
func IsExternalLink(uri string) bool {
	scheme, _, found := strings.Cut(uri, ":")
	if !found || len(scheme) < 3 || !isAlpha(scheme[0]) {
		return false
	}
	for i := 1; i < len(scheme); i++ {
		c := scheme[i]
		if !isAlpha(c) && !('0' <= c && c <= '9') && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

// HasPDFSuffix reports whether name ends in ".pdf", ignoring case.
func HasPDFSuffix(name string) bool {
	return len(name) >= 4 && strings.EqualFold(name[len(name)-4:], ".pdf")
}

// CutPrefixFold is like strings.CutPrefix, but ignores ASCII case.
func CutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
