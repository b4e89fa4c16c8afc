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

package pdf

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// TextString converts a Go string into a PDF text string.
//
// Strings which only contain printable ASCII characters, tab, newline and
// carriage return are stored as they are.  All other strings are encoded
// as UTF-16BE with a byte order mark.
func TextString(s string) String {
	if isPlainText(s) {
		return String(s)
	}
	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		// only invalid UTF-8 can get here; replace the offending bytes
		b, _ = enc.Bytes([]byte(strings.ToValidUTF8(s, "\uFFFD")))
	}
	return String(b)
}

// AsTextString decodes a PDF text string into a Go string.
// UTF-16BE strings with a byte order mark are decoded as such,
// all other strings are interpreted using PDFDocEncoding.
func AsTextString(s String) string {
	if isUTF16(s) {
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		b, err := dec.Bytes([]byte(s))
		if err == nil {
			return string(b)
		}
	}
	return pdfDocDecode(s)
}

// GetTextString resolves references and decodes the resulting string object.
// If the object is null, the empty string is returned.
func GetTextString(r Getter, obj Object) (string, error) {
	s, err := GetString(r, obj)
	if err != nil {
		return "", err
	}
	return AsTextString(s), nil
}

// GetString is like [GetArray] and friends, for string objects.
var GetString = resolveAndCast[String]

func isPlainText(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c < 0x7f || c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		return false
	}
	return true
}

func isUTF16(s String) bool {
	return len(s) >= 2 && s[0] == 0xFE && s[1] == 0xFF
}

func pdfDocDecode(s String) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 || pdfDocDecodeByte(s[i]) != rune(s[i]) {
			goto Decode
		}
	}
	return string(s)

Decode:
	r := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		r[i] = pdfDocDecodeByte(s[i])
	}
	return string(r)
}

func pdfDocDecodeByte(c byte) rune {
	switch {
	case c >= 0x18 && c <= 0x1f:
		return pdfDocLow[c-0x18]
	case c >= 0x80 && c <= 0xa0:
		return pdfDocHigh[c-0x80]
	case c == 0xad:
		return noRune
	default:
		return rune(c)
	}
}

const noRune = 0xFFFD

var pdfDocLow = [8]rune{
	0x02D8, 0x02C7, 0x02C6, 0x02D9, 0x02DD, 0x02DB, 0x02DA, 0x02DC,
}

var pdfDocHigh = [33]rune{
	0x2022, 0x2020, 0x2021, 0x2026, 0x2014, 0x2013, 0x0192, 0x2044, // 0x80
	0x2039, 0x203A, 0x2212, 0x2030, 0x201E, 0x201C, 0x201D, 0x2018, // 0x88
	0x2019, 0x201A, 0x2122, 0xFB01, 0xFB02, 0x0141, 0x0152, 0x0160, // 0x90
	0x0178, 0x017D, 0x0131, 0x0142, 0x0153, 0x0161, 0x017E, noRune, // 0x98
	0x20AC, // 0xA0
}
