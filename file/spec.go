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

package file

import (
	"strings"

	"seehuhn.de/go/pdflink/pdf"
)

// Spec is the file referenced by a link.  The concrete types are [Path]
// and [URL].
type Spec interface {
	// Specification returns the file specification dictionary for the file.
	Specification() *Specification

	isSpec()
}

// Path is a file system path, absolute or relative, using '/' as the
// separator.
type Path string

// URL is a uniform resource locator.  URLs are expected to be 7-bit ASCII
// strings.  Other URLs are stored in the Unicode file name, with an
// ASCII-only replacement in the /F entry.
type URL string

func (Path) isSpec() {}
func (URL) isSpec()  {}

// Specification implements the [Spec] interface.
func (p Path) Specification() *Specification {
	return &Specification{
		FileName:        ASCIIName(string(p)),
		FileNameUnicode: string(p),
	}
}

// Specification implements the [Spec] interface.
func (u URL) Specification() *Specification {
	spec := &Specification{
		NameSpace: "URL",
		FileName:  ASCIIName(string(u)),
	}
	if spec.FileName != string(u) {
		spec.FileNameUnicode = string(u)
	}
	return spec
}

// ASCIIName replaces all characters outside the printable ASCII range by
// underscores.
func ASCIIName(name string) string {
	return strings.Map(func(r rune) rune {
		if r >= ' ' && r <= '~' {
			return r
		}
		return '_'
	}, name)
}

// Encode returns the file specification dictionary for s.
func Encode(s Spec) (pdf.Dict, error) {
	if s == nil {
		return nil, pdf.Error("missing file specification")
	}
	return s.Specification().Encode()
}

// Decode reads a file specification from a PDF file.
//
// File specification strings and dictionaries without a file system are
// returned as a [Path].  Dictionaries using the URL file system are
// returned as a [URL].
func Decode(r pdf.Getter, obj pdf.Object) (Spec, error) {
	obj, err := pdf.Resolve(r, obj)
	if err != nil {
		return nil, err
	}

	if s, ok := obj.(pdf.String); ok {
		return Path(pdf.AsTextString(s)), nil
	}

	spec, err := DecodeSpecification(r, obj)
	if err != nil {
		return nil, err
	}
	if spec.NameSpace == "URL" {
		return URL(spec.Name()), nil
	}
	return Path(spec.Name()), nil
}
