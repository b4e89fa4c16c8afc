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

package destination

import (
	"errors"

	"seehuhn.de/go/pdflink/nametree"
	"seehuhn.de/go/pdflink/pdf"
)

// Resolve finds the explicit destination for a named destination.
//
// The argument dests is the name tree from the /Dests entry of the
// document's name dictionary.  If the name is not found, the error
// is [nametree.ErrKeyNotFound].
func Resolve(r pdf.Getter, dests pdf.Object, name Named, lookup PageLookup) (Page, error) {
	obj, err := nametree.Lookup(r, dests, string(name.Encode()))
	if err != nil {
		return Page{}, err
	}

	dest, err := Decode(r, obj, lookup)
	if err != nil {
		return Page{}, err
	}
	page, ok := dest.(Page)
	if !ok {
		return Page{}, &pdf.MalformedFileError{Err: errIndirectName}
	}
	return page, nil
}

var errIndirectName = errors.New("named destination refers to another name")
