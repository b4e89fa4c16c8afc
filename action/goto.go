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

package action

import (
	"seehuhn.de/go/pdflink/destination"
	"seehuhn.de/go/pdflink/pdf"
)

// PDF 2.0 sections: 12.6.2 12.6.4.2

// GoTo represents a go-to action that jumps to a destination in the
// current document.
type GoTo struct {
	Dest destination.Destination
}

// ActionType returns "GoTo".
// This implements the [Action] interface.
func (a GoTo) ActionType() Type { return TypeGoTo }

// Encode implements the [Action] interface.
//
// Explicit destinations refer to the page object returned by res, and
// their coordinates are transformed by the matrix returned by res.
func (a GoTo) Encode(res PageResolver) (pdf.Dict, error) {
	var destObj pdf.Object
	switch dest := a.Dest.(type) {
	case destination.Page:
		if res == nil {
			return nil, pdf.Error("GoTo action to a page needs a page resolver")
		}
		ref, M, err := res.ResolvePage(dest.Index)
		if err != nil {
			return nil, err
		}
		destObj, err = dest.Encode(ref, M)
		if err != nil {
			return nil, err
		}
	case destination.Named:
		destObj = dest.Encode()
	default:
		return nil, pdf.Error("GoTo action must have a destination")
	}

	dict := pdf.Dict{
		"S": pdf.Name(TypeGoTo),
		"D": destObj,
	}
	return dict, nil
}

func decodeGoTo(r pdf.Getter, dict pdf.Dict, lookup destination.PageLookup) (GoTo, error) {
	if dict["D"] == nil {
		return GoTo{}, &pdf.MalformedFileError{Err: pdf.Error("GoTo action missing D entry")}
	}
	dest, err := destination.Decode(r, dict["D"], lookup)
	if err != nil {
		return GoTo{}, err
	}
	return GoTo{Dest: dest}, nil
}

func (GoTo) isAction() {}
