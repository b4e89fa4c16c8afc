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
	"seehuhn.de/go/pdflink/file"
	"seehuhn.de/go/pdflink/pdf"
)

// PDF 2.0 sections: 12.6.2 12.6.4.3

// GoToR represents a remote go-to action that navigates to a destination
// in another PDF file.
type GoToR struct {
	// File is the target document.
	File file.Spec

	// Dest is the destination to jump to.
	// The coordinates of explicit destinations are written unchanged,
	// and the page is written as a page number.
	Dest destination.Destination
}

// ActionType returns "GoToR".
// This implements the [Action] interface.
func (a GoToR) ActionType() Type { return TypeGoToR }

// Encode implements the [Action] interface.
// The page resolver is not used.
func (a GoToR) Encode(PageResolver) (pdf.Dict, error) {
	if a.File == nil {
		return nil, pdf.Error("GoToR action must have F entry")
	}

	var destObj pdf.Object
	switch dest := a.Dest.(type) {
	case destination.Page:
		arr, err := dest.Encode(pdf.Integer(dest.Index), nil)
		if err != nil {
			return nil, err
		}
		destObj = arr
	case destination.Named:
		destObj = dest.Encode()
	default:
		return nil, pdf.Error("GoToR action must have D entry")
	}

	fn, err := file.Encode(a.File)
	if err != nil {
		return nil, err
	}

	dict := pdf.Dict{
		"S": pdf.Name(TypeGoToR),
		"F": fn,
		"D": destObj,
	}
	return dict, nil
}

func decodeGoToR(r pdf.Getter, dict pdf.Dict) (GoToR, error) {
	if dict["F"] == nil {
		return GoToR{}, &pdf.MalformedFileError{Err: pdf.Error("GoToR action missing F entry")}
	}
	f, err := file.Decode(r, dict["F"])
	if err != nil {
		return GoToR{}, err
	}

	dest := destination.Default()
	if dict["D"] != nil {
		dest, err = destination.Decode(r, dict["D"], nil)
		if err != nil {
			return GoToR{}, err
		}
	}

	return GoToR{File: f, Dest: dest}, nil
}

func (GoToR) isAction() {}
