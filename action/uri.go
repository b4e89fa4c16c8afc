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

// PDF 2.0 sections: 12.6.2 12.6.4.8

package action

import (
	"seehuhn.de/go/pdflink/pdf"
)

// URI represents a URI action that resolves a uniform resource identifier.
type URI struct {
	// URI is the uniform resource identifier to resolve.  The string is
	// stored without modification and should be 7-bit ASCII.
	URI string
}

// ActionType returns "URI".
// This implements the [Action] interface.
func (a URI) ActionType() Type { return TypeURI }

// Encode implements the [Action] interface.
// The page resolver is not used.
func (a URI) Encode(PageResolver) (pdf.Dict, error) {
	dict := pdf.Dict{
		"S":   pdf.Name(TypeURI),
		"URI": pdf.String(a.URI),
	}
	return dict, nil
}

func decodeURI(r pdf.Getter, dict pdf.Dict) (URI, error) {
	uri, err := pdf.GetString(r, dict["URI"])
	if err != nil {
		return URI{}, err
	}
	return URI{URI: string(uri)}, nil
}

func (URI) isAction() {}
