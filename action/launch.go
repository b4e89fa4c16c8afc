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
	"seehuhn.de/go/pdflink/file"
	"seehuhn.de/go/pdflink/pdf"
)

// PDF 2.0 sections: 12.6.2 12.6.4.6

// Launch represents a launch action, which opens a file in an external
// application.
type Launch struct {
	File file.Spec
}

// ActionType returns "Launch".
// This implements the [Action] interface.
func (a Launch) ActionType() Type { return TypeLaunch }

// Encode implements the [Action] interface.
// The page resolver is not used.
func (a Launch) Encode(PageResolver) (pdf.Dict, error) {
	if a.File == nil {
		return nil, pdf.Error("Launch action must have F entry")
	}
	fn, err := file.Encode(a.File)
	if err != nil {
		return nil, err
	}

	dict := pdf.Dict{
		"S": pdf.Name(TypeLaunch),
		"F": fn,
	}
	return dict, nil
}

func decodeLaunch(r pdf.Getter, dict pdf.Dict) (Launch, error) {
	fObj := dict["F"]
	if fObj == nil {
		// fall back to the platform-specific launch parameters
		for _, key := range []pdf.Name{"Unix", "Win", "Mac"} {
			params, err := pdf.GetDict(r, dict[key])
			if err != nil {
				return Launch{}, err
			}
			if params != nil && params["F"] != nil {
				fObj = params["F"]
				break
			}
		}
	}
	if fObj == nil {
		return Launch{}, &pdf.MalformedFileError{Err: pdf.Error("Launch action missing F entry")}
	}

	f, err := file.Decode(r, fObj)
	if err != nil {
		return Launch{}, err
	}
	return Launch{File: f}, nil
}

func (Launch) isAction() {}
