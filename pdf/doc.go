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

// Package pdf implements the subset of the PDF object model needed to read
// and write link annotations.
//
// The following types implement the native PDF object types.
// All of these implement the `pdf.Object` interface:
//
//	Array
//	Bool
//	Dict
//	Integer
//	Name
//	Number
//	Real
//	Reference
//	String
//
// Documents are accessed through the [Getter] and [Putter] interfaces.
// The helper functions [GetArray], [GetDict], [GetName] and friends resolve
// indirect references and check the type of the result:
//
//	dict, err := pdf.GetDict(r, obj)
//	if err != nil {
//	    return err
//	}
//	tp, err := pdf.GetName(r, dict["Subtype"])
//	...
//
// Text strings are converted between Go strings and PDF strings using
// [TextString] and [AsTextString].
package pdf
