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

package annotation

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdflink/action"
)

// Link represents a hypertext link annotation.
type Link struct {
	// Rect is the active area of the link, in display space.
	//
	// This corresponds to the /Rect entry in the PDF annotation dictionary.
	Rect rect.Rect

	// Action is performed when the link is activated.
	//
	// This corresponds to the /A entry in the PDF annotation dictionary.
	// When reading a file, a /Dest entry is returned as a
	// [action.GoTo] action.
	Action action.Action

	// Border (optional) is the border drawn around the link.  When
	// writing, nil is replaced by [NoBorder].  When reading, Border is
	// nil if the annotation has no visible border.
	//
	// This corresponds to the /BS entry in the PDF annotation dictionary.
	Border *BorderStyle
}
