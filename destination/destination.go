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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdflink/pdf"
)

// Destination identifies the target of a go-to link.  The concrete types
// are [Page] and [Named].
//
// PDF 2.0 section: 12.3.2
type Destination interface {
	isDestination()
}

// Page is an explicit destination, given by a page and a view.
type Page struct {
	// Index is the 0-based page number.
	Index uint32

	// Kind describes the view of the page.  A nil Kind is the same as
	// XYZ{}.
	Kind Kind
}

// Named is a destination which is looked up by name in the document's
// table of named destinations.
type Named string

func (Page) isDestination()  {}
func (Named) isDestination() {}

// Default returns the destination used when nothing else is specified:
// the first page, keeping the current view.
func Default() Destination {
	return Page{Index: 0, Kind: XYZ{}}
}

// GetKind returns the kind of the destination, replacing nil by XYZ{}.
func (d Page) GetKind() Kind {
	return normalize(d.Kind)
}

// Encode returns the explicit destination array for d, using target as
// the page entry.  If M is not nil, the destination coordinates are
// transformed by M before they are written.
func (d Page) Encode(target pdf.Object, M *matrix.Matrix) (pdf.Array, error) {
	kind := d.GetKind()
	if M != nil {
		kind = kind.Transform(*M)
	}
	return kind.AppendTo(pdf.Array{target})
}

// Encode returns the PDF string used for the name in an action dictionary.
func (d Named) Encode() pdf.String {
	return pdf.TextString(string(d))
}
