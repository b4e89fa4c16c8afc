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
	"maps"
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdflink/destination"
	"seehuhn.de/go/pdflink/nametree"
	"seehuhn.de/go/pdflink/page"
	"seehuhn.de/go/pdflink/pdf"
)

// ResolveNamed finds the page and view for a named destination.
// The argument dests is the /Dests name tree of the document.
// Coordinates of the result are in display space.
func ResolveNamed(doc Document, dests pdf.Object, name destination.Named) (destination.Page, error) {
	pl := &pageLookup{doc: doc}
	return destination.Resolve(doc, dests, name, pl.lookup)
}

// WriteNamedDests writes a /Dests name tree which maps the given names to
// destinations, and returns the reference of the tree root.
//
// Coordinates of the destinations are in display space, as for
// [AddLinks].  All destinations are encoded before anything is written
// to doc.
func WriteNamedDests(doc Document, dests map[destination.Named]destination.Page) (pdf.Reference, error) {
	res := &resolver{
		doc: doc,
		targetInv: func(ref pdf.Reference) (*matrix.Matrix, error) {
			return page.InverseCTM(doc, ref)
		},
		cache: make(PageCache),
	}

	encoded := make(map[string]pdf.Object, len(dests))
	for name, dest := range dests {
		ref, M, err := res.ResolvePage(dest.Index)
		if err != nil {
			return 0, err
		}
		obj, err := dest.Encode(ref, M)
		if err != nil {
			return 0, err
		}
		encoded[string(name)] = obj
	}

	keys := slices.Sorted(maps.Keys(encoded))
	return nametree.Write(doc, func(yield func(string, pdf.Object) bool) {
		for _, key := range keys {
			if !yield(key, encoded[key]) {
				return
			}
		}
	})
}
