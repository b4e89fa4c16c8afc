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

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdflink/action"
	"seehuhn.de/go/pdflink/internal/bbox"
	"seehuhn.de/go/pdflink/page"
	"seehuhn.de/go/pdflink/pdf"
)

// PageFinder locates the page object for a 0-based page index.
type PageFinder interface {
	FindPage(index int) (pdf.Reference, error)
}

// Document is a PDF document which link annotations can be added to.
type Document interface {
	pdf.Getter
	pdf.Putter
	PageFinder
	NumPages() (int, error)
}

// PageLister is implemented by documents which can list all their pages
// in a single pass over the page tree.  [ExtractLinks] uses this, if
// available, to map page references to page indices.
type PageLister interface {
	Pages() ([]pdf.Reference, error)
}

// InverseFunc returns the matrix which maps display coordinates of the
// given page to the default user space of the page.  If the result is
// nil, coordinates are used without change.
type InverseFunc func(page pdf.Reference) (*matrix.Matrix, error)

// PageCache remembers the page objects and inverse transformations of
// target pages, keyed by page index.  A cache must only be used for a
// single document, and must not be used after the document is modified.
type PageCache map[uint32]cachedPage

type cachedPage struct {
	ref pdf.Reference
	inv *matrix.Matrix
}

// resolver implements [action.PageResolver] using a PageCache.
type resolver struct {
	doc       PageFinder
	targetInv InverseFunc
	cache     PageCache
}

func (r *resolver) ResolvePage(index uint32) (pdf.Reference, *matrix.Matrix, error) {
	if p, ok := r.cache[index]; ok {
		return p.ref, p.inv, nil
	}

	ref, err := r.doc.FindPage(int(index))
	if err != nil {
		return 0, nil, err
	}
	var inv *matrix.Matrix
	if r.targetInv != nil {
		inv, err = r.targetInv(ref)
		if err != nil {
			return 0, nil, err
		}
	}

	if r.cache != nil {
		r.cache[index] = cachedPage{ref: ref, inv: inv}
	}
	return ref, inv, nil
}

// BuildLink returns the annotation dictionary for a link on the page
// pageRef.
//
// The link rectangle is mapped through srcInv, if this is not nil.  For
// go-to actions with an explicit destination, the target page is found
// using doc, and the destination coordinates are mapped through the matrix
// returned by targetInv.  Results are stored in cache, which may be nil.
// Destinations in other documents are written without change.
//
// Errors from doc and targetInv are returned unchanged.  BuildLink does
// not write to the document.
func BuildLink(doc PageFinder, pageRef pdf.Reference, link *Link, srcInv *matrix.Matrix, targetInv InverseFunc, cache PageCache) (pdf.Dict, error) {
	if link.Action == nil {
		return nil, pdf.Error("link without action")
	}

	r := link.Rect
	if srcInv != nil {
		r = bbox.Transform(r, *srcInv)
	}
	rectObj, err := pdf.RectangleObject(r)
	if err != nil {
		return nil, err
	}

	border := link.Border
	if border == nil {
		border = NoBorder
	}
	bs, err := border.Encode()
	if err != nil {
		return nil, err
	}

	res := &resolver{doc: doc, targetInv: targetInv, cache: cache}
	actionDict, err := link.Action.Encode(res)
	if err != nil {
		return nil, err
	}

	dict := pdf.Dict{
		"Subtype": pdf.Name("Link"),
		"Rect":    rectObj,
		"BS":      bs,
		"A":       actionDict,
	}
	if pageRef != 0 {
		dict["P"] = pageRef
	}
	return dict, nil
}

// AddLinks adds link annotations to the page with the given 0-based index.
//
// Link rectangles and destinations are given in display space, and are
// converted using the geometry of the source and target pages.  All
// annotation dictionaries are built before anything is written to doc.
func AddLinks(doc Document, pageNo int, links []Link) error {
	if len(links) == 0 {
		return nil
	}

	pageRef, err := doc.FindPage(pageNo)
	if err != nil {
		return err
	}
	pageDict, err := pdf.GetDict(doc, pageRef)
	if err != nil {
		return err
	}
	annots, err := pdf.GetArray(doc, pageDict["Annots"])
	if err != nil {
		return err
	}
	srcInv, err := page.InverseCTM(doc, pageRef)
	if err != nil {
		return err
	}

	targetInv := func(ref pdf.Reference) (*matrix.Matrix, error) {
		return page.InverseCTM(doc, ref)
	}
	cache := make(PageCache)

	dicts := make([]pdf.Dict, len(links))
	for i := range links {
		dicts[i], err = BuildLink(doc, pageRef, &links[i], srcInv, targetInv, cache)
		if err != nil {
			return err
		}
	}

	newAnnots := make(pdf.Array, 0, len(annots)+len(dicts))
	newAnnots = append(newAnnots, annots...)
	for _, dict := range dicts {
		ref := doc.Alloc()
		err := doc.Put(ref, dict)
		if err != nil {
			return err
		}
		newAnnots = append(newAnnots, ref)
	}

	pageDict = maps.Clone(pageDict)
	pageDict["Annots"] = newAnnots
	return doc.Put(pageRef, pageDict)
}

var _ action.PageResolver = (*resolver)(nil)
