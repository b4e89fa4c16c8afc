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
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdflink"
	"seehuhn.de/go/pdflink/action"
	"seehuhn.de/go/pdflink/destination"
	"seehuhn.de/go/pdflink/internal/bbox"
	"seehuhn.de/go/pdflink/page"
	"seehuhn.de/go/pdflink/pagetree"
	"seehuhn.de/go/pdflink/pdf"
)

// ExtractLinks reads the link annotations of the page with the given
// 0-based index.
//
// Rectangles and destinations are converted to display space.  URI
// actions are interpreted using [pdflink.Parse], so that for example a
// "file:" URI is returned as a [action.GoToR] or [action.Launch] action.
// Annotations which are malformed, or which use an unsupported action
// type, are skipped.
func ExtractLinks(doc Document, pageNo int) ([]Link, error) {
	pageRef, err := doc.FindPage(pageNo)
	if err != nil {
		return nil, err
	}
	pageDict, err := pdf.GetDict(doc, pageRef)
	if err != nil {
		return nil, err
	}
	annots, err := pdf.GetArray(doc, pageDict["Annots"])
	if err != nil {
		return nil, err
	}

	g, err := page.GetGeometry(doc, pageRef)
	if err != nil {
		return nil, err
	}
	ctm := g.CTM()

	pl := &pageLookup{doc: doc}

	var res []Link
	for _, obj := range annots {
		link, err := readLink(doc, obj, ctm, pl.lookup)
		if isSkippable(err) {
			continue
		} else if err != nil {
			return nil, err
		}
		if link != nil {
			res = append(res, *link)
		}
	}
	return res, nil
}

// readLink reads a single annotation.  If the annotation is not a link,
// the result is nil.
func readLink(r pdf.Getter, obj pdf.Object, ctm matrix.Matrix, lookup destination.PageLookup) (*Link, error) {
	dict, err := pdf.GetDict(r, obj)
	if err != nil {
		return nil, err
	}
	subtype, err := pdf.GetName(r, dict["Subtype"])
	if err != nil {
		return nil, err
	}
	if subtype != "Link" {
		return nil, nil
	}

	rect, err := pdf.GetRectangle(r, dict["Rect"])
	if err != nil {
		return nil, err
	} else if rect == nil {
		return nil, &pdf.MalformedFileError{Err: errMissingRect}
	}

	var a action.Action
	if dict["A"] != nil {
		a, err = action.Decode(r, dict["A"], lookup)
		if err != nil {
			return nil, err
		}
	} else if dict["Dest"] != nil {
		dest, err := destination.Decode(r, dict["Dest"], lookup)
		if err != nil {
			return nil, err
		}
		a = action.GoTo{Dest: dest}
	} else {
		return nil, nil
	}

	if uri, isURI := a.(action.URI); isURI {
		if parsed, ok := pdflink.Parse(uri.URI); ok {
			a = parsed
		}
	}

	// malformed border styles are ignored
	border, err := DecodeBorderStyle(r, dict["BS"])
	if isSkippable(err) || border != nil && border.Width == 0 {
		border = nil
	} else if err != nil {
		return nil, err
	}

	return &Link{
		Rect:   bbox.Transform(*rect, ctm),
		Action: a,
		Border: border,
	}, nil
}

// pageLookup maps page objects to page indices and page transformations.
// The page index is built on first use.
type pageLookup struct {
	doc   Document
	index map[pdf.Reference]uint32
}

func (pl *pageLookup) lookup(obj pdf.Object) (uint32, *matrix.Matrix, error) {
	var ref pdf.Reference
	var index uint32
	switch obj := obj.(type) {
	case pdf.Reference:
		if pl.index == nil {
			err := pl.buildIndex()
			if err != nil {
				return 0, nil, err
			}
		}
		i, ok := pl.index[obj]
		if !ok {
			return 0, nil, &pdf.MalformedFileError{Err: errUnknownPage}
		}
		ref, index = obj, i
	case pdf.Integer:
		// some writers use page numbers for local destinations
		if obj < 0 || obj > math.MaxUint32 {
			return 0, nil, &pdf.MalformedFileError{Err: errUnknownPage}
		}
		var err error
		ref, err = pl.doc.FindPage(int(obj))
		if errors.Is(err, pagetree.ErrPageNotFound) {
			return 0, nil, &pdf.MalformedFileError{Err: err}
		} else if err != nil {
			return 0, nil, err
		}
		index = uint32(obj)
	default:
		return 0, nil, &pdf.MalformedFileError{Err: errUnknownPage}
	}

	g, err := page.GetGeometry(pl.doc, ref)
	if err != nil {
		return 0, nil, err
	}
	ctm := g.CTM()
	return index, &ctm, nil
}

func (pl *pageLookup) buildIndex() error {
	if lister, ok := pl.doc.(PageLister); ok {
		pages, err := lister.Pages()
		if err != nil {
			return err
		}
		pl.index = make(map[pdf.Reference]uint32, len(pages))
		for i, ref := range pages {
			pl.index[ref] = uint32(i)
		}
		return nil
	}

	n, err := pl.doc.NumPages()
	if err != nil {
		return err
	}
	index := make(map[pdf.Reference]uint32, n)
	for i := range n {
		ref, err := pl.doc.FindPage(i)
		if err != nil {
			return err
		}
		index[ref] = uint32(i)
	}
	pl.index = index
	return nil
}

func isSkippable(err error) bool {
	if err == nil {
		return false
	}
	var malformed *pdf.MalformedFileError
	return errors.Is(err, action.ErrUnsupported) || errors.As(err, &malformed)
}

var (
	errMissingRect = errors.New("link annotation without /Rect")
	errUnknownPage = errors.New("destination page not found")
)
