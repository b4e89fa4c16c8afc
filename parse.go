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

package pdflink

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/pdflink/action"
	"seehuhn.de/go/pdflink/destination"
	"seehuhn.de/go/pdflink/file"
	"seehuhn.de/go/pdflink/internal/uripath"
	"seehuhn.de/go/pdflink/optional"
)

// Parse converts a link URI into an action.  This is the inverse of
// [Format].
//
// Parse never fails for non-empty input: strings which cannot be interpreted
// as a link into a PDF file are returned as [action.URI] or as a
// named destination.  The second return value is false if uri is empty
// or consists only of white space, or if uri is a bare "#".
func Parse(uri string) (action.Action, bool) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, false
	}

	head, params, _ := strings.Cut(uri, "#")
	head = strings.TrimSpace(head)
	params = strings.TrimSpace(params)

	if head == "" {
		frag := parseParams(params)
		var dest destination.Destination
		switch frag.tp {
		case fragExplicit, fragNamed:
			dest = frag.dest
		case fragUnknown:
			dest = destination.Named(uri)
		default:
			return nil, false
		}
		return action.GoTo{Dest: dest}, true
	}

	link, isFile := uripath.CutPrefixFold(head, "file:")

	if uripath.HasPDFSuffix(link) {
		frag := parseParams(params)
		var dest destination.Destination
		switch frag.tp {
		case fragEmpty:
			dest = destination.Default()
		case fragUnknown:
			return action.URI{URI: uri}, true
		default:
			dest = frag.dest
		}

		var f file.Spec
		if !isFile && uripath.IsExternalLink(link) {
			f = file.URL(link)
		} else {
			f = file.Path(uripath.DecodePath(link))
		}
		return action.GoToR{File: f, Dest: dest}, true
	}

	switch {
	case isFile && link != "":
		return action.Launch{File: file.Path(uripath.DecodePath(link))}, true
	case !uripath.IsExternalLink(uri):
		return action.Launch{File: file.Path(uripath.DecodePath(uri))}, true
	default:
		return action.URI{URI: uri}, true
	}
}

type fragmentType int

const (
	fragEmpty fragmentType = iota
	fragExplicit
	fragNamed
	fragUnknown
)

// fragment is the result of parsing the destination parameters of a URI.
type fragment struct {
	tp   fragmentType
	dest destination.Destination
}

// parseParams interprets the "key=value" pairs in the fragment part of a
// link URI.
//
// The keys "page" and "nameddest" override each other, the last one wins.
// The keys "view", "zoom" and "viewrect" set the destination kind.  If any
// other key is found, the fragment is reported as unknown.  A fragment
// without any key is taken to be the name of a named destination.
func parseParams(params string) fragment {
	if params == "" {
		return fragment{tp: fragEmpty}
	}

	var page uint32
	var hasPage bool
	var kind destination.Kind
	var name string

	for _, part := range strings.FieldsFunc(params, func(r rune) bool {
		return r == '&' || r == '#'
	}) {
		key, val, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		if strings.EqualFold(key, "page") {
			if p, ok := parsePage(val); ok {
				page = p
				hasPage = true
				kind = destination.XYZ{}
				name = ""
				continue
			}
		}

		if strings.EqualFold(key, "nameddest") && val != "" {
			name = val
			hasPage = false
			page = 0
			kind = nil
			continue
		}

		var newKind destination.Kind
		switch {
		case strings.EqualFold(key, "viewrect"):
			newKind = parseViewRect(val)
		case strings.EqualFold(key, "zoom"):
			newKind = parseZoom(val)
		case strings.EqualFold(key, "view"):
			newKind = parseView(val)
		default:
			return fragment{tp: fragUnknown}
		}
		if newKind != nil {
			kind = newKind
		}
	}

	if name != "" {
		return fragment{
			tp:   fragNamed,
			dest: destination.Named(uripath.Decode(name)),
		}
	}
	if !hasPage && kind == nil {
		return fragment{
			tp:   fragNamed,
			dest: destination.Named(uripath.Decode(params)),
		}
	}
	if kind == nil {
		kind = destination.XYZ{}
	}
	return fragment{
		tp:   fragExplicit,
		dest: destination.Page{Index: page, Kind: kind},
	}
}

// parsePage converts a 1-based page number into a 0-based page index.
// Page numbers smaller than 1 refer to the first page.
func parsePage(s string) (uint32, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	if n < 2 {
		return 0, true
	}
	return uint32(n - 1), true
}

// parseViewRect parses the "left,top,width,height" argument of the viewrect
// parameter.  Rectangles with zero width or height are ignored.
func parseViewRect(s string) destination.Kind {
	nums := newNumberList(s)
	x, ok1 := nums.next()
	y, ok2 := nums.next()
	w, ok3 := nums.next()
	h, ok4 := nums.next()
	if !(ok1 && ok2 && ok3 && ok4) || w == 0 || h == 0 {
		return nil
	}
	return destination.FitR{
		Left:   x,
		Bottom: y,
		Right:  x + w,
		Top:    y + h,
	}
}

// parseZoom parses the "scale,left,top" argument of the zoom parameter.
// Non-positive scales are replaced by 100%.
func parseZoom(s string) destination.Kind {
	nums := newNumberList(s)
	var zoom optional.Float
	if z, ok := nums.next(); ok {
		if z <= 0 {
			z = 100
		}
		zoom.Set(z)
	}
	return destination.XYZ{
		Left: nums.nextOptional(),
		Top:  nums.nextOptional(),
		Zoom: zoom,
	}
}

// parseView parses the argument of the view parameter.  The view names
// are matched without regard to case.
func parseView(s string) destination.Kind {
	if s == "" {
		return nil
	}

	nums := newNumberList(s)
	key, _ := nums.nextString()
	switch {
	case strings.EqualFold(key, "Fit"):
		return destination.Fit{}
	case strings.EqualFold(key, "FitB"):
		return destination.FitB{}
	}

	val := nums.nextOptional()
	switch {
	case strings.EqualFold(key, "FitH"):
		return destination.FitH{Top: val}
	case strings.EqualFold(key, "FitBH"):
		return destination.FitBH{Top: val}
	case strings.EqualFold(key, "FitV"):
		return destination.FitV{Left: val}
	case strings.EqualFold(key, "FitBV"):
		return destination.FitBV{Left: val}
	}
	return nil
}

// numberList reads the elements of a comma-separated list.
type numberList struct {
	parts []string
}

func newNumberList(s string) *numberList {
	return &numberList{parts: strings.Split(s, ",")}
}

func (l *numberList) nextString() (string, bool) {
	if len(l.parts) == 0 {
		return "", false
	}
	s := strings.TrimSpace(l.parts[0])
	l.parts = l.parts[1:]
	return s, true
}

// next returns the next list element as a number.  Each call consumes one
// element, even if the element is not a finite number.
func (l *numberList) next() (float64, bool) {
	s, ok := l.nextString()
	if !ok {
		return 0, false
	}
	return parseNumber(s)
}

func (l *numberList) nextOptional() optional.Float {
	if x, ok := l.next(); ok {
		return optional.NewFloat(x)
	}
	return optional.Float{}
}

// parseNumber parses a decimal number.  Infinite values and NaN are
// rejected, the Go-specific hexadecimal and underscore forms are not
// accepted.
func parseNumber(s string) (float64, bool) {
	if strings.ContainsAny(s, "_xXpP") {
		return 0, false
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return x, true
}
