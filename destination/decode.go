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
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdflink/optional"
	"seehuhn.de/go/pdflink/pdf"
)

// PageLookup maps the page entry of an explicit destination array to a page
// index.  If the returned matrix is not nil, it is applied to the
// destination coordinates.
type PageLookup func(page pdf.Object) (uint32, *matrix.Matrix, error)

var errMalformed = errors.New("malformed destination")

// Decode reads a destination from a PDF file.
//
// Names and strings are returned as [Named] destinations.  Arrays are
// explicit destinations.  If lookup is nil, the page entry of an explicit
// destination must be an integer page number, as used for destinations in
// other documents.  Otherwise, lookup is used to find the page index.
// Dictionaries with a /D entry, as found in the document's destination
// table, are also accepted.
func Decode(r pdf.Getter, obj pdf.Object, lookup PageLookup) (Destination, error) {
	obj, err := pdf.Resolve(r, obj)
	if err != nil {
		return nil, err
	}

	switch obj := obj.(type) {
	case pdf.Name:
		return Named(obj), nil
	case pdf.String:
		return Named(pdf.AsTextString(obj)), nil
	case pdf.Dict:
		if obj["D"] == nil {
			return nil, &pdf.MalformedFileError{Err: errMalformed}
		}
		return Decode(r, obj["D"], lookup)
	case pdf.Array:
		return decodeExplicit(r, obj, lookup)
	default:
		return nil, &pdf.MalformedFileError{Err: errMalformed}
	}
}

func decodeExplicit(r pdf.Getter, a pdf.Array, lookup PageLookup) (Destination, error) {
	if len(a) < 2 {
		return nil, &pdf.MalformedFileError{Err: errMalformed}
	}

	var index uint32
	var M *matrix.Matrix
	if lookup != nil {
		var err error
		index, M, err = lookup(a[0])
		if err != nil {
			return nil, err
		}
	} else {
		n, err := pdf.GetInt(r, a[0])
		if err != nil {
			return nil, err
		}
		if n < 0 || n > math.MaxUint32 {
			return nil, &pdf.MalformedFileError{
				Err: errors.New("page number out of range"),
			}
		}
		index = uint32(n)
	}

	kind, err := DecodeKind(r, a[1:])
	if err != nil {
		return nil, err
	}
	if M != nil {
		kind = kind.Transform(*M)
	}

	return Page{Index: index, Kind: kind}, nil
}

// DecodeKind reads the view part of an explicit destination array, starting
// with the type name.  Missing trailing parameters are treated as null.
// An XYZ zoom factor of 0 means "unchanged", and is returned as unset.
func DecodeKind(r pdf.Getter, a pdf.Array) (Kind, error) {
	if len(a) == 0 {
		return nil, &pdf.MalformedFileError{Err: errMalformed}
	}
	tp, err := pdf.GetName(r, a[0])
	if err != nil {
		return nil, err
	}

	args := make([]optional.Float, 4)
	for i := range args {
		if i+1 >= len(a) {
			break
		}
		x, ok, err := pdf.GetOptionalNumber(r, a[i+1])
		if err != nil {
			return nil, pdf.Wrap(err, string(tp)+" parameter")
		}
		if ok && !math.IsInf(float64(x), 0) {
			args[i] = optional.NewFloat(float64(x))
		}
	}

	switch Type(tp) {
	case TypeXYZ:
		zoom := args[2]
		if z, ok := zoom.Get(); ok {
			if z == 0 {
				zoom.Clear()
			} else {
				zoom = optional.NewFloat(z * 100)
			}
		}
		return XYZ{Left: args[0], Top: args[1], Zoom: zoom}, nil
	case TypeFit:
		return Fit{}, nil
	case TypeFitB:
		return FitB{}, nil
	case TypeFitH:
		return FitH{Top: args[0]}, nil
	case TypeFitBH:
		return FitBH{Top: args[0]}, nil
	case TypeFitV:
		return FitV{Left: args[0]}, nil
	case TypeFitBV:
		return FitBV{Left: args[0]}, nil
	case TypeFitR:
		// null coordinates are read as 0
		return FitR{
			Left:   args[0].Or(0),
			Bottom: args[1].Or(0),
			Right:  args[2].Or(0),
			Top:    args[3].Or(0),
		}, nil
	default:
		return nil, &pdf.MalformedFileError{
			Err: errors.New("unknown destination type " + string(tp)),
		}
	}
}
