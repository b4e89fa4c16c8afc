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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdflink/internal/bbox"
	"seehuhn.de/go/pdflink/optional"
	"seehuhn.de/go/pdflink/pdf"
)

// Kind describes how a viewer presents the target page of a destination.
//
// The concrete types are [XYZ], [Fit], [FitB], [FitH], [FitBH], [FitV],
// [FitBV] and [FitR].  Coordinates are given in the coordinate system of
// the target page.  Optional coordinates which are not set mean that the
// viewer keeps the current value.
//
// PDF 2.0 section: 12.3.2.2
type Kind interface {
	// Type returns the PDF name of the destination type.
	Type() Type

	// Transform maps the coordinates of the destination through M.
	// Coordinates which are not set stay unset.  The result never
	// contains NaN values.
	Transform(M matrix.Matrix) Kind

	// AppendTo appends the type name and the parameters of the
	// destination to a.  Unset values are written as null.
	AppendTo(a pdf.Array) (pdf.Array, error)

	isKind()
}

// Type identifies the type of destination.
type Type pdf.Name

const (
	TypeXYZ   Type = "XYZ"
	TypeFit   Type = "Fit"
	TypeFitH  Type = "FitH"
	TypeFitV  Type = "FitV"
	TypeFitR  Type = "FitR"
	TypeFitB  Type = "FitB"
	TypeFitBH Type = "FitBH"
	TypeFitBV Type = "FitBV"
)

// XYZ displays the page with the point (Left, Top) at the upper-left corner
// of the window, magnified by Zoom percent.
//
// The zero value, where all fields are unset, is the default kind.
type XYZ struct {
	Left, Top optional.Float

	// Zoom is the magnification in percent, so that 100 means 100%.
	Zoom optional.Float
}

// Fit displays the whole page.
type Fit struct{}

// FitB displays the bounding box of the page contents.
type FitB struct{}

// FitH displays the page with Top at the top edge of the window and the
// page width fitted to the window.
type FitH struct {
	Top optional.Float
}

// FitBH is like [FitH], but uses the bounding box of the page contents.
type FitBH struct {
	Top optional.Float
}

// FitV displays the page with Left at the left edge of the window and the
// page height fitted to the window.
type FitV struct {
	Left optional.Float
}

// FitBV is like [FitV], but uses the bounding box of the page contents.
type FitBV struct {
	Left optional.Float
}

// FitR displays the given rectangle.
type FitR struct {
	Left, Bottom, Right, Top float64
}

func (XYZ) isKind()   {}
func (Fit) isKind()   {}
func (FitB) isKind()  {}
func (FitH) isKind()  {}
func (FitBH) isKind() {}
func (FitV) isKind()  {}
func (FitBV) isKind() {}
func (FitR) isKind()  {}

func (XYZ) Type() Type   { return TypeXYZ }
func (Fit) Type() Type   { return TypeFit }
func (FitB) Type() Type  { return TypeFitB }
func (FitH) Type() Type  { return TypeFitH }
func (FitBH) Type() Type { return TypeFitBH }
func (FitV) Type() Type  { return TypeFitV }
func (FitBV) Type() Type { return TypeFitBV }
func (FitR) Type() Type  { return TypeFitR }

// Transform implements the [Kind] interface.
//
// If M swaps the axes (a rotation by 90 or 270 degrees), the result only
// has coordinates if both input coordinates were set.  Partial XYZ
// destinations lose their coordinates in this case.
func (k XYZ) Transform(M matrix.Matrix) Kind {
	left, hasLeft := k.Left.Get()
	top, hasTop := k.Top.Get()

	res := XYZ{Zoom: k.Zoom}
	switch {
	case M[0] == 0 && M[3] == 0:
		if hasLeft && hasTop {
			x, y := M.Apply(left, top)
			res.Left = optional.NewFloat(x)
			res.Top = optional.NewFloat(y)
		}
	case M[1] == 0 && M[2] == 0:
		x, y := M.Apply(left, top)
		if hasLeft {
			res.Left = optional.NewFloat(x)
		}
		if hasTop {
			res.Top = optional.NewFloat(y)
		}
	default:
		x, y := M.Apply(k.Left.OrNaN(), k.Top.OrNaN())
		res.Left = optional.NewFloat(x)
		res.Top = optional.NewFloat(y)
	}
	return res
}

// Transform implements the [Kind] interface.
func (k Fit) Transform(matrix.Matrix) Kind { return k }

// Transform implements the [Kind] interface.
func (k FitB) Transform(matrix.Matrix) Kind { return k }

// Transform implements the [Kind] interface.
func (k FitH) Transform(M matrix.Matrix) Kind {
	return FitH{Top: transformY(M, k.Top)}
}

// Transform implements the [Kind] interface.
func (k FitBH) Transform(M matrix.Matrix) Kind {
	return FitBH{Top: transformY(M, k.Top)}
}

// Transform implements the [Kind] interface.
func (k FitV) Transform(M matrix.Matrix) Kind {
	return FitV{Left: transformX(M, k.Left)}
}

// Transform implements the [Kind] interface.
func (k FitBV) Transform(M matrix.Matrix) Kind {
	return FitBV{Left: transformX(M, k.Left)}
}

// Transform implements the [Kind] interface.
//
// The result is the bounding box of the transformed rectangle.
func (k FitR) Transform(M matrix.Matrix) Kind {
	r := bbox.Transform(rect.Rect{
		LLx: k.Left,
		LLy: k.Bottom,
		URx: k.Right,
		URy: k.Top,
	}, M)
	return FitR{
		Left:   dropNaN(r.LLx),
		Bottom: dropNaN(r.LLy),
		Right:  dropNaN(r.URx),
		Top:    dropNaN(r.URy),
	}
}

func transformX(M matrix.Matrix, x optional.Float) optional.Float {
	v, ok := x.Get()
	if !ok {
		return x
	}
	res, _ := M.Apply(v, 0)
	return optional.NewFloat(res)
}

func transformY(M matrix.Matrix, y optional.Float) optional.Float {
	v, ok := y.Get()
	if !ok {
		return y
	}
	_, res := M.Apply(0, v)
	return optional.NewFloat(res)
}

// dropNaN replaces NaN by 0.  FitR has no unset coordinates.
func dropNaN(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return x
}

// AppendTo implements the [Kind] interface.
func (k XYZ) AppendTo(a pdf.Array) (pdf.Array, error) {
	zoom := k.Zoom
	if z, ok := zoom.Get(); ok {
		zoom = optional.NewFloat(z / 100)
	}
	return appendValues(a, TypeXYZ, k.Left, k.Top, zoom)
}

// AppendTo implements the [Kind] interface.
func (k Fit) AppendTo(a pdf.Array) (pdf.Array, error) {
	return appendValues(a, TypeFit)
}

// AppendTo implements the [Kind] interface.
func (k FitB) AppendTo(a pdf.Array) (pdf.Array, error) {
	return appendValues(a, TypeFitB)
}

// AppendTo implements the [Kind] interface.
func (k FitH) AppendTo(a pdf.Array) (pdf.Array, error) {
	return appendValues(a, TypeFitH, k.Top)
}

// AppendTo implements the [Kind] interface.
func (k FitBH) AppendTo(a pdf.Array) (pdf.Array, error) {
	return appendValues(a, TypeFitBH, k.Top)
}

// AppendTo implements the [Kind] interface.
func (k FitV) AppendTo(a pdf.Array) (pdf.Array, error) {
	return appendValues(a, TypeFitV, k.Left)
}

// AppendTo implements the [Kind] interface.
func (k FitBV) AppendTo(a pdf.Array) (pdf.Array, error) {
	return appendValues(a, TypeFitBV, k.Left)
}

// AppendTo implements the [Kind] interface.
func (k FitR) AppendTo(a pdf.Array) (pdf.Array, error) {
	a = append(a, pdf.Name(TypeFitR))
	for _, field := range []struct {
		name string
		val  float64
	}{
		{"Left", k.Left},
		{"Bottom", k.Bottom},
		{"Right", k.Right},
		{"Top", k.Top},
	} {
		if math.IsNaN(field.val) || math.IsInf(field.val, 0) {
			return nil, pdf.Error("FitR " + field.name + " must be a finite number")
		}
		a = append(a, pdf.Number(field.val))
	}
	return a, nil
}

func appendValues(a pdf.Array, tp Type, values ...optional.Float) (pdf.Array, error) {
	a = append(a, pdf.Name(tp))
	for _, v := range values {
		obj, err := encodeOptionalNumber(tp, v)
		if err != nil {
			return nil, err
		}
		a = append(a, obj)
	}
	return a, nil
}

// encodeOptionalNumber converts an optional value to a PDF object, using
// null for unset values.
func encodeOptionalNumber(tp Type, v optional.Float) (pdf.Object, error) {
	x, ok := v.Get()
	if !ok || math.IsNaN(x) {
		return nil, nil
	}
	if math.IsInf(x, 0) {
		return nil, pdf.Error(string(tp) + " parameters must be either unset or finite numbers")
	}
	return pdf.Number(x), nil
}

// normalize replaces a nil kind by the default kind.
func normalize(k Kind) Kind {
	if k == nil {
		return XYZ{}
	}
	return k
}
