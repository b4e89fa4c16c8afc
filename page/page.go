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

// Package page computes the coordinate systems of PDF pages.
//
// PDF files use a coordinate system where the y-axis points upwards and
// the origin is determined by the page's media box.  Viewers and
// rendering engines use the page as it is displayed instead: the page is
// rotated according to its /Rotate entry, the y-axis points downwards, and
// the origin is in the top-left corner of the visible area.  The matrix
// returned by [Geometry.CTM] maps PDF coordinates to display
// coordinates, [Geometry.InverseCTM] maps display coordinates back.
package page

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdflink/internal/bbox"
	"seehuhn.de/go/pdflink/pagetree"
	"seehuhn.de/go/pdflink/pdf"
)

// PDF 2.0 sections: 7.7.3.3 14.11.2

// Geometry holds the page attributes which determine the page's
// coordinate system.
type Geometry struct {
	// MediaBox is the boundary of the physical page.
	MediaBox rect.Rect

	// CropBox (optional) is the visible region of the page.
	CropBox *rect.Rect

	// Rotate is the clockwise rotation of the page when it is displayed.
	// This is one of 0, 90, 180 and 270.
	Rotate int

	// UserUnit is the size of one unit in PDF coordinates, in multiples
	// of 1/72 inch.
	UserUnit float64
}

// Letter is used as the media box for pages without a valid /MediaBox.
var Letter = rect.Rect{URx: 612, URy: 792}

// GetGeometry reads the page geometry from a page dictionary.
// Inherited attributes are taken from the ancestors of the page.
func GetGeometry(r pdf.Getter, obj pdf.Object) (*Geometry, error) {
	dict, err := pdf.GetDict(r, obj)
	if err != nil {
		return nil, err
	}
	if dict == nil {
		return nil, &pdf.MalformedFileError{
			Err: errMissingPage,
		}
	}
	dict, err = pagetree.Inherit(r, dict)
	if err != nil {
		return nil, err
	}

	g := &Geometry{
		MediaBox: Letter,
		UserUnit: 1,
	}

	mediaBox, err := pdf.GetRectangle(r, dict["MediaBox"])
	if err != nil {
		return nil, pdf.Wrap(err, "MediaBox")
	}
	if mediaBox != nil && mediaBox.URx-mediaBox.LLx >= 1 && mediaBox.URy-mediaBox.LLy >= 1 {
		g.MediaBox = *mediaBox
	}

	cropBox, err := pdf.GetRectangle(r, dict["CropBox"])
	if err != nil {
		return nil, pdf.Wrap(err, "CropBox")
	}
	g.CropBox = cropBox

	rot, _, err := pdf.GetOptionalNumber(r, dict["Rotate"])
	if err != nil {
		return nil, pdf.Wrap(err, "Rotate")
	}
	g.Rotate = NormalizeRotation(float64(rot))

	if uu, ok, err := pdf.GetOptionalNumber(r, dict["UserUnit"]); err != nil {
		return nil, pdf.Wrap(err, "UserUnit")
	} else if ok && uu > 0 && !math.IsInf(float64(uu), 0) {
		g.UserUnit = float64(uu)
	}

	return g, nil
}

// NormalizeRotation maps a /Rotate value to the nearest of 0, 90, 180 and
// 270 degrees.
func NormalizeRotation(rot float64) int {
	if math.IsNaN(rot) || math.IsInf(rot, 0) {
		return 0
	}
	r := math.Mod(rot, 360)
	if r < 0 {
		r += 360
	}
	q := int(math.Round(r/90)) % 4
	return 90 * q
}

// Box returns the visible area of the page in PDF coordinates.  This is
// the intersection of the crop box and the media box.  If the two boxes
// do not overlap, the media box is used.
func (g *Geometry) Box() rect.Rect {
	box := g.MediaBox
	if g.CropBox == nil {
		return box
	}
	c := *g.CropBox
	res := rect.Rect{
		LLx: math.Max(box.LLx, c.LLx),
		LLy: math.Max(box.LLy, c.LLy),
		URx: math.Min(box.URx, c.URx),
		URy: math.Min(box.URy, c.URy),
	}
	if res.LLx >= res.URx || res.LLy >= res.URy {
		return box
	}
	return res
}

// rotation returns the matrix which rotates the page counterclockwise by
// rot degrees.  The entries are exact.
func rotation(rot int) matrix.Matrix {
	switch rot {
	case 90:
		return matrix.Matrix{0, 1, -1, 0, 0, 0}
	case 180:
		return matrix.Matrix{-1, 0, 0, -1, 0, 0}
	case 270:
		return matrix.Matrix{0, -1, 1, 0, 0, 0}
	default:
		return matrix.Identity
	}
}

// CTM returns the matrix which maps PDF coordinates to display
// coordinates.
func (g *Geometry) CTM() matrix.Matrix {
	uu := g.UserUnit
	if uu <= 0 {
		uu = 1
	}
	M := rotation(-g.Rotate + 360).Mul(matrix.Matrix{uu, 0, 0, -uu, 0, 0})

	r := bbox.Transform(g.Box(), M)
	M[4] -= r.LLx
	M[5] -= r.LLy
	return M
}

// InverseCTM returns the matrix which maps display coordinates to PDF
// coordinates.
func (g *Geometry) InverseCTM() matrix.Matrix {
	uu := g.UserUnit
	if uu <= 0 {
		uu = 1
	}
	M := g.CTM()
	S := matrix.Matrix{1 / uu, 0, 0, -1 / uu, 0, 0}
	return matrix.Translate(-M[4], -M[5]).Mul(S).Mul(rotation(g.Rotate))
}

// InverseCTM reads the page geometry of the given page and returns the
// matrix which maps display coordinates to PDF coordinates.
func InverseCTM(r pdf.Getter, page pdf.Reference) (*matrix.Matrix, error) {
	g, err := GetGeometry(r, page)
	if err != nil {
		return nil, err
	}
	M := g.InverseCTM()
	return &M, nil
}

var errMissingPage = errors.New("missing page dictionary")
