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

// Package bbox computes bounding boxes of transformed rectangles.
package bbox

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Transform returns the smallest axis-aligned rectangle which contains the
// image of r under M.
//
// If the image of the first corner has a NaN coordinate, this coordinate
// is NaN in the result.
func Transform(r rect.Rect, M matrix.Matrix) rect.Rect {
	x, y := M.Apply(r.LLx, r.LLy)
	res := rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
	res.Add(M.Apply(r.URx, r.LLy))
	res.Add(M.Apply(r.LLx, r.URy))
	res.Add(M.Apply(r.URx, r.URy))
	return res
}
