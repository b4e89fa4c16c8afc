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

package bbox

import (
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

func TestTransform(t *testing.T) {
	r := rect.Rect{LLx: 10, LLy: 20, URx: 110, URy: 70}
	cases := []struct {
		M   matrix.Matrix
		out rect.Rect
	}{
		{matrix.Identity, r},
		{matrix.Matrix{1, 0, 0, -1, 0, 800}, rect.Rect{LLx: 10, LLy: 730, URx: 110, URy: 780}},
		{matrix.Matrix{0, 1, -1, 0, 0, 0}, rect.Rect{LLx: -70, LLy: 10, URx: -20, URy: 110}},
		{matrix.Matrix{-1, 0, 0, -1, 600, 800}, rect.Rect{LLx: 490, LLy: 730, URx: 590, URy: 780}},
		{matrix.Matrix{1, 1, 0, 1, 0, 0}, rect.Rect{LLx: 10, LLy: 30, URx: 110, URy: 180}},
	}
	for _, test := range cases {
		got := Transform(r, test.M)
		if got != test.out {
			t.Errorf("Transform(%v, %v) = %v, want %v", r, test.M, got, test.out)
		}
	}
}
