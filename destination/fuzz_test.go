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
	"testing"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdflink/optional"
)

func FuzzTransform(f *testing.F) {
	f.Add(0.0, 1.0, -1.0, 0.0, 0.0, 792.0, 10.0, 20.0, 100.0)
	f.Add(1.0, 0.0, 0.0, -1.0, 0.0, 792.0, 10.0, math.NaN(), 0.0)
	f.Add(math.NaN(), 1.0, 1.0, 1.0, 0.0, 0.0, 1.0, 1.0, 1.0)

	f.Fuzz(func(t *testing.T, a, b, c, d, e, ff, x, y, z float64) {
		M := matrix.Matrix{a, b, c, d, e, ff}
		kinds := []Kind{
			XYZ{optional.NewFloat(x), optional.NewFloat(y), optional.NewFloat(z)},
			XYZ{Left: optional.NewFloat(x)},
			XYZ{Top: optional.NewFloat(y)},
			FitH{optional.NewFloat(y)},
			FitBH{optional.NewFloat(y)},
			FitV{optional.NewFloat(x)},
			FitBV{optional.NewFloat(x)},
			FitR{x, y, x + z, y + z},
		}
		for _, k := range kinds {
			out := k.Transform(M)
			if hasNaN(out) {
				t.Errorf("%v.Transform(%v) = %v contains NaN", k, M, out)
			}
			if out.Type() != k.Type() {
				t.Errorf("Transform changed the type from %s to %s", k.Type(), out.Type())
			}
		}
	})
}

func hasNaN(k Kind) bool {
	var values []float64
	switch k := k.(type) {
	case XYZ:
		values = []float64{k.Left.Or(0), k.Top.Or(0), k.Zoom.Or(0)}
	case FitH:
		values = []float64{k.Top.Or(0)}
	case FitBH:
		values = []float64{k.Top.Or(0)}
	case FitV:
		values = []float64{k.Left.Or(0)}
	case FitBV:
		values = []float64{k.Left.Or(0)}
	case FitR:
		values = []float64{k.Left, k.Bottom, k.Right, k.Top}
	}
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
