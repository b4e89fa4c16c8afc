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

package page

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdflink/internal/bbox"
	"seehuhn.de/go/pdflink/pagetree"
	"seehuhn.de/go/pdflink/pdf"
)

type store struct {
	objects map[pdf.Reference]pdf.Object
	next    uint32
}

func newStore() *store {
	return &store{objects: map[pdf.Reference]pdf.Object{}}
}

func (s *store) Get(ref pdf.Reference) (pdf.Object, error) {
	return s.objects[ref], nil
}

func (s *store) Alloc() pdf.Reference {
	s.next++
	return pdf.NewReference(s.next, 0)
}

func (s *store) Put(ref pdf.Reference, obj pdf.Object) error {
	s.objects[ref] = obj
	return nil
}

func box(llx, lly, urx, ury float64) pdf.Array {
	return pdf.Array{pdf.Number(llx), pdf.Number(lly), pdf.Number(urx), pdf.Number(ury)}
}

func TestNormalizeRotation(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0}, {90, 90}, {180, 180}, {270, 270}, {360, 0},
		{-90, 270}, {-180, 180}, {450, 90}, {44, 0}, {45, 90}, {314, 270},
		{316, 0},
	}
	for _, c := range cases {
		if got := NormalizeRotation(c.in); got != c.want {
			t.Errorf("NormalizeRotation(%g) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCTM(t *testing.T) {
	type pair struct{ pdf, display vec.Vec2 }
	cases := []struct {
		rotate int
		points []pair
		bounds rect.Rect
	}{
		{0, []pair{
			{vec.Vec2{X: 0, Y: 800}, vec.Vec2{X: 0, Y: 0}},
			{vec.Vec2{X: 600, Y: 0}, vec.Vec2{X: 600, Y: 800}},
			{vec.Vec2{X: 100, Y: 700}, vec.Vec2{X: 100, Y: 100}},
		}, rect.Rect{URx: 600, URy: 800}},
		{90, []pair{
			{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: 0}},
			{vec.Vec2{X: 600, Y: 800}, vec.Vec2{X: 800, Y: 600}},
			{vec.Vec2{X: 100, Y: 200}, vec.Vec2{X: 200, Y: 100}},
		}, rect.Rect{URx: 800, URy: 600}},
		{180, []pair{
			{vec.Vec2{X: 600, Y: 0}, vec.Vec2{X: 0, Y: 0}},
			{vec.Vec2{X: 0, Y: 800}, vec.Vec2{X: 600, Y: 800}},
			{vec.Vec2{X: 500, Y: 100}, vec.Vec2{X: 100, Y: 100}},
		}, rect.Rect{URx: 600, URy: 800}},
		{270, []pair{
			{vec.Vec2{X: 600, Y: 800}, vec.Vec2{X: 0, Y: 0}},
			{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 800, Y: 600}},
			{vec.Vec2{X: 500, Y: 700}, vec.Vec2{X: 100, Y: 100}},
		}, rect.Rect{URx: 800, URy: 600}},
	}

	for _, c := range cases {
		g := &Geometry{
			MediaBox: rect.Rect{URx: 600, URy: 800},
			Rotate:   c.rotate,
			UserUnit: 1,
		}
		M := g.CTM()
		inv := g.InverseCTM()
		for _, p := range c.points {
			if got := apply(M, p.pdf); got != p.display {
				t.Errorf("%d: CTM(%v) = %v, want %v", c.rotate, p.pdf, got, p.display)
			}
			if got := apply(inv, p.display); got != p.pdf {
				t.Errorf("%d: InverseCTM(%v) = %v, want %v", c.rotate, p.display, got, p.pdf)
			}
		}
		if d := cmp.Diff(matrix.Identity, M.Mul(inv)); d != "" {
			t.Errorf("%d: CTM*InverseCTM (-want +got):\n%s", c.rotate, d)
		}
		if got := bbox.Transform(g.Box(), M); got != c.bounds {
			t.Errorf("%d: visible area = %v, want %v", c.rotate, got, c.bounds)
		}
	}
}

func apply(M matrix.Matrix, p vec.Vec2) vec.Vec2 {
	x, y := M.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

func TestCropBoxAndUserUnit(t *testing.T) {
	g := &Geometry{
		MediaBox: rect.Rect{URx: 600, URy: 800},
		CropBox:  &rect.Rect{LLx: 100, LLy: 100, URx: 500, URy: 900},
		UserUnit: 2,
	}
	if got, want := g.Box(), (rect.Rect{LLx: 100, LLy: 100, URx: 500, URy: 800}); got != want {
		t.Errorf("Box() = %v, want %v", got, want)
	}
	M := g.CTM()
	if got, want := apply(M, vec.Vec2{X: 100, Y: 800}), (vec.Vec2{}); got != want {
		t.Errorf("top-left corner maps to %v", got)
	}
	if got, want := apply(M, vec.Vec2{X: 500, Y: 100}), (vec.Vec2{X: 800, Y: 1400}); got != want {
		t.Errorf("bottom-right corner maps to %v, want %v", got, want)
	}
	if got, want := bbox.Transform(g.Box(), M), (rect.Rect{URx: 800, URy: 1400}); got != want {
		t.Errorf("visible area = %v, want %v", got, want)
	}
}

func TestGetGeometry(t *testing.T) {
	s := newStore()
	tree := pagetree.NewWriter(s)
	tree.Attributes = pdf.Dict{
		"MediaBox": box(0, 0, 600, 800),
		"Rotate":   pdf.Integer(90),
	}

	p1 := s.Alloc()
	tree.AppendPage(p1, pdf.Dict{"Type": pdf.Name("Page")})
	p2 := s.Alloc()
	tree.AppendPage(p2, pdf.Dict{
		"Type":     pdf.Name("Page"),
		"Rotate":   pdf.Integer(-90),
		"MediaBox": box(10, 820, 210, 20),
		"UserUnit": pdf.Real(1.5),
	})
	p3 := s.Alloc()
	tree.AppendPage(p3, pdf.Dict{
		"Type":     pdf.Name("Page"),
		"MediaBox": box(0, 0, 0, 0),
		"Rotate":   pdf.Integer(0),
	})
	if _, err := tree.Close(); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		ref  pdf.Reference
		want *Geometry
	}{
		{p1, &Geometry{MediaBox: rect.Rect{URx: 600, URy: 800}, Rotate: 90, UserUnit: 1}},
		{p2, &Geometry{MediaBox: rect.Rect{LLx: 10, LLy: 20, URx: 210, URy: 820}, Rotate: 270, UserUnit: 1.5}},
		{p3, &Geometry{MediaBox: Letter, Rotate: 0, UserUnit: 1}},
	}
	for _, c := range cases {
		got, err := GetGeometry(s, c.ref)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%s: unexpected geometry (-want +got):\n%s", c.ref, d)
		}
	}

	inv, err := InverseCTM(s, p1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := apply(*inv, vec.Vec2{X: 800, Y: 600}), (vec.Vec2{X: 600, Y: 800}); got != want {
		t.Errorf("InverseCTM maps to %v, want %v", got, want)
	}
}

func TestGetGeometryMalformed(t *testing.T) {
	s := newStore()
	ref := s.Alloc()
	s.Put(ref, pdf.Dict{
		"Type":     pdf.Name("Page"),
		"MediaBox": pdf.Array{pdf.Integer(1), pdf.Name("x")},
	})
	if _, err := GetGeometry(s, ref); err == nil {
		t.Error("malformed MediaBox not detected")
	}
	if _, err := GetGeometry(s, pdf.NewReference(99, 0)); err == nil {
		t.Error("missing page not detected")
	}
}
