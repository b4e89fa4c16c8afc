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

package pagetree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

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

func writeTree(t *testing.T, s *store, numPages int, attr pdf.Dict) (pdf.Reference, []pdf.Reference) {
	t.Helper()

	tree := NewWriter(s)
	tree.Attributes = attr
	refs := make([]pdf.Reference, numPages)
	for i := range refs {
		refs[i] = s.Alloc()
		err := tree.AppendPage(refs[i], pdf.Dict{"Type": pdf.Name("Page")})
		if err != nil {
			t.Fatal(err)
		}
	}
	root, err := tree.Close()
	if err != nil {
		t.Fatal(err)
	}
	return root, refs
}

func TestFindPages(t *testing.T) {
	for _, numPages := range []int{0, 1, 15, 16, 17, 234} {
		s := newStore()
		root, pageRefsIn := writeTree(t, s, numPages, nil)

		pageRefsOut, err := FindPages(s, root)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(pageRefsIn, pageRefsOut, cmpopts.EquateEmpty()); d != "" {
			t.Fatalf("%d pages: unexpected pageRefs (-want +got):\n%s", numPages, d)
		}

		n, err := NumPages(s, root)
		if err != nil {
			t.Fatal(err)
		}
		if n != numPages {
			t.Errorf("NumPages = %d, want %d", n, numPages)
		}

		for i, want := range pageRefsIn {
			got, err := GetPage(s, root, i)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("GetPage(%d) = %s, want %s", i, got, want)
			}
		}
		_, err = GetPage(s, root, numPages)
		if !errors.Is(err, ErrPageNotFound) {
			t.Errorf("GetPage(%d): unexpected error %v", numPages, err)
		}
	}
}

func TestInherit(t *testing.T) {
	s := newStore()
	box := pdf.Array{pdf.Integer(0), pdf.Integer(0), pdf.Integer(600), pdf.Integer(800)}
	_, refs := writeTree(t, s, 40, pdf.Dict{
		"MediaBox": box,
		"Rotate":   pdf.Integer(90),
	})

	page := s.objects[refs[37]].(pdf.Dict)
	page["Rotate"] = pdf.Integer(180)

	got, err := Inherit(s, page)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(box, got["MediaBox"]); d != "" {
		t.Errorf("MediaBox (-want +got):\n%s", d)
	}
	if got["Rotate"] != pdf.Integer(180) {
		t.Errorf("Rotate = %v, want 180", got["Rotate"])
	}
	if _, ok := page["MediaBox"]; ok {
		t.Error("page dictionary was modified")
	}
}

func TestInheritLoop(t *testing.T) {
	s := newStore()
	a := s.Alloc()
	b := s.Alloc()
	s.objects[a] = pdf.Dict{"Type": pdf.Name("Pages"), "Parent": b}
	s.objects[b] = pdf.Dict{"Type": pdf.Name("Pages"), "Parent": a}

	_, err := Inherit(s, pdf.Dict{"Type": pdf.Name("Page"), "Parent": a})
	var e *pdf.MalformedFileError
	if !errors.As(err, &e) {
		t.Errorf("expected MalformedFileError, got %v", err)
	}
}
