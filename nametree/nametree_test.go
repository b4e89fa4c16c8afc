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

package nametree

import (
	"errors"
	"fmt"
	"maps"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdflink/internal/debug/memfile"
	"seehuhn.de/go/pdflink/pdf"
)

func seq(keys []string) func(yield func(string, pdf.Object) bool) {
	return func(yield func(string, pdf.Object) bool) {
		for i, key := range keys {
			if !yield(key, pdf.Integer(i)) {
				return
			}
		}
	}
}

func TestWriteLookup(t *testing.T) {
	for _, n := range []int{0, 1, 2, 63, 64, 65, 1000, 2049} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			doc, err := memfile.New(0, rect.Rect{URx: 1, URy: 1})
			if err != nil {
				t.Fatal(err)
			}

			keys := make([]string, n)
			for i := range keys {
				keys[i] = fmt.Sprintf("key%05d", i)
			}
			root, err := Write(doc, seq(keys))
			if err != nil {
				t.Fatal(err)
			}

			for i, key := range keys {
				val, err := Lookup(doc, root, key)
				if err != nil {
					t.Fatalf("%s: %v", key, err)
				}
				if val != pdf.Integer(i) {
					t.Errorf("%s: got %v, want %d", key, val, i)
				}
			}

			for _, key := range []string{"", "a", "key", "key00000x", "zzz"} {
				_, err := Lookup(doc, root, key)
				if !errors.Is(err, ErrKeyNotFound) {
					t.Errorf("%q: got %v, want %v", key, err, ErrKeyNotFound)
				}
			}

			rootDict, err := pdf.GetDict(doc, root)
			if err != nil {
				t.Fatal(err)
			}
			if _, hasLimits := rootDict["Limits"]; hasLimits {
				t.Error("root node has /Limits")
			}
		})
	}
}

func TestWriteUnsorted(t *testing.T) {
	doc, err := memfile.New(0, rect.Rect{URx: 1, URy: 1})
	if err != nil {
		t.Fatal(err)
	}
	for _, keys := range [][]string{{"b", "a"}, {"a", "a"}} {
		_, err = Write(doc, seq(keys))
		if err == nil {
			t.Errorf("%q: missing error", keys)
		}
	}
}

func TestLookupNull(t *testing.T) {
	data := map[string]pdf.Object{"x": pdf.Integer(1)}
	_, err := Lookup(nil, nil, "x")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("got %v, want %v", err, ErrKeyNotFound)
	}

	doc, err := memfile.New(0, rect.Rect{URx: 1, URy: 1})
	if err != nil {
		t.Fatal(err)
	}
	root, err := Write(doc, maps.All(data))
	if err != nil {
		t.Fatal(err)
	}
	val, err := Lookup(doc, root, "x")
	if err != nil {
		t.Fatal(err)
	}
	if val != pdf.Integer(1) {
		t.Errorf("got %v", val)
	}
}

func TestLookupLoop(t *testing.T) {
	doc, err := memfile.New(0, rect.Rect{URx: 1, URy: 1})
	if err != nil {
		t.Fatal(err)
	}
	ref := doc.Alloc()
	node := pdf.Dict{
		"Kids":   pdf.Array{ref},
		"Limits": pdf.Array{pdf.String("a"), pdf.String("z")},
	}
	if err := doc.Put(ref, node); err != nil {
		t.Fatal(err)
	}

	_, err = Lookup(doc, ref, "m")
	var malformed *pdf.MalformedFileError
	if !errors.As(err, &malformed) {
		t.Errorf("got %v, want a malformed file error", err)
	}
}
