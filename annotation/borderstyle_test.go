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

package annotation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdflink/pdf"
)

func TestBorderStyleRoundTrip(t *testing.T) {
	cases := []*BorderStyle{
		{Width: 0, Style: "S"},
		{Width: 1, Style: "S"},
		{Width: 2.5, Style: "U"},
		{Width: 1, Style: "D", DashArray: []float64{3}},
		{Width: 1, Style: "D", DashArray: []float64{2, 1}},
	}
	for _, b := range cases {
		dict, err := b.Encode()
		if err != nil {
			t.Fatal(err)
		}
		got, err := DecodeBorderStyle(nil, dict)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(b, got); d != "" {
			t.Error(d)
		}
	}
}

func TestNoBorder(t *testing.T) {
	dict, err := NoBorder.Encode()
	if err != nil {
		t.Fatal(err)
	}
	want := pdf.Dict{"W": pdf.Number(0)}
	if d := cmp.Diff(want, dict); d != "" {
		t.Error(d)
	}
}

func TestBorderStyleDefaults(t *testing.T) {
	got, err := DecodeBorderStyle(nil, pdf.Dict{
		"S": pdf.Name("D"),
		"D": pdf.Array{pdf.Integer(-1)},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := &BorderStyle{Width: 1, Style: "D", DashArray: []float64{3}}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}

	got, err = DecodeBorderStyle(nil, nil)
	if err != nil || got != nil {
		t.Errorf("got %v, %v for null", got, err)
	}
}

func TestBorderStyleInvalid(t *testing.T) {
	cases := []*BorderStyle{
		{Width: -1},
		{Width: 1, Style: "D"},
		{Width: 1, Style: "S", DashArray: []float64{1}},
		{Width: 1, Style: "D", DashArray: []float64{1, -1}},
	}
	for _, b := range cases {
		if _, err := b.Encode(); err == nil {
			t.Errorf("%v: missing error", b)
		}
	}
}
