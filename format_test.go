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

package pdflink

import (
	"math"
	"testing"

	"seehuhn.de/go/pdflink/action"
	"seehuhn.de/go/pdflink/destination"
	"seehuhn.de/go/pdflink/file"
	"seehuhn.de/go/pdflink/optional"
)

func num(x float64) optional.Float {
	return optional.NewFloat(x)
}

func gotoPage(page uint32, kind destination.Kind) action.Action {
	return action.GoTo{Dest: destination.Page{Index: page, Kind: kind}}
}

func gotoNamed(name string) action.Action {
	return action.GoTo{Dest: destination.Named(name)}
}

func TestFormat(t *testing.T) {
	var unset optional.Float
	cases := []struct {
		a    action.Action
		want string
	}{
		{gotoPage(0, destination.XYZ{}), "#page=1"},
		{gotoPage(4, destination.XYZ{}), "#page=5"},
		{gotoPage(4, nil), "#page=5"},
		{gotoPage(0, destination.Fit{}), "#page=1&view=Fit"},
		{gotoPage(0, destination.FitB{}), "#page=1&view=FitB"},
		{gotoPage(0, destination.FitH{Top: num(500)}), "#page=1&view=FitH,500"},
		{gotoPage(0, destination.FitH{}), "#page=1&view=FitH"},
		{gotoPage(0, destination.FitV{Left: num(100)}), "#page=1&view=FitV,100"},
		{gotoPage(0, destination.FitV{}), "#page=1&view=FitV"},
		{gotoPage(4, destination.FitBH{Top: num(200)}), "#page=5&view=FitBH,200"},
		{gotoPage(0, destination.FitBH{}), "#page=1&view=FitBH"},
		{gotoPage(0, destination.FitBV{Left: num(50)}), "#page=1&view=FitBV,50"},
		{gotoPage(0, destination.FitBV{}), "#page=1&view=FitBV"},
		{gotoPage(0, destination.XYZ{Left: num(100), Top: num(600), Zoom: num(150)}),
			"#page=1&zoom=150,100,600"},
		{gotoPage(0, destination.XYZ{Zoom: num(200)}), "#page=1&zoom=200,nan,nan"},
		{gotoPage(0, destination.XYZ{Left: num(100)}), "#page=1&zoom=nan,100,nan"},
		{gotoPage(0, destination.XYZ{Top: num(250)}), "#page=1&zoom=nan,nan,250"},
		{gotoPage(2, destination.XYZ{Left: num(10), Top: num(20)}), "#page=3&zoom=nan,10,20"},
		{gotoPage(2, destination.XYZ{Left: num(100), Zoom: num(150)}), "#page=3&zoom=150,100,nan"},
		{gotoPage(0, destination.XYZ{Top: num(500), Zoom: num(75)}), "#page=1&zoom=75,nan,500"},
		{gotoPage(0, destination.XYZ{Zoom: num(0)}), "#page=1"},
		{gotoPage(0, destination.XYZ{Left: num(50), Zoom: num(0)}), "#page=1&zoom=nan,50,nan"},
		{gotoPage(0, destination.XYZ{Left: num(math.NaN()), Top: num(math.NaN()), Zoom: num(math.NaN())}),
			"#page=1"},
		{gotoPage(0, destination.XYZ{Left: num(0), Top: num(0), Zoom: num(50)}), "#page=1&zoom=50,0,0"},
		{gotoPage(0, destination.XYZ{Left: num(1.5), Top: unset, Zoom: num(12.25)}),
			"#page=1&zoom=12.25,1.5,nan"},
		{gotoPage(1, destination.FitR{Left: 50, Bottom: 100, Right: 200, Top: 300}),
			"#page=2&viewrect=50,100,150,200"},
		{gotoPage(math.MaxUint32, destination.XYZ{}), "#page=4294967295"},

		{gotoNamed("Chapter1"), "#nameddest=Chapter1"},
		{gotoNamed("section_1.1.b"), "#nameddest=section_1.1.b"},
		{gotoNamed("章节"), "#nameddest=%E7%AB%A0%E8%8A%82"},
		{gotoNamed("Кириллица"),
			"#nameddest=%D0%9A%D0%B8%D1%80%D0%B8%D0%BB%D0%BB%D0%B8%D1%86%D0%B0"},
		{gotoNamed("😁"), "#nameddest=%F0%9F%98%81"},
		{gotoNamed("Name With Spaces"), "#nameddest=Name%20With%20Spaces"},
		{gotoNamed("Name/With/Slashes"), "#nameddest=Name%2FWith%2FSlashes"},
		{gotoNamed("page=10"), "#nameddest=page%3D10"},
		{gotoNamed("a-b_c.d!e~f*g'h(i)j"), "#nameddest=a-b_c.d!e~f*g'h(i)j"},
		{gotoNamed(""), "#nameddest="},
		{action.GoTo{}, "#page=1"},

		{action.URI{URI: "https://example.com"}, "https://example.com"},
		{action.URI{URI: "http://example.com/page"}, "http://example.com/page"},
		{action.URI{URI: "mailto:user@example.com"}, "mailto:user@example.com"},
		{action.URI{URI: "ftp://ftp.example.com/file.txt"}, "ftp://ftp.example.com/file.txt"},
		{action.URI{URI: "custom://resource/path"}, "custom://resource/path"},
		{action.URI{URI: "https://example.com/hello%20world"}, "https://example.com/hello%20world"},
		{action.URI{}, ""},

		{action.Launch{File: file.Path("docs/readme.txt")}, "file:docs/readme.txt#page=1"},
		{action.Launch{File: file.Path("/path/to/file.pdf")}, "file:///path/to/file.pdf#page=1"},
		{action.Launch{File: file.Path("/path with spaces.pdf")},
			"file:///path%20with%20spaces.pdf#page=1"},
		{action.Launch{File: file.Path("文件.docx")}, "file:%E6%96%87%E4%BB%B6.docx#page=1"},
		{action.Launch{File: file.Path("../report.pdf")}, "file:../report.pdf#page=1"},
		{action.Launch{File: file.Path("")}, "file:#page=1"},
		{action.Launch{File: file.URL("https://example.com/doc.pdf")},
			"https://example.com/doc.pdf#page=1"},
		{action.Launch{File: file.URL("https://example.com/doc.pdf#x")},
			"https://example.com/doc.pdf#x&page=1"},

		{action.GoToR{File: file.Path("/path with spaces.pdf"), Dest: destination.Default()},
			"file:///path%20with%20spaces.pdf#page=1"},
		{action.GoToR{File: file.Path("other.pdf"), Dest: destination.Page{Kind: destination.Fit{}}},
			"file:other.pdf#page=1&view=Fit"},
		{action.GoToR{
			File: file.Path("doc.pdf"),
			Dest: destination.Page{
				Index: 2,
				Kind:  destination.XYZ{Left: num(100), Top: num(200), Zoom: num(150)},
			}},
			"file:doc.pdf#page=3&zoom=150,100,200"},
		{action.GoToR{
			File: file.URL("https://example.com/doc.pdf"),
			Dest: destination.Page{Index: 1, Kind: destination.Fit{}}},
			"https://example.com/doc.pdf#page=2&view=Fit"},
		{action.GoToR{
			File: file.URL("https://example.com/doc.pdf#frag"),
			Dest: destination.Page{Index: 1, Kind: destination.Fit{}}},
			"https://example.com/doc.pdf#frag&page=2&view=Fit"},
		{action.GoToR{File: file.Path("other.pdf"), Dest: destination.Named("Chapter1")},
			"file:other.pdf#nameddest=Chapter1"},
		{action.GoToR{File: file.URL("https://example.com/doc.pdf"), Dest: destination.Named("Chapter1")},
			"https://example.com/doc.pdf#nameddest=Chapter1"},
		{action.GoToR{File: file.URL("https://example.com/doc.pdf#frag"), Dest: destination.Named("Chapter1")},
			"https://example.com/doc.pdf#frag&nameddest=Chapter1"},
		{action.GoToR{File: file.Path("doc.pdf"), Dest: destination.Named("章节")},
			"file:doc.pdf#nameddest=%E7%AB%A0%E8%8A%82"},
		{action.GoToR{File: file.Path("doc.pdf")}, "file:doc.pdf#page=1"},
	}

	for i, c := range cases {
		got := Format(c.a)
		if got != c.want {
			t.Errorf("%d: Format(%#v) = %q, want %q", i, c.a, got, c.want)
		}
	}
}
