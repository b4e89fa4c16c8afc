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

import "seehuhn.de/go/pdflink/pdf"

// PDF 2.0 sections: 12.5.4

// BorderStyle describes the border drawn around an annotation.
type BorderStyle struct {
	// Width is the border width in points.
	// If 0, no border is drawn.
	Width float64

	// Style is the border style.
	//  - "S" (Solid) is the default.
	//  - "D" (Dashed) specifies a dashed line.
	//  - "B" (Beveled) specifies a beveled line.
	//  - "I" (Inset) specifies an inset line.
	//  - "U" (Underline) specifies an underline.
	Style pdf.Name

	// DashArray (optional) defines a pattern of dashes and gaps for drawing
	// the border when Style is "D".
	DashArray []float64
}

// NoBorder is the border style used for link annotations written by
// this package.
var NoBorder = &BorderStyle{Width: 0, Style: "S"}

// DecodeBorderStyle reads a border style dictionary.
// If obj is null, the result is nil.
func DecodeBorderStyle(r pdf.Getter, obj pdf.Object) (*BorderStyle, error) {
	dict, err := pdf.GetDict(r, obj)
	if dict == nil {
		return nil, err
	}

	style := &BorderStyle{}

	style.Width = 1 // default width
	if w, ok, err := pdf.GetOptionalNumber(r, dict["W"]); err != nil {
		return nil, err
	} else if ok && w >= 0 {
		style.Width = float64(w)
	}

	if s, err := pdf.GetName(r, dict["S"]); err != nil {
		return nil, err
	} else if s != "" {
		style.Style = s
	} else {
		style.Style = "S"
	}

	if style.Style == "D" {
		a, err := pdf.GetArray(r, dict["D"])
		if err != nil {
			return nil, err
		}
		var dash []float64
		for _, elem := range a {
			x, err := pdf.GetNumber(r, elem)
			if err != nil || x < 0 {
				dash = nil
				break
			}
			dash = append(dash, float64(x))
		}
		if len(dash) > 0 {
			style.DashArray = dash
		} else {
			style.DashArray = []float64{3}
		}
	}

	return style, nil
}

// Encode returns the border style dictionary.  Default values are
// omitted, except for the width.
func (b *BorderStyle) Encode() (pdf.Dict, error) {
	if b.Width < 0 {
		return nil, pdf.Error("negative border width")
	}
	d := pdf.Dict{
		"W": pdf.Number(b.Width),
	}

	if b.Style != "S" && b.Style != "" {
		d["S"] = b.Style
	}

	if b.Style == "D" {
		if len(b.DashArray) == 0 {
			return nil, pdf.Error("missing dash array")
		}
		defaultDash := len(b.DashArray) == 1 && b.DashArray[0] == 3
		if !defaultDash {
			a := make(pdf.Array, len(b.DashArray))
			for i, x := range b.DashArray {
				if x < 0 {
					return nil, pdf.Error("negative dash value")
				}
				a[i] = pdf.Number(x)
			}
			d["D"] = a
		}
	} else if b.DashArray != nil {
		return nil, pdf.Error("unexpected dash array")
	}

	return d, nil
}
