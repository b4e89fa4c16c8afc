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
	"strconv"
	"strings"

	"seehuhn.de/go/pdflink/action"
	"seehuhn.de/go/pdflink/destination"
	"seehuhn.de/go/pdflink/file"
	"seehuhn.de/go/pdflink/internal/uripath"
	"seehuhn.de/go/pdflink/optional"
)

// Format returns the URI string which describes the action a.
//
// Named destinations and file names are percent-encoded.  Unset
// destination parameters are written as "nan".
func Format(a action.Action) string {
	b := &strings.Builder{}
	switch a := a.(type) {
	case action.GoTo:
		b.WriteByte('#')
		writeDest(b, a.Dest)
	case action.URI:
		return a.URI
	case action.Launch:
		writeFile(b, a.File)
		b.WriteString("page=1")
	case action.GoToR:
		writeFile(b, a.File)
		writeDest(b, a.Dest)
	}
	return b.String()
}

// writeFile writes the URI of a file, followed by the separator which
// starts the destination parameters.
func writeFile(b *strings.Builder, f file.Spec) {
	sep := byte('#')
	switch f := f.(type) {
	case file.Path:
		if strings.HasPrefix(string(f), "/") {
			b.WriteString("file://")
		} else {
			b.WriteString("file:")
		}
		b.WriteString(uripath.EscapePath(string(f)))
	case file.URL:
		b.WriteString(string(f))
		if strings.Contains(string(f), "#") {
			sep = '&'
		}
	}
	b.WriteByte(sep)
}

func writeDest(b *strings.Builder, dest destination.Destination) {
	if dest == nil {
		dest = destination.Default()
	}
	switch dest := dest.(type) {
	case destination.Page:
		page := uint64(dest.Index) + 1
		if page > math.MaxUint32 {
			page = math.MaxUint32
		}
		b.WriteString("page=")
		b.WriteString(strconv.FormatUint(page, 10))
		writeKind(b, dest.GetKind())
	case destination.Named:
		b.WriteString("nameddest=")
		b.WriteString(uripath.EscapeComponent(string(dest)))
	}
}

func writeKind(b *strings.Builder, kind destination.Kind) {
	switch k := kind.(type) {
	case destination.Fit:
		b.WriteString("&view=Fit")
	case destination.FitB:
		b.WriteString("&view=FitB")
	case destination.FitH:
		writeView(b, "FitH", k.Top)
	case destination.FitBH:
		writeView(b, "FitBH", k.Top)
	case destination.FitV:
		writeView(b, "FitV", k.Left)
	case destination.FitBV:
		writeView(b, "FitBV", k.Left)
	case destination.XYZ:
		zoom := k.Zoom
		if z, ok := zoom.Get(); ok && z == 0 {
			zoom.Clear()
		}
		if !zoom.IsSet() && !k.Left.IsSet() && !k.Top.IsSet() {
			return
		}
		b.WriteString("&zoom=")
		b.WriteString(formatOptional(zoom))
		b.WriteByte(',')
		b.WriteString(formatOptional(k.Left))
		b.WriteByte(',')
		b.WriteString(formatOptional(k.Top))
	case destination.FitR:
		b.WriteString("&viewrect=")
		b.WriteString(formatNumber(k.Left))
		b.WriteByte(',')
		b.WriteString(formatNumber(k.Bottom))
		b.WriteByte(',')
		b.WriteString(formatNumber(k.Right - k.Left))
		b.WriteByte(',')
		b.WriteString(formatNumber(k.Top - k.Bottom))
	}
}

func writeView(b *strings.Builder, name string, x optional.Float) {
	b.WriteString("&view=")
	b.WriteString(name)
	if v, ok := x.Get(); ok {
		b.WriteByte(',')
		b.WriteString(formatNumber(v))
	}
}

func formatOptional(x optional.Float) string {
	v, ok := x.Get()
	if !ok {
		return "nan"
	}
	return formatNumber(v)
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
