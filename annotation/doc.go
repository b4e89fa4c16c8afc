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

// Package annotation reads and writes PDF link annotations.
//
// A [Link] combines a clickable rectangle with an [action.Action].  The
// rectangle and the coordinates of explicit destinations are given in
// display space: the coordinate system in which a page is shown on
// screen, with the origin in the top-left corner, the y-axis pointing
// down and the page rotation applied.  [BuildLink] and [AddLinks] convert
// these coordinates into the default user space of the PDF file;
// [ExtractLinks] converts them back.
//
// PDF 2.0 sections: 12.5.2 12.5.6.5
package annotation
