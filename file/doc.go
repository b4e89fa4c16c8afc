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

// Package file implements PDF file specifications for link targets.
//
// File specifications reference files which are external to a PDF
// document.  This package supports both string and dictionary forms of
// file specifications as defined in PDF 2.0 sections 7.11.3 and 7.11.4.
//
// The main types provided are:
//   - [Spec]: the target of a link, either a [Path] or a [URL]
//   - [Specification]: represents a file specification dictionary
//
// A [Path] is written as a file specification dictionary with a Unicode
// file name in /UF and a printable ASCII version of the name in /F.
// A [URL] uses the URL file system, with the URL stored in /F.
package file
