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

// Package pdflink converts PDF link actions to and from the URI strings used
// by PDF viewers to describe link targets.
//
// The URI syntax follows the Adobe document "Parameters for Opening PDF
// Files":
//
//	#page=5                          go to page 5 of the current document
//	#page=2&view=FitH,500            go to page 2, fit the width, top at 500
//	#page=1&zoom=150,100,600         go to page 1, 150%, upper left at (100, 600)
//	#page=3&viewrect=50,100,150,200  go to page 3, show the given rectangle
//	#nameddest=Chapter1              go to a named destination
//	file:other.pdf#page=2            go to page 2 of another PDF file
//	file:///docs/readme.txt#page=1   open a file in an external application
//	https://example.com              any other URI
//
// [Format] converts an [action.Action] into such a string, and [Parse]
// converts a string back into an action.  Since several actions map to the
// same string, the conversion is not always reversible:
//
//   - Strings which end in ".pdf" before the fragment are taken to be
//     remote go-to actions.
//   - "file:" URIs and strings which do not start with a URI scheme of at
//     least three characters are taken to be launch actions.
//   - All other strings are returned as URI actions.
//   - A named destination which looks like a "key=value" parameter list
//     is not recognized as a name.
//
// The coordinates in the URI strings are page coordinates as used by the
// viewer.  Use [destination.Kind.Transform] to convert them to the PDF
// coordinate system of a page, or use the annotation package which takes
// care of this.
package pdflink
