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

// Package destination implements PDF destinations as specified in section 12.3.2
// of PDF 32000-1:2008.
//
// A destination defines a particular view of a document, consisting of:
//   - The page of the document to display
//   - The location of the document window on that page
//   - The magnification (zoom) factor
//
// # Destination Kinds
//
// Eight kinds of views are supported, corresponding to the syntax
// defined in Table 149 of the PDF specification:
//
//   - XYZ: Position at coordinates with zoom
//   - Fit: Fit entire page in window
//   - FitH: Fit width, position at top coordinate
//   - FitV: Fit height, position at left coordinate
//   - FitR: Fit rectangle in window
//   - FitB: Fit bounding box in window (PDF 1.1+)
//   - FitBH: Fit bounding box width (PDF 1.1+)
//   - FitBV: Fit bounding box height (PDF 1.1+)
//
// # Named Destinations
//
// Named destinations provide indirection - instead of embedding the full
// destination, a name or string is used that references a destination stored
// in the document catalog's Dests dictionary or Names/Dests name tree.
//
// # Optional Coordinates
//
// Some destination kinds have optional coordinate parameters.  These are
// represented by [optional.Float] values; an unset value means that the
// viewer keeps its current value.  For example:
//
//	kind := destination.XYZ{
//		Left: optional.NewFloat(100), // set to 100
//		// Top and Zoom retain their current values
//	}
//
// The zoom factor of XYZ destinations is stored as a percentage.  It is
// divided by 100 when the destination is written to a PDF file.
//
// # Coordinate Systems
//
// Destination coordinates can be mapped between the coordinate system of
// the PDF page and other coordinate systems (for example a page space with
// the y-axis pointing down) using [Kind.Transform].
package destination
