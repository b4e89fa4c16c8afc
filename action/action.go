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

// Package action implements the PDF actions which can be triggered by link
// annotations: go-to actions within the document, remote go-to actions,
// launch actions and URI actions.
//
// PDF 2.0 sections: 12.6.1 12.6.4
package action

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdflink/destination"
	"seehuhn.de/go/pdflink/pdf"
)

// Type is the PDF name of an action type, as stored in the /S entry of
// an action dictionary.
type Type pdf.Name

const (
	TypeGoTo   Type = "GoTo"
	TypeGoToR  Type = "GoToR"
	TypeLaunch Type = "Launch"
	TypeURI    Type = "URI"
)

// Action is the behaviour of a link when it is activated.  The concrete
// types are [GoTo], [GoToR], [Launch] and [URI].
type Action interface {
	// ActionType returns the PDF name of the action type.
	ActionType() Type

	// Encode returns the action dictionary.  The PageResolver is used to
	// find the page objects of explicit destinations within the current
	// document; it is only needed for [GoTo] actions with a
	// [destination.Page] destination.
	Encode(res PageResolver) (pdf.Dict, error)

	isAction()
}

// PageResolver finds the page object for a 0-based page index of the
// current document.  If the returned matrix is not nil, destination
// coordinates are transformed by this matrix before they are written.
type PageResolver interface {
	ResolvePage(index uint32) (pdf.Reference, *matrix.Matrix, error)
}

// ErrUnsupported is returned by [Decode] for action types which are not
// handled by this package.
var ErrUnsupported = errors.New("unsupported action type")

// Decode reads an action dictionary.
//
// The function lookup is used to convert page references in explicit
// destinations of go-to actions into page indices.
func Decode(r pdf.Getter, obj pdf.Object, lookup destination.PageLookup) (Action, error) {
	dict, err := pdf.GetDict(r, obj)
	if err != nil {
		return nil, err
	} else if dict == nil {
		return nil, &pdf.MalformedFileError{Err: errors.New("missing action dictionary")}
	}

	actionType, err := pdf.GetName(r, dict["S"])
	if err != nil {
		return nil, err
	}

	switch Type(actionType) {
	case TypeGoTo:
		return decodeGoTo(r, dict, lookup)
	case TypeGoToR:
		return decodeGoToR(r, dict)
	case TypeLaunch:
		return decodeLaunch(r, dict)
	case TypeURI:
		return decodeURI(r, dict)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, actionType)
	}
}
