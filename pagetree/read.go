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

// Package pagetree reads and writes PDF page trees.
//
// The functions in this package locate pages by number and determine the
// values of inheritable page attributes.
package pagetree

import (
	"errors"
	"math"

	"seehuhn.de/go/pdflink/pdf"
)

// FindPages returns the references of all pages in the page tree with the
// given root, in page order.  Kids which are not references are reported
// as 0.
func FindPages(r pdf.Getter, root pdf.Reference) ([]pdf.Reference, error) {
	if root == 0 {
		return nil, errInvalidPageTree
	}

	var res []pdf.Reference
	todo := []pdf.Reference{root}
	seen := map[pdf.Reference]bool{
		root: true,
	}
	for len(todo) > 0 {
		k := len(todo) - 1
		ref := todo[k]
		todo = todo[:k]

		node, err := pdf.GetDict(r, ref)
		if err != nil {
			return nil, err
		}
		tp, err := pdf.GetName(r, node["Type"])
		if err != nil {
			return nil, err
		}
		switch tp {
		case "Page":
			res = append(res, ref)
		case "Pages":
			kids, err := pdf.GetArray(r, node["Kids"])
			if err != nil {
				return nil, err
			}
			for i := len(kids) - 1; i >= 0; i-- {
				kid := kids[i]
				if kidRef, ok := kid.(pdf.Reference); ok && !seen[kidRef] {
					todo = append(todo, kidRef)
					seen[kidRef] = true
				} else {
					res = append(res, 0)
				}
			}
		default:
			return nil, errInvalidPageTree
		}
	}

	return res, nil
}

// NumPages returns the number of pages in the page tree with the given
// root.
func NumPages(r pdf.Getter, root pdf.Reference) (int, error) {
	node, err := pdf.GetDict(r, root)
	if err != nil {
		return 0, err
	}

	count, err := pdf.GetInt(r, node["Count"])
	if err != nil {
		return 0, err
	}

	if count < 0 || count > math.MaxInt32 {
		return 0, errInvalidPageTree
	}

	return int(count), nil
}

// GetPage returns the reference of the page with the given number, using
// the /Count entries of the intermediate nodes to skip subtrees.
// Page numbers start at 0.
func GetPage(r pdf.Getter, root pdf.Reference, pageNo int) (pdf.Reference, error) {
	if pageNo < 0 {
		return 0, errors.New("invalid page number")
	}

	skip := pdf.Integer(pageNo)
	kids := pdf.Array{root}

	seen := map[pdf.Reference]bool{}
	for len(kids) > 0 {
		ref, ok := kids[0].(pdf.Reference)
		kids = kids[1:]
		if !ok {
			return 0, errInvalidPageTree
		}

		if seen[ref] {
			return 0, errInvalidPageTree
		}
		seen[ref] = true

		node, err := pdf.GetDict(r, ref)
		if err != nil {
			return 0, err
		}

		tp, err := pdf.GetName(r, node["Type"])
		if err != nil {
			return 0, err
		}
		switch tp {
		case "Page":
			if skip > 0 {
				skip--
				break
			}
			return ref, nil

		case "Pages":
			count, err := pdf.GetInt(r, node["Count"])
			if err != nil {
				return 0, err
			}
			if count < 0 {
				return 0, errInvalidPageTree
			} else if skip < count {
				kids, err = pdf.GetArray(r, node["Kids"])
				if err != nil {
					return 0, err
				}
			} else {
				// skip to next kid
				skip -= count
			}

		default:
			return 0, errInvalidPageTree
		}
	}

	return 0, ErrPageNotFound
}

// ErrPageNotFound is returned by [GetPage] if the page number is larger than
// the number of pages in the tree.
var ErrPageNotFound = errors.New("page not found")

var errInvalidPageTree = &pdf.MalformedFileError{
	Err: errors.New("invalid page tree"),
}
