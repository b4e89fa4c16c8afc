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

package nametree

import (
	"errors"

	"seehuhn.de/go/pdflink/pdf"
)

// maxDepth limits the depth of trees read from a file.
const maxDepth = 32

// Lookup returns the value for the given key.
// If the key is not in the tree, [ErrKeyNotFound] is returned.
func Lookup(r pdf.Getter, root pdf.Object, key string) (pdf.Object, error) {
	node, err := pdf.GetDict(r, root)
	if err != nil {
		return nil, err
	} else if node == nil {
		return nil, ErrKeyNotFound
	}

	for depth := 0; ; depth++ {
		if depth > maxDepth {
			return nil, errTooDeep
		}

		// leaf node
		if names, ok := node["Names"]; ok {
			arr, err := pdf.GetArray(r, names)
			if err != nil {
				return nil, err
			}
			for i := 0; i+1 < len(arr); i += 2 {
				k, err := pdf.GetString(r, arr[i])
				if err != nil {
					continue
				}
				if string(k) == key {
					return arr[i+1], nil
				}
			}
			return nil, ErrKeyNotFound
		}

		// intermediate node: find the child whose limits contain the key
		kids, err := pdf.GetArray(r, node["Kids"])
		if err != nil {
			return nil, err
		}
		var next pdf.Dict
		for _, kid := range kids {
			child, err := pdf.GetDict(r, kid)
			if err != nil {
				return nil, err
			}
			lo, hi, ok := limits(r, child)
			if ok && key >= lo && key <= hi {
				next = child
				break
			}
		}
		if next == nil {
			return nil, ErrKeyNotFound
		}
		node = next
	}
}

func limits(r pdf.Getter, node pdf.Dict) (lo, hi string, ok bool) {
	a, err := pdf.GetArray(r, node["Limits"])
	if err != nil || len(a) != 2 {
		return "", "", false
	}
	loStr, err := pdf.GetString(r, a[0])
	if err != nil {
		return "", "", false
	}
	hiStr, err := pdf.GetString(r, a[1])
	if err != nil {
		return "", "", false
	}
	return string(loStr), string(hiStr), true
}

// ErrKeyNotFound is returned by [Lookup] if a key is not in the tree.
var ErrKeyNotFound = errors.New("key not found")

var errTooDeep = &pdf.MalformedFileError{
	Err: errors.New("name tree too deep"),
}
