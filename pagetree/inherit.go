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

package pagetree

import (
	"seehuhn.de/go/pdflink/pdf"
)

// Inheritable lists the page attributes which can be set on intermediate
// nodes of the page tree.
var Inheritable = []pdf.Name{"Resources", "MediaBox", "CropBox", "Rotate"}

// maxInheritDepth limits the length of /Parent chains.
const maxInheritDepth = 64

// Inherit returns a copy of the page dictionary where the missing
// inheritable attributes are filled in from the ancestors of the page.
func Inherit(r pdf.Getter, page pdf.Dict) (pdf.Dict, error) {
	res := make(pdf.Dict, len(page)+len(Inheritable))
	for key, val := range page {
		res[key] = val
	}

	var missing []pdf.Name
	for _, name := range Inheritable {
		if res[name] == nil {
			missing = append(missing, name)
		}
	}

	parent := page["Parent"]
	seen := map[pdf.Reference]bool{}
	for depth := 0; len(missing) > 0 && parent != nil; depth++ {
		if ref, ok := parent.(pdf.Reference); ok {
			if seen[ref] {
				return nil, errInvalidPageTree
			}
			seen[ref] = true
		}
		if depth >= maxInheritDepth {
			return nil, errInvalidPageTree
		}

		node, err := pdf.GetDict(r, parent)
		if err != nil {
			return nil, err
		}

		k := 0
		for _, name := range missing {
			if val := node[name]; val != nil {
				res[name] = val
			} else {
				missing[k] = name
				k++
			}
		}
		missing = missing[:k]

		parent = node["Parent"]
	}

	return res, nil
}
