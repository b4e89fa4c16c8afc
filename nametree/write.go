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
	"iter"

	"seehuhn.de/go/pdflink/pdf"
)

// maxChildren is the maximum number of children of a node written by
// [Write].
const maxChildren = 32

type nodeInfo struct {
	ref            pdf.Reference
	minKey, maxKey string
}

// Write creates a name tree.
// The iterator data provides the key-value pairs.  The keys must be
// returned in sorted order, and must not contain duplicates.
// The return value is the reference to the root of the tree.
func Write(w pdf.Putter, data iter.Seq2[string, pdf.Object]) (pdf.Reference, error) {
	var leaves []nodeInfo
	var names pdf.Array
	var first, last string
	hasEntries := false

	flush := func() error {
		ref := w.Alloc()
		leaves = append(leaves, nodeInfo{ref: ref, minKey: first, maxKey: last})
		node := pdf.Dict{
			"Names":  names,
			"Limits": pdf.Array{pdf.String(first), pdf.String(last)},
		}
		names = nil
		return w.Put(ref, node)
	}

	for key, value := range data {
		if hasEntries && key <= last {
			return 0, errNotSorted
		}
		if len(names) == 0 {
			first = key
		}
		last = key
		hasEntries = true

		names = append(names, pdf.String(key), value)
		if len(names) >= 2*maxChildren {
			if err := flush(); err != nil {
				return 0, err
			}
		}
	}

	// a small tree consists of a single root node
	if len(leaves) == 0 {
		ref := w.Alloc()
		if names == nil {
			names = pdf.Array{}
		}
		return ref, w.Put(ref, pdf.Dict{"Names": names})
	}
	if len(names) > 0 {
		if err := flush(); err != nil {
			return 0, err
		}
	}

	level := leaves
	for {
		var next []nodeInfo
		for start := 0; start < len(level); start += maxChildren {
			end := min(start+maxChildren, len(level))
			children := level[start:end]

			kids := make(pdf.Array, len(children))
			for i, child := range children {
				kids[i] = child.ref
			}
			info := nodeInfo{
				ref:    w.Alloc(),
				minKey: children[0].minKey,
				maxKey: children[len(children)-1].maxKey,
			}
			node := pdf.Dict{"Kids": kids}
			if len(level) > maxChildren {
				node["Limits"] = pdf.Array{pdf.String(info.minKey), pdf.String(info.maxKey)}
			}
			if err := w.Put(info.ref, node); err != nil {
				return 0, err
			}
			next = append(next, info)
		}
		if len(next) == 1 {
			return next[0].ref, nil
		}
		level = next
	}
}

var errNotSorted = errors.New("keys must be in sorted order")
