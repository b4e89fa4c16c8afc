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
	"errors"

	"seehuhn.de/go/pdflink/pdf"
)

// maxDegree is the maximal number of kids of a page tree node.
const maxDegree = 16

// Writer collects page objects and writes a balanced page tree.
type Writer struct {
	Out pdf.Putter

	// Attributes are added to the root node of the tree, where they
	// are inherited by all pages.
	Attributes pdf.Dict

	refs     []pdf.Reference
	dicts    []pdf.Dict
	isClosed bool
}

// NewWriter creates a new page tree which writes its nodes using w.
func NewWriter(w pdf.Putter) *Writer {
	return &Writer{Out: w}
}

// AppendPage adds a page to the tree.  The page dictionary is written when
// the tree is closed, since its /Parent entry is only known then.
func (w *Writer) AppendPage(ref pdf.Reference, dict pdf.Dict) error {
	if w.isClosed {
		return errClosed
	}
	w.refs = append(w.refs, ref)
	w.dicts = append(w.dicts, dict)
	return nil
}

type node struct {
	ref   pdf.Reference
	dict  pdf.Dict
	count int
}

// Close writes all pages and the intermediate nodes of the tree.
// The reference of the root node is returned.
func (w *Writer) Close() (pdf.Reference, error) {
	if w.isClosed {
		return 0, errClosed
	}
	w.isClosed = true

	level := make([]*node, len(w.refs))
	for i, ref := range w.refs {
		level[i] = &node{ref: ref, dict: w.dicts[i], count: 1}
	}

	var out []*node
	for {
		var next []*node
		for start := 0; start < len(level); start += maxDegree {
			end := min(start+maxDegree, len(level))
			parent := &node{
				ref:  w.Out.Alloc(),
				dict: pdf.Dict{"Type": pdf.Name("Pages")},
			}
			kids := make(pdf.Array, 0, end-start)
			for _, kid := range level[start:end] {
				kid.dict["Parent"] = parent.ref
				kids = append(kids, kid.ref)
				parent.count += kid.count
				out = append(out, kid)
			}
			parent.dict["Kids"] = kids
			parent.dict["Count"] = pdf.Integer(parent.count)
			next = append(next, parent)
		}
		if len(next) == 0 {
			next = []*node{{
				ref: w.Out.Alloc(),
				dict: pdf.Dict{
					"Type":  pdf.Name("Pages"),
					"Kids":  pdf.Array{},
					"Count": pdf.Integer(0),
				},
			}}
		}
		level = next
		if len(level) == 1 {
			break
		}
	}

	root := level[0]
	for key, val := range w.Attributes {
		root.dict[key] = val
	}
	out = append(out, root)

	for _, n := range out {
		err := w.Out.Put(n.ref, n.dict)
		if err != nil {
			return 0, err
		}
	}
	return root.ref, nil
}

var errClosed = errors.New("page tree is closed")
