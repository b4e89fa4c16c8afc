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

package memfile

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdflink/pagetree"
	"seehuhn.de/go/pdflink/pdf"
)

// Op identifies a document operation for fault injection.
type Op int

// These are the operations which can be made to fail.
const (
	OpGet Op = iota + 1
	OpPut
	OpFindPage
)

func (op Op) String() string {
	switch op {
	case OpGet:
		return "get"
	case OpPut:
		return "put"
	case OpFindPage:
		return "find page"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Document is an in-memory PDF document.
//
// Document implements [pdf.Getter] and [pdf.Putter].
type Document struct {
	objects map[pdf.Reference]pdf.Object
	next    uint32
	pages   pdf.Reference

	// Fail, if not nil, is called before every operation.  If it returns
	// an error, the operation fails with this error.
	Fail func(op Op, arg any) error

	// NumPuts counts the successful calls to Put.
	NumPuts int
}

// New creates a document with the given number of pages.  All pages use
// the given media box.
func New(numPages int, mediaBox rect.Rect) (*Document, error) {
	d := &Document{
		objects: make(map[pdf.Reference]pdf.Object),
	}

	box, err := pdf.RectangleObject(mediaBox)
	if err != nil {
		return nil, err
	}

	tree := pagetree.NewWriter(d)
	tree.Attributes = pdf.Dict{"MediaBox": box}
	for range numPages {
		ref := d.Alloc()
		err := tree.AppendPage(ref, pdf.Dict{
			"Type": pdf.Name("Page"),
		})
		if err != nil {
			return nil, err
		}
	}
	d.pages, err = tree.Close()
	if err != nil {
		return nil, err
	}
	d.NumPuts = 0
	return d, nil
}

// Get implements the [pdf.Getter] interface.
func (d *Document) Get(ref pdf.Reference) (pdf.Object, error) {
	if err := d.fail(OpGet, ref); err != nil {
		return nil, err
	}
	return d.objects[ref], nil
}

// Alloc implements the [pdf.Putter] interface.
func (d *Document) Alloc() pdf.Reference {
	d.next++
	return pdf.NewReference(d.next, 0)
}

// Put implements the [pdf.Putter] interface.
func (d *Document) Put(ref pdf.Reference, obj pdf.Object) error {
	if err := d.fail(OpPut, ref); err != nil {
		return err
	}
	if ref == 0 || ref.Number() > d.next {
		return fmt.Errorf("%s: %w", ref, errNotAllocated)
	}
	d.objects[ref] = obj
	d.NumPuts++
	return nil
}

// FindPage returns the reference of the page with the given 0-based index.
func (d *Document) FindPage(index int) (pdf.Reference, error) {
	if err := d.fail(OpFindPage, index); err != nil {
		return 0, err
	}
	return pagetree.GetPage(d, d.pages, index)
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() (int, error) {
	return pagetree.NumPages(d, d.pages)
}

// Pages returns the references of all pages, in order.
func (d *Document) Pages() ([]pdf.Reference, error) {
	return pagetree.FindPages(d, d.pages)
}

// PageDict returns the page dictionary of the page with the given index.
// The returned dictionary can be modified to change the page.
func (d *Document) PageDict(index int) (pdf.Dict, error) {
	ref, err := pagetree.GetPage(d, d.pages, index)
	if err != nil {
		return nil, err
	}
	return pdf.GetDict(d, ref)
}

// SetRotation sets the /Rotate entry of a page.
func (d *Document) SetRotation(index int, rotate int) error {
	dict, err := d.PageDict(index)
	if err != nil {
		return err
	}
	dict["Rotate"] = pdf.Integer(rotate)
	return nil
}

// WriteTo writes all objects of the document to w, in PDF syntax.
// This implements the [io.WriterTo] interface.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	refs := make([]pdf.Reference, 0, len(d.objects))
	for ref := range d.objects {
		refs = append(refs, ref)
	}
	slices.Sort(refs)

	var total int64
	for _, ref := range refs {
		n, err := fmt.Fprintf(w, "%d %d obj\n%s\nendobj\n",
			ref.Number(), ref.Generation(), pdf.Format(d.objects[ref]))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (d *Document) fail(op Op, arg any) error {
	if d.Fail == nil {
		return nil
	}
	return d.Fail(op, arg)
}

// FailAfter returns a function for use in [Document.Fail] which makes
// all operations of type op fail after the first n calls.
func FailAfter(op Op, n int, err error) func(Op, any) error {
	count := 0
	return func(o Op, _ any) error {
		if o != op {
			return nil
		}
		count++
		if count > n {
			return err
		}
		return nil
	}
}

var errNotAllocated = errors.New("object not allocated")
