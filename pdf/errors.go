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

package pdf

import (
	"fmt"
	"strings"
)

// Error is the type of errors reported for objects which cannot be
// represented in a PDF file.
type Error string

func (err Error) Error() string {
	return string(err)
}

// Errorf returns an [Error] with a formatted message.
func Errorf(format string, args ...any) error {
	return Error(fmt.Sprintf(format, args...))
}

// MalformedFileError indicates that a PDF object read from a file has an
// unexpected structure.
type MalformedFileError struct {
	Err error
	Loc []string
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if len(err.Loc) > 0 {
		tail = " (" + strings.Join(err.Loc, ", ") + ")"
	}
	return "malformed PDF object" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// Wrap adds location information to an error.  If err is a
// [MalformedFileError], the location is prepended to its location list.
// Otherwise, the error is wrapped using fmt.Errorf.
func Wrap(err error, loc string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*MalformedFileError); ok {
		return &MalformedFileError{
			Err: e.Err,
			Loc: append([]string{loc}, e.Loc...),
		}
	}
	return fmt.Errorf("%s: %w", loc, err)
}
