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
	"errors"
	"fmt"
)

// Getter reads indirect objects.
type Getter interface {
	Get(Reference) (Object, error)
}

// Putter allocates and writes indirect objects.
type Putter interface {
	Alloc() Reference
	Put(ref Reference, obj Object) error
}

// Resolve resolves references to indirect objects.
//
// If obj is a [Reference], the function reads the corresponding object from
// the file and returns the result.  If obj is not a [Reference], it is
// returned unchanged.  The function recursively follows chains of references
// until it resolves to a non-reference object.
//
// If a reference loop is encountered, the function returns an error of type
// [MalformedFileError].
func Resolve(r Getter, obj Object) (Object, error) {
	origObj := obj

	count := 0
	for {
		ref, isReference := obj.(Reference)
		if !isReference {
			break
		}
		count++
		if count > 16 {
			return nil, &MalformedFileError{
				Err: errors.New("too many levels of indirection"),
				Loc: []string{"object " + origObj.(Reference).String()},
			}
		}

		var err error
		obj, err = r.Get(ref)
		if err != nil {
			return nil, err
		}
	}

	return obj, nil
}

func resolveAndCast[T Object](r Getter, obj Object) (x T, err error) {
	obj, err = Resolve(r, obj)
	if err != nil {
		return x, err
	}

	if obj == nil {
		return x, nil
	}

	var isCorrectType bool
	x, isCorrectType = obj.(T)
	if isCorrectType {
		return x, nil
	}

	return x, &MalformedFileError{
		Err: fmt.Errorf("expected %T but got %T", x, obj),
	}
}

// Helper functions for getting objects of a specific type.  Each of these
// functions calls Resolve on the object before attempting to convert it to the
// desired type.  If the object is `null`, a zero object is returned without
// error.  If the object is of the wrong type, an error is returned.
//
// The signature of these functions is
//
//	func GetT(r Getter, obj Object) (x T, err error)
//
// where T is the type of the object to be returned.
var (
	GetArray = resolveAndCast[Array]
	GetBool  = resolveAndCast[Bool]
	GetDict  = resolveAndCast[Dict]
	GetInt   = resolveAndCast[Integer]
	GetName  = resolveAndCast[Name]
	GetReal  = resolveAndCast[Real]
	GetRef   = resolveRef
)

func resolveRef(_ Getter, obj Object) (Reference, error) {
	ref, ok := obj.(Reference)
	if !ok && obj != nil {
		return 0, &MalformedFileError{
			Err: fmt.Errorf("expected reference but got %T", obj),
		}
	}
	return ref, nil
}

// GetNumber resolves references and converts Integer and Real objects to a
// [Number].  A missing (null) object is reported as an error.
func GetNumber(r Getter, obj Object) (Number, error) {
	obj, err := Resolve(r, obj)
	if err != nil {
		return 0, err
	}
	switch x := obj.(type) {
	case Integer:
		return Number(x), nil
	case Real:
		return Number(x), nil
	case Number:
		return x, nil
	default:
		return 0, &MalformedFileError{
			Err: fmt.Errorf("expected number but got %T", obj),
		}
	}
}

// GetOptionalNumber is like [GetNumber], but returns ok=false instead of an
// error if the object is null.
func GetOptionalNumber(r Getter, obj Object) (x Number, ok bool, err error) {
	obj, err = Resolve(r, obj)
	if err != nil || obj == nil {
		return 0, false, err
	}
	x, err = GetNumber(r, obj)
	if err != nil {
		return 0, false, err
	}
	return x, true, nil
}
