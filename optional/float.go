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

package optional

import (
	"math"
	"strconv"
)

// Float represents an optional real number.
//
// A Float never holds NaN: setting a NaN value leaves the Float unset.
// This is used for destination coordinates, where a missing value means
// "keep the current value".
type Float struct {
	isSet bool
	val   float64
}

// NewFloat creates a new Float with the given value.
// If v is NaN, the result is unset.
func NewFloat(v float64) Float {
	var f Float
	f.Set(v)
	return f
}

// Get returns the value and whether it is set.
func (f Float) Get() (float64, bool) {
	return f.val, f.isSet
}

// IsSet reports whether a value is present.
func (f Float) IsSet() bool {
	return f.isSet
}

// Or returns the value if it is set, and def otherwise.
func (f Float) Or(def float64) float64 {
	if !f.isSet {
		return def
	}
	return f.val
}

// OrNaN returns the value if it is set, and NaN otherwise.
func (f Float) OrNaN() float64 {
	return f.Or(math.NaN())
}

// Set sets the value.  Setting NaN clears the value.
func (f *Float) Set(v float64) {
	if math.IsNaN(v) {
		f.Clear()
		return
	}
	f.isSet = true
	f.val = v
}

// Clear clears the value.
func (f *Float) Clear() {
	f.isSet = false
	f.val = 0
}

// Equal compares two Floats for equality.
func (f Float) Equal(other Float) bool {
	return f.isSet == other.isSet && f.val == other.val
}

func (f Float) String() string {
	if !f.isSet {
		return "unset"
	}
	return strconv.FormatFloat(f.val, 'g', -1, 64)
}
