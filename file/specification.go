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

package file

import (
	"errors"

	"seehuhn.de/go/pdflink/pdf"
)

// PDF 2.0 sections: 7.11.3 7.11.4

// Specification represents a PDF file specification dictionary.
type Specification struct {
	// NameSpace (optional) specifies the file system to interpret this file
	// specification in. Set to "URL" if FileName contains a URL.
	//
	// This corresponds to the /FS entry in the PDF dictionary.
	NameSpace pdf.Name

	// FileNameUnicode (optional, PDF 1.7) provides a Unicode version of the
	// file name. Components are separated by forward slashes.
	//
	// If FileNameUnicode is present, PDF reader should use this instead of
	// FileName.
	//
	// This corresponds to the /UF entry in the PDF dictionary.
	FileNameUnicode string

	// FileName specifies the file path in platform-independent format.
	// Components are separated by forward slashes.
	//
	// This corresponds to the /F entry in the PDF file specification
	// dictionary.
	FileName string

	// FileNameDOS (optional, deprecated in PDF 2.0) specifies a DOS file name.
	// This is only read, never written.
	FileNameDOS string

	// FileNameMac (optional, deprecated in PDF 2.0) specifies a MacOS
	// file name.  This is only read, never written.
	FileNameMac string

	// FileNameUnix (optional, deprecated in PDF 2.0) specifies a Unix
	// file name.  This is only read, never written.
	FileNameUnix string

	// Description (optional) provides descriptive text for the file
	// specification.
	//
	// This corresponds to the /Desc entry in the PDF dictionary.
	Description string
}

var errNoFileName = errors.New("file specification without file name")

// DecodeSpecification extracts a file specification dictionary from a PDF object.
func DecodeSpecification(r pdf.Getter, obj pdf.Object) (*Specification, error) {
	dict, err := pdf.GetDict(r, obj)
	if err != nil {
		return nil, err
	} else if dict == nil {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("missing file specification dictionary"),
		}
	}

	spec := &Specification{}

	if nameSpace, err := pdf.GetName(r, dict["FS"]); err != nil {
		return nil, err
	} else {
		spec.NameSpace = nameSpace
	}

	if spec.NameSpace == "URL" {
		// URLs are 7-bit ASCII strings, not text strings
		fileName, err := pdf.GetString(r, dict["F"])
		if err != nil {
			return nil, err
		}
		spec.FileName = string(fileName)
	} else if fileName, err := pdf.GetTextString(r, dict["F"]); err != nil {
		return nil, err
	} else {
		spec.FileName = fileName
	}

	if fileNameUnicode, err := pdf.GetTextString(r, dict["UF"]); err != nil {
		return nil, err
	} else {
		spec.FileNameUnicode = fileNameUnicode
	}

	if fileNameDOS, err := pdf.GetString(r, dict["DOS"]); err != nil {
		return nil, err
	} else {
		spec.FileNameDOS = string(fileNameDOS)
	}

	if fileNameMac, err := pdf.GetString(r, dict["Mac"]); err != nil {
		return nil, err
	} else {
		spec.FileNameMac = string(fileNameMac)
	}

	if fileNameUnix, err := pdf.GetString(r, dict["Unix"]); err != nil {
		return nil, err
	} else {
		spec.FileNameUnix = string(fileNameUnix)
	}

	if description, err := pdf.GetTextString(r, dict["Desc"]); err != nil {
		return nil, err
	} else {
		spec.Description = description
	}

	if dict["F"] == nil && dict["UF"] == nil &&
		dict["DOS"] == nil && dict["Mac"] == nil && dict["Unix"] == nil {
		return nil, &pdf.MalformedFileError{Err: errNoFileName}
	}

	return spec, nil
}

// Name returns the best available file name: the Unicode file name if
// present, otherwise the first non-empty one of the platform-independent,
// Unix, DOS and Mac file names.
func (spec *Specification) Name() string {
	for _, name := range []string{
		spec.FileNameUnicode,
		spec.FileName,
		spec.FileNameUnix,
		spec.FileNameDOS,
		spec.FileNameMac,
	} {
		if name != "" {
			return name
		}
	}
	return ""
}

// Encode converts the file specification to a PDF dictionary.
//
// The /F entry is always written, even if the file name is empty.
func (spec *Specification) Encode() (pdf.Dict, error) {
	if spec.FileName == "" && spec.FileNameUnicode != "" {
		return nil, pdf.Errorf("file specification must have F entry")
	}

	dict := pdf.Dict{
		"Type": pdf.Name("Filespec"),
	}

	if spec.NameSpace != "" {
		dict["FS"] = spec.NameSpace
	}

	if spec.NameSpace == "URL" {
		dict["F"] = pdf.String(spec.FileName)
	} else {
		dict["F"] = pdf.TextString(spec.FileName)
	}

	if spec.FileNameUnicode != "" {
		dict["UF"] = pdf.TextString(spec.FileNameUnicode)
	}

	if spec.Description != "" {
		dict["Desc"] = pdf.TextString(spec.Description)
	}

	return dict, nil
}
