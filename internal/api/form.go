// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
)

// MethodOverrideField is the form field the backend reads to treat a POST
// as another verb. Updates are sent as POST with _method=PUT because PHP
// backends only parse multipart bodies on POST.
const MethodOverrideField = "_method"

type formField struct {
	name  string
	value string
}

type formFile struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

// Form is an ordered multipart payload. Field order is preserved so the
// encoded body is deterministic.
type Form struct {
	fields []formField
	files  []formFile
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{}
}

// Set stores a text field, replacing any earlier value with the same name.
func (f *Form) Set(name, value string) *Form {
	for i := range f.fields {
		if f.fields[i].name == name {
			f.fields[i].value = value
			return f
		}
	}
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// SetBool stores a boolean as "1" or "0".
func (f *Form) SetBool(name string, v bool) *Form {
	if v {
		return f.Set(name, "1")
	}
	return f.Set(name, "0")
}

// SetIndexed stores a nested array field such as features[0][text_en].
func (f *Form) SetIndexed(prefix string, index int, key, value string) *Form {
	return f.Set(IndexedName(prefix, index, key), value)
}

// Attach adds a file part. Attaching to the same field twice keeps both.
func (f *Form) Attach(field, filename, contentType string, data []byte) *Form {
	f.files = append(f.files, formFile{field: field, filename: filename, contentType: contentType, data: data})
	return f
}

// Override marks the form as a method-overridden request (e.g. PUT).
func (f *Form) Override(method string) *Form {
	return f.Set(MethodOverrideField, method)
}

// Value returns the value of a text field.
func (f *Form) Value(name string) (string, bool) {
	for _, fld := range f.fields {
		if fld.name == name {
			return fld.value, true
		}
	}
	return "", false
}

// Names returns the text field names in insertion order.
func (f *Form) Names() []string {
	names := make([]string, len(f.fields))
	for i, fld := range f.fields {
		names[i] = fld.name
	}
	return names
}

// HasFile reports whether a file was attached under field.
func (f *Form) HasFile(field string) bool {
	for _, file := range f.files {
		if file.field == field {
			return true
		}
	}
	return false
}

// Encode writes the form as multipart/form-data and returns the body with
// its Content-Type header (including the boundary).
func (f *Form) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, fld := range f.fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", fld.name, err)
		}
	}

	for _, file := range f.files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(file.field), escapeQuotes(file.filename)))
		ct := file.contentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", file.field, err)
		}
		if _, err := part.Write(file.data); err != nil {
			return nil, "", fmt.Errorf("write part %s: %w", file.field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// IndexedName builds a bracketed array field name: prefix[index][key].
func IndexedName(prefix string, index int, key string) string {
	return prefix + "[" + strconv.Itoa(index) + "][" + key + "]"
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
