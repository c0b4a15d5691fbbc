// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package forms

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

const (
	// MaxRequestSize bounds an admin form post: every image field at its
	// ceiling plus the hidden previews that may accompany them.
	MaxRequestSize = 48 << 20

	// memoryLimit is how much of a multipart body is kept in memory before
	// spilling file parts to disk.
	memoryLimit = 8 << 20

	// previewSuffix names the hidden field that carries an upload's data URL
	// across a validation re-render.
	previewSuffix = "_preview"

	// filenameSuffix names the hidden field that keeps the original filename.
	filenameSuffix = "_filename"
)

// PreviewField returns the hidden field name holding field's data URL.
func PreviewField(field string) string { return field + previewSuffix }

// FilenameField returns the hidden field name holding field's filename.
func FilenameField(field string) string { return field + filenameSuffix }

// Submission is a parsed admin form post.
type Submission struct {
	r *http.Request
}

// Parse reads the request body as a multipart or URL-encoded form.
func Parse(w http.ResponseWriter, r *http.Request) (*Submission, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestSize)
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		err = r.ParseMultipartForm(memoryLimit)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}
	return &Submission{r: r}, nil
}

func (s *Submission) values() url.Values {
	return s.r.PostForm
}

// Get returns the trimmed value of a field.
func (s *Submission) Get(name string) string {
	return strings.TrimSpace(s.values().Get(name))
}

// Has reports whether the field was submitted at all.
func (s *Submission) Has(name string) bool {
	_, ok := s.values()[name]
	return ok
}

// Bool reads a checkbox. Unchecked boxes are absent from the post.
func (s *Submission) Bool(name string) bool {
	switch strings.ToLower(s.Get(name)) {
	case "on", "1", "true", "yes":
		return true
	}
	return false
}

// Int reads an integer field, returning 0 when blank or malformed.
func (s *Submission) Int(name string) int {
	n, _ := strconv.Atoi(s.Get(name))
	return n
}

// Row is one repeated group of fields, e.g. features[2][text_en].
type Row struct {
	Index  int
	Values map[string]string
}

// Get returns a value of the row.
func (r Row) Get(key string) string {
	return r.Values[key]
}

// blank reports whether every value in the row is empty.
func (r Row) blank() bool {
	for _, v := range r.Values {
		if v != "" {
			return false
		}
	}
	return true
}

// Rows collects prefix[i][key] fields into rows ordered by index. Rows with
// only blank values are dropped, so an empty trailing template row in the
// page does not produce an empty entry.
func (s *Submission) Rows(prefix string, keys ...string) []Row {
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}

	byIndex := map[int]Row{}
	for name, vals := range s.values() {
		idx, key, ok := splitIndexed(name, prefix)
		if !ok || !wanted[key] || len(vals) == 0 {
			continue
		}
		row, exists := byIndex[idx]
		if !exists {
			row = Row{Index: idx, Values: map[string]string{}}
			byIndex[idx] = row
		}
		row.Values[key] = strings.TrimSpace(vals[0])
	}

	rows := make([]Row, 0, len(byIndex))
	for _, row := range byIndex {
		if !row.blank() {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Index < rows[j].Index })
	return rows
}

// RowsWithUpload is Rows that also keeps rows whose only input is a file,
// chosen now or carried in a preview field, under prefix[i][fileKey].
func (s *Submission) RowsWithUpload(prefix, fileKey string, keys ...string) []Row {
	rows := s.Rows(prefix, keys...)
	seen := make(map[int]bool, len(rows))
	for _, row := range rows {
		seen[row.Index] = true
	}
	for _, idx := range s.uploadIndexes(prefix, fileKey) {
		if !seen[idx] {
			seen[idx] = true
			rows = append(rows, Row{Index: idx, Values: map[string]string{}})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Index < rows[j].Index })
	return rows
}

// uploadIndexes lists the indexes i where prefix[i][fileKey] has a
// non-empty file part or a preview data URL.
func (s *Submission) uploadIndexes(prefix, fileKey string) []int {
	var out []int
	match := func(name string) {
		if idx, key, ok := splitIndexed(name, prefix); ok && key == fileKey {
			out = append(out, idx)
		}
	}
	if s.r.MultipartForm != nil {
		for name, files := range s.r.MultipartForm.File {
			if len(files) > 0 && files[0].Size > 0 {
				match(name)
			}
		}
	}
	for name, vals := range s.values() {
		field, ok := strings.CutSuffix(name, previewSuffix)
		if ok && len(vals) > 0 && strings.TrimSpace(vals[0]) != "" {
			match(field)
		}
	}
	return out
}

// splitIndexed parses "prefix[3][key]" into (3, "key").
func splitIndexed(name, prefix string) (int, string, bool) {
	rest, ok := strings.CutPrefix(name, prefix+"[")
	if !ok {
		return 0, "", false
	}
	idxStr, rest, ok := strings.Cut(rest, "][")
	if !ok {
		return 0, "", false
	}
	key, ok := strings.CutSuffix(rest, "]")
	if !ok || key == "" || strings.ContainsAny(key, "[]") {
		return 0, "", false
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 {
		return 0, "", false
	}
	return idx, key, true
}

// Upload returns the file submitted under field, validated against rule.
// When no new file was chosen it falls back to the data URL carried in the
// hidden preview field. A nil upload with a nil error means nothing was
// selected.
func (s *Submission) Upload(field string, rule Rule) (*Upload, error) {
	if s.r.MultipartForm != nil {
		if files := s.r.MultipartForm.File[field]; len(files) > 0 && files[0].Size > 0 {
			return ReadUpload(field, files[0], rule)
		}
	}
	if dataURL := s.Get(PreviewField(field)); dataURL != "" {
		return UploadFromDataURL(field, s.Get(FilenameField(field)), dataURL, rule)
	}
	return nil, nil
}
