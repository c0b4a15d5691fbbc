// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"barbershop/internal/forms"
)

// previewMemory is how much of a preview upload is kept in memory.
const previewMemory = 8 << 20

// UploadPreview checks a file chosen in an edit form against the rule of
// its field and returns a preview, so the form can show the image and any
// problem before anything is saved. Nothing is stored.
func (a *Admin) UploadPreview(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, forms.MaxRequestSize)
	if err := r.ParseMultipartForm(previewMemory); err != nil {
		writeUploadError(w, "File too large.", http.StatusRequestEntityTooLarge)
		return
	}
	defer r.MultipartForm.RemoveAll()

	rule, ok := forms.RuleByName(r.FormValue("rule"))
	if !ok {
		writeUploadError(w, "Unknown upload field.", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		writeUploadError(w, "No file provided.", http.StatusBadRequest)
		return
	}

	up, err := forms.ReadUpload("file", files[0], rule)
	if err != nil {
		if fe, ok := forms.AsFieldError(err); ok {
			writeUploadError(w, fe.Message, http.StatusUnprocessableEntity)
			return
		}
		slog.Error("read upload failed", "rule", rule.Name, "error", err)
		writeUploadError(w, "The file could not be read.", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"preview":  up.Preview(),
		"filename": up.Filename,
		"size":     up.HumanSize(),
		"type":     up.ContentType,
	})
}

// writeUploadError sends a JSON error response for the preview endpoint.
func writeUploadError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
