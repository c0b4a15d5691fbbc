// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package forms

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"
	"mime/multipart"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder

	"barbershop/internal/api"
)

const (
	// previewMaxWidth is the widest preview embedded in a page.
	previewMaxWidth = 480

	// previewQuality is the JPEG quality for downscaled previews.
	previewQuality = 80

	// maxImagePixels caps decoded dimensions to prevent memory bombs.
	maxImagePixels = 50_000_000
)

var (
	rasterTypes = []string{"image/jpeg", "image/png", "image/webp"}
	iconTypes   = []string{"image/jpeg", "image/png", "image/webp", "image/gif", "image/svg+xml"}
)

// thumbableTypes are raster types that can be downscaled for previews.
var thumbableTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Rule is the accepted shape of one upload field.
type Rule struct {
	Name     string
	Label    string
	MaxBytes int64
	Types    []string
}

// Upload rules per field.
var (
	BannerImageRule  = Rule{Name: "banner_image", Label: "Banner image", MaxBytes: 5 << 20, Types: rasterTypes}
	AboutImageRule   = Rule{Name: "about_image", Label: "Section image", MaxBytes: 5 << 20, Types: rasterTypes}
	SectionIconRule  = Rule{Name: "section_icon", Label: "Feature icon", MaxBytes: 2 << 20, Types: iconTypes}
	ProfilePhotoRule = Rule{Name: "profile_photo", Label: "Profile photo", MaxBytes: 2 << 20, Types: rasterTypes}
	FooterLogoRule   = Rule{Name: "footer_logo", Label: "Logo", MaxBytes: 2 << 20, Types: iconTypes}
)

var rules = map[string]Rule{}

func init() {
	for _, r := range []Rule{BannerImageRule, AboutImageRule, SectionIconRule, ProfilePhotoRule, FooterLogoRule} {
		rules[r.Name] = r
	}
}

// RuleByName looks up an upload rule, for the preview endpoint.
func RuleByName(name string) (Rule, bool) {
	r, ok := rules[name]
	return r, ok
}

// typeNames renders the accepted types as short labels (JPEG, PNG, SVG).
func (r Rule) typeNames() string {
	names := make([]string, len(r.Types))
	for i, t := range r.Types {
		sub := t[strings.Index(t, "/")+1:]
		sub, _, _ = strings.Cut(sub, "+")
		names[i] = strings.ToUpper(sub)
	}
	return strings.Join(names, ", ")
}

// accepts returns the allowed type matching mt, if any.
func (r Rule) accepts(mt *mimetype.MIME) (string, bool) {
	for _, t := range r.Types {
		if mt.Is(t) {
			return t, true
		}
	}
	return "", false
}

// Upload is a file that passed its rule and waits to be sent on submit.
type Upload struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte

	preview string
}

// Size returns the payload size in bytes.
func (u *Upload) Size() int64 {
	return int64(len(u.Data))
}

// HumanSize returns the size formatted for display (e.g. "1.2 MB").
func (u *Upload) HumanSize() string {
	return humanize.Bytes(uint64(len(u.Data)))
}

// DataURL encodes the full payload as a data: URL. It is what the hidden
// field carries so the file survives a validation re-render.
func (u *Upload) DataURL() string {
	return "data:" + u.ContentType + ";base64," + base64.StdEncoding.EncodeToString(u.Data)
}

// Preview returns a data URL suitable for an <img> tag. Large raster images
// are downscaled to previewMaxWidth; anything else is embedded as-is.
func (u *Upload) Preview() string {
	if u.preview != "" {
		return u.preview
	}
	u.preview = u.DataURL()
	if thumbableTypes[u.ContentType] {
		thumb, err := thumbnail(u.Data, previewMaxWidth)
		if err == nil && thumb != nil {
			u.preview = "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(thumb)
		}
	}
	return u.preview
}

// Attach adds the upload to an API form under name.
func (u *Upload) Attach(form *api.Form, name string) {
	form.Attach(name, u.Filename, u.ContentType, u.Data)
}

// ReadUpload validates a submitted file against rule and reads it. The size
// ceiling is checked against the header before the file is opened.
func ReadUpload(field string, fh *multipart.FileHeader, rule Rule) (*Upload, error) {
	if fh.Size > rule.MaxBytes {
		return nil, tooLarge(field, rule, fh.Size)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, rule.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", field, err)
	}
	return check(field, fh.Filename, data, rule)
}

// ParseDataURL decodes a base64 data: URL into its MIME type and bytes.
func ParseDataURL(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, errors.New("not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errors.New("data URL has no payload")
	}
	contentType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, errors.New("data URL is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data URL: %w", err)
	}
	return contentType, data, nil
}

// UploadFromDataURL restores an upload carried in a hidden field. The bytes
// are checked against rule again; the declared type is not trusted.
func UploadFromDataURL(field, filename, dataURL string, rule Rule) (*Upload, error) {
	_, data, err := ParseDataURL(dataURL)
	if err != nil {
		return nil, fieldError(field, "%s could not be read, please choose it again", rule.Label)
	}
	return check(field, filename, data, rule)
}

// check applies rule to a payload already in memory.
func check(field, filename string, data []byte, rule Rule) (*Upload, error) {
	if int64(len(data)) > rule.MaxBytes {
		return nil, tooLarge(field, rule, int64(len(data)))
	}
	if len(data) == 0 {
		return nil, fieldError(field, "%s is empty", rule.Label)
	}
	contentType, ok := rule.accepts(mimetype.Detect(data))
	if !ok {
		return nil, fieldError(field, "%s must be one of %s", rule.Label, rule.typeNames())
	}
	if filename == "" {
		filename = field
	}
	return &Upload{Field: field, Filename: filename, ContentType: contentType, Data: data}, nil
}

func tooLarge(field string, rule Rule, size int64) *FieldError {
	return fieldError(field, "%s must be %s or smaller (this file is %s)",
		rule.Label, humanize.IBytes(uint64(rule.MaxBytes)), humanize.IBytes(uint64(size)))
}

// thumbnail downscales an image to maxWidth, preserving aspect ratio, and
// encodes it as JPEG. It returns nil if the image is already narrow enough.
func thumbnail(data []byte, maxWidth int) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxImagePixels {
		return nil, fmt.Errorf("image too large: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Width <= maxWidth {
		return nil, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	ratio := float64(maxWidth) / float64(bounds.Dx())
	height := max(1, int(float64(bounds.Dy())*ratio))

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: previewQuality}); err != nil {
		return nil, fmt.Errorf("encode preview: %w", err)
	}
	return buf.Bytes(), nil
}
