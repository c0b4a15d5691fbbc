// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package forms

import (
	"context"
	"strconv"

	"barbershop/internal/api"
)

// Image is an image field of a draft: the URL already stored by the
// backend, and an optional replacement waiting to be sent.
type Image struct {
	URL    string
	Upload *Upload
}

// Src is what the form shows: the pending replacement if any, else the
// stored URL.
func (i Image) Src() string {
	if i.Upload != nil {
		return i.Upload.Preview()
	}
	return i.URL
}

// IsZero reports whether the field has neither a stored nor a new image.
func (i Image) IsZero() bool {
	return i.URL == "" && i.Upload == nil
}

// attach adds the pending upload, if any, to form under name.
func (i Image) attach(form *api.Form, name string) {
	if i.Upload != nil {
		i.Upload.Attach(form, name)
	}
}

// bindImage replaces img.Upload with the submission's file for field. The
// stored URL is kept so the form can fall back to it.
func bindImage(s *Submission, img *Image, field string, rule Rule) error {
	up, err := s.Upload(field, rule)
	if err != nil {
		return err
	}
	if up != nil {
		img.Upload = up
	}
	return nil
}

// submittable is satisfied by every draft.
type submittable interface {
	Validate() error
	Payload() *api.Form
}

// submit validates d and sends it through create or update depending on
// whether id is set. Nothing is sent when validation fails.
func submit[T any](
	ctx context.Context,
	d submittable,
	id string,
	create func(context.Context, *api.Form) (*T, error),
	update func(context.Context, string, *api.Form) (*T, error),
) (*T, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	form := d.Payload()
	if id == "" {
		if create == nil {
			return nil, ErrUnsupported
		}
		return create(ctx, form)
	}
	return update(ctx, id, form)
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
