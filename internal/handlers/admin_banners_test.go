// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"barbershop/internal/store"
)

func TestBannersList_RendersItemsAndPager(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("GET /admin/banners", http.StatusOK, `{"data":[
		{"id":1,"title":"Summer sale","is_active":true},
		{"id":2,"title":"Beard week","is_active":false}
	],"meta":{"current_page":1,"last_page":2,"per_page":2,"total":3}}`)

	req := adminRequest(httptest.NewRequest(http.MethodGet, "/admin/banners", nil))
	rec := httptest.NewRecorder()
	env.Admin.BannersList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("BannersList: got status %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, want := range []string{"Summer sale", "Beard week", "/admin/banners/1/edit", "page=2"} {
		if !strings.Contains(body, want) {
			t.Errorf("BannersList body missing %q", want)
		}
	}
}

func TestBannerNew_Returns200(t *testing.T) {
	env := newTestEnv(t)

	req := adminRequest(httptest.NewRequest(http.MethodGet, "/admin/banners/new", nil))
	rec := httptest.NewRecorder()
	env.Admin.BannerNew(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("BannerNew: got status %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "New banner") {
		t.Error("BannerNew: missing form title")
	}
}

func TestBannerCreate_ValidationBlocksSave(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{
			name:   "missing title",
			fields: map[string]string{"title": "", "is_active": "1"},
			want:   "Banner title is required",
		},
		{
			name:   "invalid button url",
			fields: map[string]string{"title": "Summer sale", "button_text_en": "Book", "button_url": "not a url"},
			want:   "Button URL must be a valid URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.Backend.reply("POST /admin/banners", http.StatusCreated, `{"data":{"id":5}}`)

			files := map[string]upload{"desktop_image": {name: "hero.png", data: pngBytes(t)}}
			req := adminRequest(multipartRequest(t, http.MethodPost, "/admin/banners", tt.fields, files))
			rec := httptest.NewRecorder()
			env.Admin.BannerCreate(rec, req)

			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Errorf("body missing %q", tt.want)
			}
			if n := env.Backend.called("POST /admin/banners"); n != 0 {
				t.Errorf("backend called %d times, want 0", n)
			}
			if len(env.Activity.all()) != 0 {
				t.Error("activity recorded for a rejected form")
			}
		})
	}
}

func TestBannerCreate_KeepsInputAfterError(t *testing.T) {
	env := newTestEnv(t)

	fields := map[string]string{"title": "", "button_text_en": "Book now", "button_url": "https://barber.test/book"}
	files := map[string]upload{"desktop_image": {name: "hero.png", data: pngBytes(t)}}
	req := adminRequest(multipartRequest(t, http.MethodPost, "/admin/banners", fields, files))
	rec := httptest.NewRecorder()
	env.Admin.BannerCreate(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "Book now") || !strings.Contains(body, "https://barber.test/book") {
		t.Error("re-rendered form lost the submitted values")
	}
	if !strings.Contains(body, "desktop_image_preview") {
		t.Error("re-rendered form lost the chosen image")
	}
}

func TestBannerCreate_OversizedImageRejected(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("POST /admin/banners", http.StatusCreated, `{"data":{"id":5}}`)

	big := append(pngBytes(t), bytes.Repeat([]byte{0}, 5<<20)...)
	files := map[string]upload{"desktop_image": {name: "huge.png", data: big}}
	req := adminRequest(multipartRequest(t, http.MethodPost, "/admin/banners", map[string]string{"title": "Huge"}, files))
	rec := httptest.NewRecorder()
	env.Admin.BannerCreate(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if !strings.Contains(rec.Body.String(), "or smaller") {
		t.Error("body missing size limit message")
	}
	if env.Backend.called("POST /admin/banners") != 0 {
		t.Error("oversized image reached the backend")
	}
}

func TestBannerCreate_SuccessRedirectsAndRecords(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("POST /admin/banners", http.StatusCreated, `{"data":{"id":5,"title":"Summer sale","is_active":true}}`)

	fields := map[string]string{"title": "Summer sale", "is_active": "1", "sort_order": "2"}
	files := map[string]upload{"desktop_image": {name: "hero.png", data: pngBytes(t)}}
	req := adminRequest(multipartRequest(t, http.MethodPost, "/admin/banners", fields, files))
	rec := httptest.NewRecorder()
	env.Admin.BannerCreate(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusSeeOther, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/banners" {
		t.Errorf("Location = %q, want /admin/banners", loc)
	}
	if f := flashCookie(rec); f != "success|Banner saved." {
		t.Errorf("flash = %q", f)
	}

	sent := env.Backend.form("POST /admin/banners")
	if got := sent["title"]; len(got) != 1 || got[0] != "Summer sale" {
		t.Errorf("backend title = %v", got)
	}
	if got := sent["sort_order"]; len(got) != 1 || got[0] != "2" {
		t.Errorf("backend sort_order = %v", got)
	}

	acts := env.Activity.all()
	if len(acts) != 1 {
		t.Fatalf("activity entries = %d, want 1", len(acts))
	}
	if a := acts[0]; a.Action != store.ActionCreate || a.EntityID != "5" || a.Actor != "admin@barber.test" {
		t.Errorf("activity = %+v", a)
	}
}

func TestBannerCreate_BackendValidationShownInline(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("POST /admin/banners", http.StatusUnprocessableEntity,
		`{"message":"The given data was invalid.","errors":{"title":["The title has already been taken."]}}`)

	files := map[string]upload{"desktop_image": {name: "hero.png", data: pngBytes(t)}}
	req := adminRequest(multipartRequest(t, http.MethodPost, "/admin/banners", map[string]string{"title": "Dup"}, files))
	rec := httptest.NewRecorder()
	env.Admin.BannerCreate(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if !strings.Contains(rec.Body.String(), "already been taken") {
		t.Error("body missing backend validation message")
	}
}

func TestBannerUpdate_KeepsStoredImage(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("GET /admin/banners/{id}", http.StatusOK, `{"data":{"id":7,"title":"Old","desktop_image":"https://cdn.test/old.jpg","is_active":true}}`)
	env.Backend.reply("POST /admin/banners/{id}", http.StatusOK, `{"data":{"id":7,"title":"New"}}`)

	req := multipartRequest(t, http.MethodPost, "/admin/banners/7", map[string]string{"title": "New", "is_active": "1"}, nil)
	req = withChiURLParam(adminRequest(req), "id", "7")
	rec := httptest.NewRecorder()
	env.Admin.BannerUpdate(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusSeeOther, rec.Body.String())
	}
	if got := env.Backend.form("POST /admin/banners/{id}")["_method"]; len(got) != 1 || got[0] != http.MethodPut {
		t.Errorf("_method = %v, want PUT", got)
	}
}

func TestBannerToggle_FlipsActiveState(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("GET /admin/banners/{id}", http.StatusOK, `{"data":{"id":7,"title":"Old","desktop_image":"https://cdn.test/old.jpg","is_active":true}}`)
	env.Backend.reply("POST /admin/banners/{id}", http.StatusOK, `{"data":{"id":7}}`)

	req := withChiURLParam(adminRequest(httptest.NewRequest(http.MethodPost, "/admin/banners/7/toggle", nil)), "id", "7")
	rec := httptest.NewRecorder()
	env.Admin.BannerToggle(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := env.Backend.form("POST /admin/banners/{id}")["is_active"]; len(got) != 1 || got[0] != "0" {
		t.Errorf("is_active = %v, want 0", got)
	}
	if f := flashCookie(rec); f != "success|Banner deactivated." {
		t.Errorf("flash = %q", f)
	}
}

func TestBannerDelete(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("DELETE /admin/banners/{id}", http.StatusNoContent, ``)

	req := withChiURLParam(adminRequest(httptest.NewRequest(http.MethodPost, "/admin/banners/7/delete", nil)), "id", "7")
	rec := httptest.NewRecorder()
	env.Admin.BannerDelete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if env.Backend.called("DELETE /admin/banners/{id}") != 1 {
		t.Error("backend delete not called")
	}
	acts := env.Activity.all()
	if len(acts) != 1 || acts[0].Action != store.ActionDelete {
		t.Errorf("activity = %+v", acts)
	}
}

func TestBannerDelete_FailureFlashesError(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("DELETE /admin/banners/{id}", http.StatusInternalServerError, `{"message":"Database offline"}`)

	req := withChiURLParam(adminRequest(httptest.NewRequest(http.MethodPost, "/admin/banners/7/delete", nil)), "id", "7")
	rec := httptest.NewRecorder()
	env.Admin.BannerDelete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if f := flashCookie(rec); !strings.HasPrefix(f, "error|") {
		t.Errorf("flash = %q, want an error flash", f)
	}
	if len(env.Activity.all()) != 0 {
		t.Error("failed delete was recorded")
	}
}
