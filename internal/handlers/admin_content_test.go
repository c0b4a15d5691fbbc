// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"barbershop/internal/store"
)

// --- About us ---

func TestAboutList_Returns200(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("GET /admin/about-us", http.StatusOK, `{"data":[{"id":1,"title_en":"Our story","type":"story","status":"active"}]}`)

	req := adminRequest(httptest.NewRequest(http.MethodGet, "/admin/about", nil))
	rec := httptest.NewRecorder()
	env.Admin.AboutList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("AboutList: status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Our story") {
		t.Error("AboutList: section missing")
	}
}

func TestAboutCreate_RequiresEnglishTitle(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("POST /admin/about-us", http.StatusCreated, `{"data":{"id":4}}`)

	fields := map[string]string{"title_ar": "قصتنا", "description_en": "Since 1998", "type": "story", "status": "active"}
	req := adminRequest(multipartRequest(t, http.MethodPost, "/admin/about", fields, nil))
	rec := httptest.NewRecorder()
	env.Admin.AboutCreate(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Title (English) is required") {
		t.Error("body missing title error")
	}
	if !strings.Contains(body, "قصتنا") {
		t.Error("re-rendered form lost the Arabic title")
	}
	if env.Backend.called("POST /admin/about-us") != 0 {
		t.Error("invalid section reached the backend")
	}
}

func TestAboutCreate_SendsFeatures(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("POST /admin/about-us", http.StatusCreated, `{"data":{"id":4,"title_en":"Our story"}}`)

	fields := map[string]string{
		"title_en":             "Our story",
		"description_en":       "Since 1998",
		"type":                 "story",
		"status":               "active",
		"features[0][text_en]": "Hot towel shave",
		"features[0][text_ar]": "حلاقة بالمنشفة الساخنة",
		"features[1][text_en]": "",
		"features[1][text_ar]": "",
	}
	req := adminRequest(multipartRequest(t, http.MethodPost, "/admin/about", fields, nil))
	rec := httptest.NewRecorder()
	env.Admin.AboutCreate(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusSeeOther, rec.Body.String())
	}
	sent := env.Backend.form("POST /admin/about-us")
	if got := sent["features[0][text_en]"]; len(got) != 1 || got[0] != "Hot towel shave" {
		t.Errorf("features[0][text_en] = %v", got)
	}
	if _, ok := sent["features[1][text_en]"]; ok {
		t.Error("blank feature row was sent")
	}
}

func TestAboutDelete_RecordsActivity(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("DELETE /admin/about-us/{id}", http.StatusOK, `{"success":true}`)

	req := withChiURLParam(adminRequest(httptest.NewRequest(http.MethodDelete, "/admin/about/4", nil)), "id", "4")
	rec := httptest.NewRecorder()
	env.Admin.AboutDelete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	acts := env.Activity.all()
	if len(acts) != 1 || acts[0].Action != store.ActionDelete || acts[0].EntityID != "4" {
		t.Errorf("activity = %+v", acts)
	}
}

// --- Informative sections ---

func TestSectionsList_OffersEditOnly(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("GET /admin/informative-sections", http.StatusOK, `{"data":[{"id":2,"name":"why_us","title_en":"Why us","status":"published"}]}`)

	req := adminRequest(httptest.NewRequest(http.MethodGet, "/admin/sections", nil))
	rec := httptest.NewRecorder()
	env.Admin.SectionsList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("SectionsList: status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "/admin/sections/2/edit") {
		t.Error("edit link missing")
	}
	if strings.Contains(body, "/admin/sections/new") {
		t.Error("sections list offers creation")
	}
}

func TestSectionUpdate(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("GET /admin/informative-sections/{id}", http.StatusOK, `{"data":{"id":2,"name":"why_us","title_en":"Why us","status":"draft"}}`)
	env.Backend.reply("POST /admin/informative-sections/{id}", http.StatusOK, `{"data":{"id":2,"name":"why_us"}}`)

	fields := map[string]string{
		"title_en":              "Why choose us",
		"description_en":        "Three reasons",
		"status":                "published",
		"features[0][name_en]":  "Experienced barbers",
		"features[0][icon_url]": "https://cdn.test/scissors.svg",
	}
	req := multipartRequest(t, http.MethodPost, "/admin/sections/2", fields, nil)
	req = withChiURLParam(adminRequest(req), "id", "2")
	rec := httptest.NewRecorder()
	env.Admin.SectionUpdate(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusSeeOther, rec.Body.String())
	}
	sent := env.Backend.form("POST /admin/informative-sections/{id}")
	if got := sent["status"]; len(got) != 1 || got[0] != "published" {
		t.Errorf("status sent = %v", got)
	}
	if acts := env.Activity.all(); len(acts) != 1 || acts[0].Summary != "why_us" {
		t.Errorf("activity = %+v", acts)
	}
}

func TestSectionUpdate_InvalidStatus(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("GET /admin/informative-sections/{id}", http.StatusOK, `{"data":{"id":2,"title_en":"Why us"}}`)

	fields := map[string]string{"title_en": "Why us", "status": "archived"}
	req := multipartRequest(t, http.MethodPost, "/admin/sections/2", fields, nil)
	req = withChiURLParam(adminRequest(req), "id", "2")
	rec := httptest.NewRecorder()
	env.Admin.SectionUpdate(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if !strings.Contains(rec.Body.String(), "Choose a valid status") {
		t.Error("body missing status error")
	}
}

// --- Footer ---

func TestFooterEdit_MissingFooterGivesEmptyForm(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("GET /admin/footer", http.StatusNotFound, `{"message":"No footer"}`)

	req := adminRequest(httptest.NewRequest(http.MethodGet, "/admin/footer", nil))
	rec := httptest.NewRecorder()
	env.Admin.FooterEdit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("FooterEdit: status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestFooterUpdate(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("GET /admin/footer", http.StatusOK, `{"data":{"about_en":"Old"}}`)
	env.Backend.reply("POST /admin/footer", http.StatusOK, `{"data":{"about_en":"Classic cuts"}}`)

	fields := map[string]string{
		"about_en":                 "Classic cuts",
		"email":                    "hello@barber.test",
		"working_hours[0][day_en]": "Saturday",
		"working_hours[0][hours]":  "09:00 - 21:00",
		"columns[0][title_en]":     "Visit",
		"links[000][column]":       "0",
		"links[000][label_en]":     "Pricing",
		"links[000][url]":          "https://barber.test/pricing",
		"links[001][column]":       "0",
	}
	req := adminRequest(multipartRequest(t, http.MethodPost, "/admin/footer", fields, nil))
	rec := httptest.NewRecorder()
	env.Admin.FooterUpdate(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusSeeOther, rec.Body.String())
	}
	sent := env.Backend.form("POST /admin/footer")
	if got := sent["working_hours[0][hours]"]; len(got) != 1 || got[0] != "09:00 - 21:00" {
		t.Errorf("working hours sent = %v", got)
	}
	if got := sent["footer_links[0][links][0][url]"]; len(got) != 1 || got[0] != "https://barber.test/pricing" {
		t.Errorf("footer link sent = %v", got)
	}
	if _, ok := sent["footer_links[0][links][1][url]"]; ok {
		t.Error("blank link row was sent")
	}
}

func TestFooterUpdate_InvalidEmail(t *testing.T) {
	env := newTestEnv(t)
	env.Backend.reply("GET /admin/footer", http.StatusOK, `{"data":{}}`)

	req := adminRequest(multipartRequest(t, http.MethodPost, "/admin/footer", map[string]string{"email": "hello"}, nil))
	rec := httptest.NewRecorder()
	env.Admin.FooterUpdate(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if env.Backend.called("POST /admin/footer") != 0 {
		t.Error("invalid footer reached the backend")
	}
}
