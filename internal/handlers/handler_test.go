// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// The backend API is replaced by an httptest server; tests that need
// Valkey are skipped when it is unavailable.
package handlers

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"barbershop/internal/api"
	"barbershop/internal/i18n"
	"barbershop/internal/middleware"
	"barbershop/internal/render"
	"barbershop/internal/session"
	"barbershop/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		for _, pattern := range []string{"session:*", "page:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// backend is a fake of the external REST API. Routes use ServeMux
// patterns ("GET /admin/banners/{id}"); unmatched requests get a 404.
type backend struct {
	mux *http.ServeMux
	srv *httptest.Server

	mu    sync.Mutex
	calls map[string]int
	forms map[string]map[string][]string
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{
		mux:   http.NewServeMux(),
		calls: map[string]int{},
		forms: map[string]map[string][]string{},
	}
	b.srv = httptest.NewServer(b.mux)
	t.Cleanup(b.srv.Close)
	return b
}

// reply registers a canned JSON response for pattern.
func (b *backend) reply(pattern string, status int, body string) {
	b.handle(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	})
}

// handle registers h for pattern and records each call along with the
// submitted form values.
func (b *backend) handle(pattern string, h http.HandlerFunc) {
	b.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
			r.ParseMultipartForm(32 << 20)
		}
		b.mu.Lock()
		b.calls[pattern]++
		if r.MultipartForm != nil {
			b.forms[pattern] = r.MultipartForm.Value
		}
		b.mu.Unlock()
		h(w, r)
	})
}

func (b *backend) called(pattern string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[pattern]
}

// form returns the multipart values last sent to pattern.
func (b *backend) form(pattern string) map[string][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.forms[pattern]
}

func (b *backend) client() *api.Client {
	return api.New(b.srv.URL, 5*time.Second)
}

// fakeActivity is an in-memory ActivityLog.
type fakeActivity struct {
	mu      sync.Mutex
	entries []store.Activity
}

func (f *fakeActivity) Record(_ context.Context, a store.Activity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, a)
}

func (f *fakeActivity) Recent(_ context.Context, limit int) ([]store.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.Activity, 0, limit)
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.entries[i])
	}
	return out, nil
}

func (f *fakeActivity) all() []store.Activity {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]store.Activity(nil), f.entries...)
}

func testRenderer(t *testing.T) (*render.Renderer, *i18n.Catalog) {
	t.Helper()
	catalog, err := i18n.Default()
	if err != nil {
		t.Fatalf("i18n.Default: %v", err)
	}
	renderer, err := render.New(true, catalog)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return renderer, catalog
}

// testEnv holds the handler groups wired to a fake backend.
type testEnv struct {
	Backend  *backend
	Activity *fakeActivity
	Admin    *Admin
	Auth     *Auth
	Public   *Public
}

// newTestEnv wires the handlers without Valkey: no sessions, no page
// cache.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	b := newBackend(t)
	renderer, catalog := testRenderer(t)
	client := b.client()
	activity := &fakeActivity{}

	return &testEnv{
		Backend:  b,
		Activity: activity,
		Admin:    NewAdmin(renderer, client, nil, nil, activity, 10),
		Auth:     NewAuth(renderer, nil, client),
		Public:   NewPublic(renderer, client, nil, catalog),
	}
}

func testSession() *session.Data {
	return &session.Data{
		Token:       "tok-123",
		Email:       "admin@barber.test",
		DisplayName: "Admin",
	}
}

// adminRequest attaches a signed-in session and its backend token, the
// way LoadSession and APIToken do.
func adminRequest(r *http.Request) *http.Request {
	sess := testSession()
	ctx := context.WithValue(r.Context(), middleware.SessionKey, sess)
	ctx = api.WithToken(ctx, sess.Token)
	return r.WithContext(ctx)
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// upload is one file of a multipart test request.
type upload struct {
	name string
	data []byte
}

// multipartRequest builds a multipart form request. files maps a field
// name to the file sent in it.
func multipartRequest(t *testing.T, method, target string, fields map[string]string, files map[string]upload) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	for field, f := range files {
		fw, err := mw.CreateFormFile(field, f.name)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		fw.Write(f.data)
	}
	mw.Close()

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// pngBytes returns a small valid PNG.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := range 4 {
		for y := range 4 {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// flashCookie returns the decoded flash set on rec, as "type|message".
func flashCookie(rec *httptest.ResponseRecorder) string {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "bs_flash" {
			v, _ := url.QueryUnescape(c.Value)
			return v
		}
	}
	return ""
}
