package api

import (
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
)

func TestFormSetReplaces(t *testing.T) {
	f := NewForm().Set("title", "a").Set("title", "b")
	if v, _ := f.Value("title"); v != "b" {
		t.Errorf("title = %q, want b", v)
	}
	if len(f.Names()) != 1 {
		t.Errorf("Names = %v, want one entry", f.Names())
	}
}

func TestFormSetBool(t *testing.T) {
	f := NewForm().SetBool("on", true).SetBool("off", false)
	if v, _ := f.Value("on"); v != "1" {
		t.Errorf("on = %q", v)
	}
	if v, _ := f.Value("off"); v != "0" {
		t.Errorf("off = %q", v)
	}
}

func TestIndexedName(t *testing.T) {
	if got := IndexedName("features", 2, "text_en"); got != "features[2][text_en]" {
		t.Errorf("IndexedName = %q", got)
	}
}

func TestFormEncode(t *testing.T) {
	f := NewForm().
		Set("title", "Summer cut").
		SetIndexed("features", 0, "text_en", "Fade").
		Override(http.MethodPut).
		Attach("desktop_image", `a"b.png`, "image/png", []byte("PNGDATA"))

	if !f.HasFile("desktop_image") || f.HasFile("mobile_image") {
		t.Error("HasFile reports wrong fields")
	}

	body, contentType, err := f.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "multipart/form-data" {
		t.Fatalf("content type = %q (%v)", contentType, err)
	}

	r := multipart.NewReader(body, params["boundary"])
	got := map[string]string{}
	var fileType, fileName string
	for {
		part, err := r.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextPart: %v", err)
		}
		data, _ := io.ReadAll(part)
		if part.FileName() != "" {
			fileType = part.Header.Get("Content-Type")
			fileName = part.FileName()
		}
		got[part.FormName()] = string(data)
	}

	want := map[string]string{
		"title":                "Summer cut",
		"features[0][text_en]": "Fade",
		"_method":              "PUT",
		"desktop_image":        "PNGDATA",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
	if fileType != "image/png" {
		t.Errorf("file Content-Type = %q", fileType)
	}
	if !strings.Contains(fileName, "b.png") {
		t.Errorf("file name = %q", fileName)
	}
}
