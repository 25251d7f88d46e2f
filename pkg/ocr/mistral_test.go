package ocr

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestExtract(t *testing.T) {
	var uploaded, purpose, auth string
	var ocrBody map[string]interface{}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/files", func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		purpose = r.FormValue("purpose")
		f, _, err := r.FormFile("file")
		if err == nil {
			data, _ := io.ReadAll(f)
			uploaded = string(data)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"file-1","purpose":"ocr"}`))
	})
	mux.HandleFunc("/v1/files/file-1/url", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"url":"https://files.example.com/file-1"}`))
	})
	mux.HandleFunc("/v1/ocr", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&ocrBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"pages":[{"index":0,"markdown":"# Jane Doe\nEngineer"}],"model":"mistral-ocr-latest"}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewMistralClient("test-key", 0)
	c.client.SetBaseURL(srv.URL)

	pages, err := c.Extract(context.Background(), "resume.pdf", strings.NewReader("%PDF-1.4"))

	assert.Equal(t, nil, err)
	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, "ocr", purpose)
	assert.Equal(t, "%PDF-1.4", uploaded)
	assert.Equal(t, "mistral-ocr-latest", ocrBody["model"])
	assert.Equal(t, 1, len(pages))
	assert.Equal(t, "# Jane Doe\nEngineer", pages[0].Markdown)
}

func TestExtractUploadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Unauthorized"}`))
	}))
	defer srv.Close()

	c := NewMistralClient("bad-key", 0)
	c.client.SetBaseURL(srv.URL)

	_, err := c.Extract(context.Background(), "resume.pdf", strings.NewReader("%PDF-1.4"))

	assert.NotEqual(t, nil, err)
}
