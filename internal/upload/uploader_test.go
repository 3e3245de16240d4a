package upload

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestUploadForwardsMultipartAndParsesURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if got := r.FormValue("upload_preset"); got != "test-preset" {
			t.Errorf("upload_preset = %q", got)
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		if header.Filename != "photo.jpg" {
			t.Errorf("filename = %q", header.Filename)
		}
		body, _ := io.ReadAll(file)
		if string(body) != "image-bytes" {
			t.Errorf("file body = %q", body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://cdn.example.com/photo.jpg"}`))
	}))
	defer srv.Close()

	u := NewUploader(srv.URL, "test-preset", 5*time.Second)
	url, err := u.Upload(context.Background(), "photo.jpg", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "https://cdn.example.com/photo.jpg" {
		t.Errorf("url = %q", url)
	}
}

func TestUploadSurfacesCDNError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid preset", http.StatusBadRequest)
	}))
	defer srv.Close()

	u := NewUploader(srv.URL, "bad", 5*time.Second)
	_, err := u.Upload(context.Background(), "photo.jpg", strings.NewReader("x"))
	if !errors.Is(err, ErrUploadRejected) {
		t.Fatalf("err = %v, want ErrUploadRejected", err)
	}
}

func TestUploadRejectsMissingSecureURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	u := NewUploader(srv.URL, "p", 5*time.Second)
	_, err := u.Upload(context.Background(), "photo.jpg", strings.NewReader("x"))
	if !errors.Is(err, ErrUploadRejected) {
		t.Fatalf("err = %v, want ErrUploadRejected", err)
	}
}
