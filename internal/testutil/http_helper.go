// Package testutil provides utility functions for testing HTTP handlers.
package testutil

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// AdminCookie is the marker an authorized admin request carries.
var AdminCookie = &http.Cookie{Name: "adminAuth", Value: "1"}

// MakeFormRequest sends an urlencoded form request, optionally carrying the
// admin marker.
func MakeFormRequest(r *gin.Engine, method, endpoint string, form url.Values, asAdmin bool) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, endpoint, strings.NewReader(form.Encode()))
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if asAdmin {
		req.AddCookie(AdminCookie)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// FilePart describes an attachment for MakeMultipartRequest.
type FilePart struct {
	Field       string
	Name        string
	ContentType string
	Content     []byte
}

// MakeMultipartRequest sends a multipart form request with optional file
// attachment, the shape the public apply form produces.
func MakeMultipartRequest(t *testing.T, r *gin.Engine, endpoint string, fields map[string]string, file *FilePart) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field: %s", err)
		}
	}
	if file != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Name))
		header.Set("Content-Type", file.ContentType)
		part, err := w.CreatePart(header)
		if err != nil {
			t.Fatalf("failed to create file part: %s", err)
		}
		if _, err := part.Write(file.Content); err != nil {
			t.Fatalf("failed to write file part: %s", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %s", err)
	}

	req, _ := http.NewRequest(http.MethodPost, endpoint, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
