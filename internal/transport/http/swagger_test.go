package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestSwaggerDocServesConvertedDocument(t *testing.T) {
	docPath := filepath.Join(t.TempDir(), "swagger.yaml")
	doc := "openapi: 3.0.3\ninfo:\n  title: test\n  version: \"1\"\n"
	if err := os.WriteFile(docPath, []byte(doc), 0o600); err != nil {
		t.Fatalf("write document: %v", err)
	}

	e := echo.New()
	RegisterSwagger(e, docPath)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"openapi":"3.0.3"`) {
		t.Fatalf("expected converted JSON document, got %q", rec.Body.String())
	}
}

func TestSwaggerDocMissingDocument(t *testing.T) {
	e := echo.New()
	RegisterSwagger(e, filepath.Join(t.TempDir(), "missing.yaml"))

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
