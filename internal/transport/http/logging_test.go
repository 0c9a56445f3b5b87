package http

import (
	"strings"
	"testing"
)

func TestSanitizeBodyRedactsPasswordsInJSON(t *testing.T) {
	body := []byte(`{"username":"nightowls","password":"hunter2","nested":{"old_password":"x","note":"ok"}}`)
	result := sanitizeBody(body, "application/json")

	m, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map, got %T", result)
	}
	if m["password"] != "redacted" {
		t.Fatalf("expected password redacted, got %v", m["password"])
	}
	nested, ok := m["nested"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected nested map, got %T", m["nested"])
	}
	if nested["old_password"] != "redacted" {
		t.Fatalf("expected old_password redacted, got %v", nested["old_password"])
	}
	if nested["note"] != "ok" {
		t.Fatalf("expected note untouched, got %v", nested["note"])
	}
}

func TestSanitizeBodyRedactsFormPasswords(t *testing.T) {
	body := []byte("username=nightowls&password=hunter2")
	result := sanitizeBody(body, "application/x-www-form-urlencoded")

	m, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map, got %T", result)
	}
	if m["password"] != "redacted" {
		t.Fatalf("expected password redacted, got %v", m["password"])
	}
	if m["username"] != "nightowls" {
		t.Fatalf("expected username untouched, got %v", m["username"])
	}
}

func TestSanitizeBodyRedactsTokens(t *testing.T) {
	body := []byte(`{"access_token":"eyJabc","token_type":"bearer"}`)
	result := sanitizeBody(body, "application/json")

	m, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map, got %T", result)
	}
	if m["access_token"] != "redacted" {
		t.Fatalf("expected access_token redacted, got %v", m["access_token"])
	}
}

func TestSanitizeBodyHandlesBinary(t *testing.T) {
	if got := sanitizeBody([]byte{0x89, 0x50, 0x4e, 0x47, 0x00}, "image/png"); got != "binary" {
		t.Fatalf("expected binary marker, got %v", got)
	}
	if got := sanitizeBody(nil, "application/json"); got != nil {
		t.Fatalf("expected nil for empty body, got %v", got)
	}
}

func TestClampStringTruncatesLongValues(t *testing.T) {
	long := strings.Repeat("a", maxLoggedBody+10)
	got := clampString(long)
	if !strings.HasSuffix(got, "...(truncated)") {
		t.Fatalf("expected truncation suffix, got tail %q", got[len(got)-20:])
	}
	if len(got) > maxLoggedBody+len("...(truncated)") {
		t.Fatalf("clamped string too long: %d", len(got))
	}

	short := "hello"
	if clampString(short) != short {
		t.Fatalf("expected short string unchanged")
	}
}
