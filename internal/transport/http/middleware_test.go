package http

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/artistdesk/artistdesk-api/internal/domain"
	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
	"github.com/artistdesk/artistdesk-api/internal/service"
	"github.com/artistdesk/artistdesk-api/internal/util"
)

// stubUserRepo serves a single fixed account to the auth service.
type stubUserRepo struct {
	user *domain.User
}

func (r *stubUserRepo) Create(ctx context.Context, input ports.UserCreate) (int64, error) {
	return 0, sql.ErrNoRows
}

func (r *stubUserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	if r.user != nil && r.user.ID == id {
		copied := *r.user
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (r *stubUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if r.user != nil && r.user.Username == username {
		copied := *r.user
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if r.user != nil && r.user.EmailAddress == email {
		copied := *r.user
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (r *stubUserRepo) Update(ctx context.Context, id int64, input ports.UserUpdate) (*domain.User, error) {
	return nil, sql.ErrNoRows
}

func (r *stubUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) (bool, error) {
	return false, nil
}

func (r *stubUserRepo) Deactivate(ctx context.Context, id int64, at time.Time) (*domain.User, error) {
	return nil, sql.ErrNoRows
}

func newAuthFixture(t *testing.T, active bool) (*service.AuthService, string, *domain.User) {
	t.Helper()

	hash, err := util.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	user := &domain.User{
		ID:           7,
		Username:     "nightowls",
		Password:     hash,
		EmailAddress: "owner@example.com",
		IsActive:     active,
	}

	tokens, err := util.NewJWTManager("test-secret", "HS256")
	if err != nil {
		t.Fatalf("NewJWTManager returned error: %v", err)
	}
	auth := service.NewAuthService(&stubUserRepo{user: user}, nil, tokens, nil, 30*time.Minute)

	token, _, err := tokens.Generate(user.Username, 30*time.Minute)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	return auth, token, user
}

func okHandler(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusInternalServerError, util.Error("no user on context"))
	}
	return c.JSON(http.StatusOK, echo.Map{"username": user.Username})
}

func TestRequireAuthRejectsBadHeaders(t *testing.T) {
	auth, _, _ := newAuthFixture(t, true)
	e := echo.New()
	handler := RequireAuth(auth)(okHandler)

	cases := map[string]string{
		"missing":      "",
		"not bearer":   "Basic dXNlcjpwYXNz",
		"no token":     "Bearer",
		"garbage jwt":  "Bearer not.a.token",
		"wrong scheme": "Token abcdef",
	}
	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler(c); err != nil {
			t.Fatalf("%s: handler returned error: %v", name, err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, rec.Code)
		}
		if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "Bearer" {
			t.Fatalf("%s: expected WWW-Authenticate Bearer, got %q", name, got)
		}
	}
}

func TestRequireAuthResolvesUser(t *testing.T) {
	auth, token, user := newAuthFixture(t, true)
	e := echo.New()
	handler := RequireAuth(auth)(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), user.Username) {
		t.Fatalf("expected body to contain %q, got %s", user.Username, rec.Body.String())
	}
}

func TestRequireActiveBlocksDeactivatedAccount(t *testing.T) {
	auth, token, _ := newAuthFixture(t, false)
	e := echo.New()
	handler := RequireAuth(auth)(RequireActive()(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	// A valid token for a deactivated account is a 400, not a 401.
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLoginIssuesTokenForFormCredentials(t *testing.T) {
	auth, _, _ := newAuthFixture(t, true)
	handler := &AuthHandler{auth: auth}
	e := echo.New()

	form := url.Values{}
	form.Set("username", "nightowls")
	form.Set("password", "correct horse")
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.login(c); err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"access_token"`) || !strings.Contains(body, `"token_type":"bearer"`) {
		t.Fatalf("unexpected login body: %s", body)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	auth, _, _ := newAuthFixture(t, true)
	handler := &AuthHandler{auth: auth}
	e := echo.New()

	form := url.Values{}
	form.Set("username", "nightowls")
	form.Set("password", "wrong horse")
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.login(c); err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "Bearer" {
		t.Fatalf("expected WWW-Authenticate Bearer, got %q", got)
	}
}
