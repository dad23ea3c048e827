package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

type stubAuthService struct {
	registerFn       func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn          func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	refreshFn        func(ctx context.Context, presented string) (*ports.TokenPair, error)
	logoutFn         func(ctx context.Context, userID string) error
	changePasswordFn func(ctx context.Context, userID, oldPassword, newPassword string) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Refresh(ctx context.Context, presented string) (*ports.TokenPair, error) {
	return s.refreshFn(ctx, presented)
}

func (s *stubAuthService) Logout(ctx context.Context, userID string) error {
	return s.logoutFn(ctx, userID)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	return s.changePasswordFn(ctx, userID, oldPassword, newPassword)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func testCookiePolicy() CookiePolicy {
	return CookiePolicy{AccessTTL: 15 * time.Minute, RefreshTTL: 24 * time.Hour}
}

func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	res := rec.Result()
	defer res.Body.Close()
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Email != "alice@example.com" || in.Role != domain.RoleDoctor {
				t.Fatalf("unexpected input: %+v", in)
			}
			if !in.Active {
				t.Fatalf("expected active to default to true")
			}
			return &domain.User{
				ID:        "user_1",
				Email:     in.Email,
				FullName:  in.FullName,
				Role:      in.Role,
				Lifecycle: domain.NewLifecycle(),
			}, nil
		},
	}
	handler := NewAuthHandler(stub, testCookiePolicy())

	body := strings.NewReader(`{"email":"alice@example.com","full_name":"Alice Smith","password":"s3cret-pass","mobile_number":"5550001111","role":"doctor"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success envelope, got %+v", resp)
	}
	user, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data in response")
	}
	if user["email"] != "alice@example.com" || user["role"] != "doctor" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password leaked in response")
	}
}

func TestAuthHandler_Register_NumericLegacyRole(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Role != domain.RoleHospital {
				t.Fatalf("expected numeric role 1 to parse as hospital, got %q", in.Role)
			}
			return &domain.User{ID: "user_2", Email: in.Email, Role: in.Role}, nil
		},
	}
	handler := NewAuthHandler(stub, testCookiePolicy())

	body := strings.NewReader(`{"email":"h@example.com","full_name":"Central Hospital","password":"s3cret-pass","mobile_number":"5550002222","role":1}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{}, testCookiePolicy())

	body := strings.NewReader(`{"email":"a@example.com","full_name":"A","password":"short","mobile_number":"5550001111","role":"doctor"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_SetsCookies(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*ports.LoginResult, error) {
			return &ports.LoginResult{
				User:   &domain.User{ID: "user_1", Email: email, Role: domain.RolePatient, Lifecycle: domain.NewLifecycle()},
				Tokens: ports.TokenPair{AccessToken: "access-abc", RefreshToken: "refresh-xyz"},
			}, nil
		},
	}
	handler := NewAuthHandler(stub, testCookiePolicy())

	body := strings.NewReader(`{"email":"p@example.com","password":"s3cret-pass"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	access := cookieByName(rec, "accessToken")
	refresh := cookieByName(rec, "refreshToken")
	if access == nil || access.Value != "access-abc" {
		t.Fatalf("access cookie missing or wrong: %+v", access)
	}
	if refresh == nil || refresh.Value != "refresh-xyz" {
		t.Fatalf("refresh cookie missing or wrong: %+v", refresh)
	}
	if !access.HttpOnly || !refresh.HttpOnly {
		t.Fatalf("auth cookies must be httpOnly")
	}
}

func TestAuthHandler_Login_UserNotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*ports.LoginResult, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewAuthHandler(stub, testCookiePolicy())

	body := strings.NewReader(`{"email":"ghost@example.com","password":"whatever1"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound passed through, got %v", err)
	}
}

func TestAuthHandler_Refresh_PrefersCookie(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		refreshFn: func(_ context.Context, presented string) (*ports.TokenPair, error) {
			if presented != "from-cookie" {
				t.Fatalf("expected cookie token, got %q", presented)
			}
			return &ports.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil
		},
	}
	handler := NewAuthHandler(stub, testCookiePolicy())

	body := strings.NewReader(`{"refresh_token":"from-body"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh-token", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "from-cookie"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got := cookieByName(rec, "refreshToken"); got == nil || got.Value != "new-refresh" {
		t.Fatalf("expected rotated refresh cookie, got %+v", got)
	}
}

func TestAuthHandler_Refresh_FallsBackToBody(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		refreshFn: func(_ context.Context, presented string) (*ports.TokenPair, error) {
			if presented != "from-body" {
				t.Fatalf("expected body token, got %q", presented)
			}
			return &ports.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil
		},
	}
	handler := NewAuthHandler(stub, testCookiePolicy())

	body := strings.NewReader(`{"refresh_token":"from-body"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh-token", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthHandler_Logout_ClearsCookies(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, userID string) error {
			if userID != "user_1" {
				t.Fatalf("unexpected user id: %q", userID)
			}
			return nil
		},
	}
	handler := NewAuthHandler(stub, testCookiePolicy())

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")
	c.Set("role", domain.RolePatient)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	for _, name := range []string{"accessToken", "refreshToken"} {
		cleared := cookieByName(rec, name)
		if cleared == nil {
			t.Fatalf("expected %s cookie in response", name)
		}
		if cleared.Value != "" || cleared.MaxAge >= 0 {
			t.Fatalf("expected %s cookie cleared, got value=%q maxage=%d", name, cleared.Value, cleared.MaxAge)
		}
	}
}

func TestAuthHandler_Logout_MissingIdentity(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{}, testCookiePolicy())

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Logout(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		changePasswordFn: func(_ context.Context, userID, oldPassword, newPassword string) error {
			if userID != "user_1" || oldPassword != "old-pass-123" || newPassword != "new-pass-123" {
				t.Fatalf("unexpected args: %s %s %s", userID, oldPassword, newPassword)
			}
			return nil
		},
	}
	handler := NewAuthHandler(stub, testCookiePolicy())

	body := strings.NewReader(`{"old_password":"old-pass-123","new_password":"new-pass-123"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/change-password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")
	c.Set("role", domain.RoleDoctor)

	if err := handler.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
