package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/service"
)

func newTestCodec() *service.TokenCodec {
	return service.NewTokenCodec("access-secret", "refresh-secret", time.Minute, time.Hour)
}

func authNext(t *testing.T, wantUserID string, wantRole domain.Role) echo.HandlerFunc {
	t.Helper()
	return func(c echo.Context) error {
		if got, _ := c.Get("user_id").(string); got != wantUserID {
			t.Fatalf("unexpected user_id in context: %q", got)
		}
		if got, _ := c.Get("role").(domain.Role); got != wantRole {
			t.Fatalf("unexpected role in context: %q", got)
		}
		return c.NoContent(http.StatusOK)
	}
}

func TestAuth_CookieToken(t *testing.T) {
	e := echo.New()
	codec := newTestCodec()
	token, err := codec.IssueAccessToken(&domain.User{ID: "user_1", Role: domain.RoleDoctor})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/doctors", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(codec)
	if err := mw(authNext(t, "user_1", domain.RoleDoctor))(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
}

func TestAuth_BearerToken(t *testing.T) {
	e := echo.New()
	codec := newTestCodec()
	token, err := codec.IssueAccessToken(&domain.User{ID: "user_2", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(codec)
	if err := mw(authNext(t, "user_2", domain.RoleAdmin))(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
}

func TestAuth_CookieWinsOverHeader(t *testing.T) {
	e := echo.New()
	codec := newTestCodec()
	cookieToken, _ := codec.IssueAccessToken(&domain.User{ID: "cookie_user", Role: domain.RolePatient})
	headerToken, _ := codec.IssueAccessToken(&domain.User{ID: "header_user", Role: domain.RoleAdmin})

	req := httptest.NewRequest(http.MethodGet, "/v1/hospitals", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: cookieToken})
	req.Header.Set("Authorization", "Bearer "+headerToken)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(codec)
	if err := mw(authNext(t, "cookie_user", domain.RolePatient))(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
}

func TestAuth_MissingToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(newTestCodec())
	err := mw(func(c echo.Context) error {
		t.Fatalf("next should not run")
		return nil
	})(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	e := echo.New()
	codec := service.NewTokenCodec("access-secret", "refresh-secret", time.Nanosecond, time.Hour)
	token, _ := codec.IssueAccessToken(&domain.User{ID: "user_3", Role: domain.RoleDoctor})
	time.Sleep(10 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/v1/doctors", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(codec)
	err := mw(func(c echo.Context) error { return nil })(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if httpErr.Message != "access token expired" {
		t.Fatalf("expected expiry message, got %v", httpErr.Message)
	}
}

func TestAuth_GarbageToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(newTestCodec())
	err := mw(func(c echo.Context) error { return nil })(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
