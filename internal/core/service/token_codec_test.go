package service

import (
	"testing"
	"time"

	"github.com/carehub/hospital-system/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:        "user_1",
		Email:     "alice@example.com",
		Role:      domain.RoleDoctor,
		Lifecycle: domain.NewLifecycle(),
	}
}

func TestTokenCodec_AccessRoundTrip(t *testing.T) {
	codec := NewTokenCodec("access-secret", "refresh-secret", time.Minute, time.Hour)

	token, err := codec.IssueAccessToken(testUser())
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}

	claims, err := codec.VerifyAccess(token)
	if err != nil {
		t.Fatalf("VerifyAccess returned error: %v", err)
	}
	if claims.UserID != "user_1" {
		t.Fatalf("unexpected user id: %q", claims.UserID)
	}
	if claims.Role != domain.RoleDoctor {
		t.Fatalf("unexpected role: %q", claims.Role)
	}
}

func TestTokenCodec_RefreshRoundTrip(t *testing.T) {
	codec := NewTokenCodec("access-secret", "refresh-secret", time.Minute, time.Hour)

	token, err := codec.IssueRefreshToken(testUser())
	if err != nil {
		t.Fatalf("IssueRefreshToken returned error: %v", err)
	}

	userID, err := codec.VerifyRefresh(token)
	if err != nil {
		t.Fatalf("VerifyRefresh returned error: %v", err)
	}
	if userID != "user_1" {
		t.Fatalf("unexpected user id: %q", userID)
	}
}

func TestTokenCodec_ConsecutiveTokensAreDistinct(t *testing.T) {
	codec := NewTokenCodec("access-secret", "refresh-secret", time.Minute, time.Hour)
	user := testUser()

	// issued back to back, well within the same second: the jti claim must
	// still make every token unique or rotation cannot distinguish them
	first, err := codec.IssueRefreshToken(user)
	if err != nil {
		t.Fatalf("IssueRefreshToken returned error: %v", err)
	}
	second, err := codec.IssueRefreshToken(user)
	if err != nil {
		t.Fatalf("IssueRefreshToken returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two refresh tokens issued in the same second are identical")
	}

	a1, _ := codec.IssueAccessToken(user)
	a2, _ := codec.IssueAccessToken(user)
	if a1 == a2 {
		t.Fatalf("two access tokens issued in the same second are identical")
	}
}

func TestTokenCodec_SecretsAreNotInterchangeable(t *testing.T) {
	codec := NewTokenCodec("access-secret", "refresh-secret", time.Minute, time.Hour)

	access, _ := codec.IssueAccessToken(testUser())
	refresh, _ := codec.IssueRefreshToken(testUser())

	if _, err := codec.VerifyRefresh(access); err != domain.ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed for access token on refresh path, got %v", err)
	}
	if _, err := codec.VerifyAccess(refresh); err != domain.ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed for refresh token on access path, got %v", err)
	}
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := NewTokenCodec("access-secret", "refresh-secret", time.Nanosecond, time.Nanosecond)

	token, err := codec.IssueAccessToken(testUser())
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := codec.VerifyAccess(token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	issuer := NewTokenCodec("access-secret", "refresh-secret", time.Minute, time.Hour)
	verifier := NewTokenCodec("other-secret", "other-refresh", time.Minute, time.Hour)

	token, _ := issuer.IssueAccessToken(testUser())
	if _, err := verifier.VerifyAccess(token); err != domain.ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenCodec_Garbage(t *testing.T) {
	codec := NewTokenCodec("access-secret", "refresh-secret", time.Minute, time.Hour)

	if _, err := codec.VerifyAccess("not.a.token"); err != domain.ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
	if _, err := codec.VerifyRefresh(""); err != domain.ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}
