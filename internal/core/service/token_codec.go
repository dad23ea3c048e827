package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

// TokenCodec signs and verifies the access/refresh pair. Access and refresh
// tokens use separate secrets so a leaked refresh secret cannot forge
// per-request credentials and vice versa.
type TokenCodec struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenCodec(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenCodec {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenCodec{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

type accessTokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type refreshTokenClaims struct {
	jwt.RegisteredClaims
}

// newTokenID mints the jti claim. Timestamps truncate to whole seconds, so
// without a per-token nonce two tokens issued within the same second would be
// byte-identical and refresh rotation could not tell old from new.
func newTokenID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func (c *TokenCodec) IssueAccessToken(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := accessTokenClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        newTokenID(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.accessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.accessSecret)
}

func (c *TokenCodec) IssueRefreshToken(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := refreshTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        newTokenID(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.refreshTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.refreshSecret)
}

func (c *TokenCodec) VerifyAccess(token string) (*ports.AccessClaims, error) {
	claims := &accessTokenClaims{}
	if err := c.parse(token, claims, c.accessSecret); err != nil {
		return nil, err
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}
	return &ports.AccessClaims{UserID: claims.Subject, Role: role}, nil
}

func (c *TokenCodec) VerifyRefresh(token string) (string, error) {
	claims := &refreshTokenClaims{}
	if err := c.parse(token, claims, c.refreshSecret); err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", domain.ErrTokenMalformed
	}
	return claims.Subject, nil
}

func (c *TokenCodec) parse(token string, claims jwt.Claims, secret []byte) error {
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.ErrTokenExpired
		}
		return domain.ErrTokenMalformed
	}
	if !tkn.Valid {
		return domain.ErrTokenMalformed
	}
	return nil
}
