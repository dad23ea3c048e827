package ports

import "github.com/carehub/hospital-system/internal/core/domain"

// AccessClaims is the identity information carried by a verified access token.
type AccessClaims struct {
	UserID string
	Role   domain.Role
}

// TokenPair bundles the two credentials issued on login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenCodec mints and verifies the signed access/refresh token pair. It is
// stateless: secrets and lifetimes are fixed at construction.
type TokenCodec interface {
	IssueAccessToken(user *domain.User) (string, error)
	IssueRefreshToken(user *domain.User) (string, error)
	// VerifyAccess returns the embedded claims, or domain.ErrTokenExpired /
	// domain.ErrTokenMalformed.
	VerifyAccess(token string) (*AccessClaims, error)
	// VerifyRefresh returns the embedded user id, with the same error
	// contract as VerifyAccess.
	VerifyRefresh(token string) (string, error)
}
