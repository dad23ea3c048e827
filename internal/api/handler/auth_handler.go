package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carehub/hospital-system/internal/core/ports"
)

// AuthHandler binds the session manager to HTTP: it owns request decoding,
// the response envelope, and the auth cookies. All domain errors pass
// through to the central error handler.
type AuthHandler struct {
	authService ports.AuthService
	cookies     CookiePolicy
}

func NewAuthHandler(authService ports.AuthService, cookies CookiePolicy) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      409   {object}  envelope
// @Failure      500   {object}  envelope
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.RegisterInput{
		Email:        req.Email,
		FullName:     req.FullName,
		Password:     req.Password,
		MobileNumber: req.MobileNumber,
		Role:         req.Role,
		Active:       true,
	}
	if req.Active != nil {
		in.Active = *req.Active
	}
	if req.Deleted != nil {
		in.Deleted = *req.Deleted
	}

	user, err := h.authService.Register(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "user registered successfully", toUserResponse(user))
}

// Login authenticates a user and issues the token pair.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.cookies.setTokenCookies(c, result.Tokens.AccessToken, result.Tokens.RefreshToken)

	return respond(c, http.StatusOK, "user logged in successfully", loginResponse{
		User:         toUserResponse(result.User),
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	})
}

// Refresh exchanges a refresh token for a new pair. The token is read from
// the refreshToken cookie or, failing that, the request body.
//
// @Summary      Refresh the token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  false  "Refresh token (optional when the cookie is present)"
// @Success      200   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /v1/auth/refresh-token [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	presented := ""
	if cookie, err := c.Cookie(refreshCookieName); err == nil {
		presented = cookie.Value
	}
	if presented == "" {
		var req refreshRequest
		if err := c.Bind(&req); err == nil {
			presented = req.RefreshToken
		}
	}

	pair, err := h.authService.Refresh(c.Request().Context(), presented)
	if err != nil {
		return err
	}

	h.cookies.setTokenCookies(c, pair.AccessToken, pair.RefreshToken)

	return respond(c, http.StatusOK, "access token refreshed", tokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Logout clears the stored refresh token and both cookies.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), userID); err != nil {
		return err
	}

	h.cookies.clearTokenCookies(c)
	return respond(c, http.StatusOK, "user logged out", nil)
}

// ChangePassword re-hashes the password; existing sessions stay valid.
//
// @Summary      Change the current password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Old and new password"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /v1/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ChangePassword(c.Request().Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "password changed successfully", nil)
}
