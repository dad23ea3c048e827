package domain

import "errors"

// Auth / session errors.
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrMissingFields = errors.New("all required fields must be provided")
var ErrMissingRefreshToken = errors.New("refresh token not presented")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenMalformed = errors.New("token malformed or signature invalid")
var ErrStaleRefreshToken = errors.New("refresh token superseded or revoked")
var ErrWrongOldPassword = errors.New("old password does not match")
var ErrTooManyAttempts = errors.New("too many login attempts")

// Resource errors shared by all CRUD services.
var ErrNotFound = errors.New("record not found")
var ErrInvalidID = errors.New("invalid record id")
var ErrForbidden = errors.New("access forbidden")
var ErrDuplicate = errors.New("record already exists")

// Intake errors.
var ErrQueueFull = errors.New("report queue full")
