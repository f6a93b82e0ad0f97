// Package common defines shared constants and sentinel errors used across
// topicboard layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal           = errors.New("internal error")
	ErrorUnauthorized       = errors.New("unauthorized")
	ErrorInvalidCredentials = errors.New("incorrect username or password")
	ErrorInactiveUser       = errors.New("inactive user")

	// Authorization gate errors. The messages are client-safe: the HTTP
	// layer renders them verbatim in the error body.
	ErrorLoginRequired  = errors.New("login required")
	ErrorNotContributor = errors.New("you are not contributor")
	ErrorNoPermission   = errors.New("you don't have permission")
	ErrorForbidden      = errors.New("the user doesn't have enough privileges")

	// Token decode errors. Internal diagnostics only: the transport layer
	// collapses every decode failure into one opaque 401.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
