// Package common contains shared constants and sentinel errors used across
// topicboard components.
package common

const (
	// AuthHeaderName is the HTTP header that carries the bearer credential.
	AuthHeaderName = "Authorization"

	// AuthScheme is the authorization scheme expected in AuthHeaderName and
	// advertised back to clients via WWW-Authenticate on rejections.
	AuthScheme = "Bearer"
)
