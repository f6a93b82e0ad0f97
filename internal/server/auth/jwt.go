// Package auth implements the credential primitives of the server: the
// signed access-token codec and the one-way password hasher.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"topicboard/internal/common"
)

// Permission levels embedded in the token. They reflect is_superuser at
// issuance time and are advisory: live account state decides authorization.
const (
	PermissionAdmin = "admin"
	PermissionUser  = "user"
)

// Claims is the claim set carried by an access token: the standard
// registered claims (sub = account email, exp) plus the permission level.
type Claims struct {
	jwt.RegisteredClaims
	Permissions string `json:"permissions"`
}

// GenerateToken signs a new HS256 access token for subject with the given
// permission level and validity duration.
func GenerateToken(subject, permissions string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Permissions: permissions,
	})

	return token.SignedString(secretKey)
}

// ParseToken verifies the signature and expiry of an access token and
// returns its claims. The signing algorithm is pinned to HS256: tokens
// signed with anything else fail verification.
//
// Failures map to common.ErrTokenExpired for expired tokens and
// common.ErrInvalidToken for everything else (bad signature, malformed
// structure, missing subject or permissions). Callers must not forward the
// distinction to clients.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	if claims.Subject == "" || claims.Permissions == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
