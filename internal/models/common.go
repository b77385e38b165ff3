package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims is the verified payload of an access token issued by the identity
// provider. The subject is the landlord's user id.
type JWTClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the token subject.
func (c *JWTClaims) UserID() string {
	if c == nil {
		return ""
	}
	return c.Subject
}
