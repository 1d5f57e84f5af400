package jwt

import "github.com/golang-jwt/jwt/v5"

// CustomClaims — данные участника внутри токена.
type CustomClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
