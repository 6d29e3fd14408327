package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"studyshare-backend/common"
)

// Claims carries the authenticated user's identity inside the signed
// credential. The credential is self-describing: resolving it never
// touches the store.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// SignToken issues an HS256 token embedding the user's ID and email.
func SignToken(userID, email string, secret []byte, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken verifies a credential and returns its claims. Expired or
// otherwise unverifiable tokens fail with ErrInvalidCredential.
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, common.ErrInvalidCredential
	}
	if !token.Valid {
		return nil, common.ErrInvalidCredential
	}
	return claims, nil
}
