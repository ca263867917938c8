package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL matches the 1h expiry the client refresh cycle expects.
const tokenTTL = time.Hour

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, expiry. Callers get no distinction between them.
var ErrInvalidToken = errors.New("invalid token")

// IssueToken signs the caller-supplied claims with the shared secret and a
// 1-hour expiry. Claim contents are not validated; clients send at least an
// email.
func IssueToken(claims map[string]interface{}, secret string) (string, error) {
	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["exp"] = time.Now().Add(tokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString([]byte(secret))
}

// VerifyToken validates signature and expiry and returns the decoded claims.
func VerifyToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
