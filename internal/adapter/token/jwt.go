package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWT signs and verifies HS256 tokens carrying only the user id. No
// expiry claim is set: a token stays valid until a newer one supersedes
// it through the stored-token check in the auth service.
type JWT struct {
	secret []byte
}

func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret)}
}

func (j *JWT) Issue(userID string) (string, error) {
	// iat and jti make every issued token unique, so rotating a user's
	// token reliably invalidates the previous one.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"iat": jwt.NewNumericDate(time.Now()),
		"jti": uuid.NewString(),
	})

	return token.SignedString(j.secret)
}

func (j *JWT) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return j.secret, nil
	})

	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}

	id, ok := claims["id"].(string)

	if !ok || id == "" {
		return "", errors.New("token payload has no id")
	}

	return id, nil
}
