package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

// RoleAdmin is the only role in this system; it unlocks the catalog
// write path.
const RoleAdmin = "ADMIN"

func generateToken(secret []byte, role string) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("empty jwt secret")
	}

	claims := jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func validateToken(secret []byte, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	role, _ := claims["role"].(string)
	if role == "" {
		return "", errors.New("token carries no role")
	}

	return role, nil
}
