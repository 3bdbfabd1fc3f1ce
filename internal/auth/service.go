package auth

import (
	"crypto/subtle"
	"errors"
)

var ErrInvalidKey = errors.New("invalid api key")

// Service exchanges the configured admin API key for a short-lived
// admin token. There are no user accounts; the write path is guarded
// by this single credential.
type Service struct {
	apiKey string
	secret []byte
}

func NewService(apiKey, secret string) *Service {
	return &Service{apiKey: apiKey, secret: []byte(secret)}
}

func (s *Service) IssueToken(apiKey string) (string, error) {
	if apiKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(s.apiKey)) != 1 {
		return "", ErrInvalidKey
	}
	return generateToken(s.secret, RoleAdmin)
}

func (s *Service) ValidateToken(tokenString string) (string, error) {
	return validateToken(s.secret, tokenString)
}
