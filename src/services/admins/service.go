package admins

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("Invalid name or password")

// TokenGenerator signs a token for an authenticated admin.
type TokenGenerator interface {
	Generate(admin string) (string, error)
}

// Service authenticates photo-gallery admins against configured bcrypt hashes.
type Service struct {
	credentials map[string]string
	tokens      TokenGenerator
}

func NewService(credentials map[string]string, tokens TokenGenerator) *Service {
	return &Service{credentials: credentials, tokens: tokens}
}

func (s *Service) Login(name, password string) (string, error) {
	hash, ok := s.credentials[name]
	if !ok || name == "" {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(name)
	if err != nil {
		return "", err
	}
	log.Printf("[admins] %s logged in", name)
	return token, nil
}
