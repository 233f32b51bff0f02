package service

import (
	"errors"

	errorvalues "github.com/limbo/checkin/internal/error_values"
	"golang.org/x/crypto/bcrypt"
)

// AuthService guards registration and login with one shared access code.
// Only the bcrypt hash of the code is configured.
type AuthService struct {
	codeHash []byte
}

func NewAuthService(codeHash string) *AuthService {
	return &AuthService{
		codeHash: []byte(codeHash),
	}
}

// Authorize rejects every code when no hash is configured.
func (as *AuthService) Authorize(code string) error {
	if len(as.codeHash) == 0 || code == "" {
		return errorvalues.ErrWrongAccessCode
	}
	if err := bcrypt.CompareHashAndPassword(as.codeHash, []byte(code)); err != nil {
		return errorvalues.ErrWrongAccessCode
	}
	return nil
}

func Hash(secret string) (string, error) {
	if secret == "" {
		return "", errors.New("empty secret")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("hashing error: " + err.Error())
	}
	return string(hash), nil
}
