package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", ErrUnauthorized)
	ErrInvalidAdmin       = fmt.Errorf("%w: invalid admin", ErrUnauthorized)

	ErrInvalidID          = errors.New("invalid id")
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

func validationError(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// parseID проверяет, что id является ключом хранилища (UUID), и возвращает его каноническую форму.
func parseID(kind, id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: invalid %s id", ErrInvalidID, kind)
	}
	return parsed.String(), nil
}

func newID() string {
	return uuid.New().String()
}
