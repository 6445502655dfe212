package secret

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errors.New("secret hashing failed")
	ErrMismatch      = errors.New("secret does not match")
	ErrEmptySecret   = errors.New("secret is empty")
)

const DefaultCost = bcrypt.DefaultCost

// Hash stores identity document numbers without keeping them in clear text.
func Hash(value string) (string, error) {
	value = normalize(value)
	if value == "" {
		return "", ErrEmptySecret
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(value), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func Compare(hashed, value string) error {
	value = normalize(value)
	if hashed == "" || value == "" {
		return ErrEmptySecret
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(value))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}

	return nil
}

// Last4 keeps the tail of a document number for display.
func Last4(value string) string {
	value = normalize(value)
	if len(value) <= 4 {
		return value
	}
	return value[len(value)-4:]
}

func normalize(value string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(value), " ", ""))
}
