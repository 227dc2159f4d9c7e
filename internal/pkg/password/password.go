// Package password wraps bcrypt for the account store. Hashes are
// interchangeable with the pgcrypto-generated ones in the seed data, so
// seeded and registered accounts verify through the same path.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword    = errors.New("password must not be empty")
	ErrHashingFailed    = errors.New("failed to hash password")
	ErrPasswordMismatch = errors.New("password does not match")
)

const hashCost = bcrypt.DefaultCost

func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}

// ComparePassword returns ErrPasswordMismatch on a wrong password; login
// maps any failure here to invalid credentials without distinguishing.
func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrEmptyPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return err
	}
	return nil
}
