package helpers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

func ValidateLoginInput(empID, password string) error {
	if strings.TrimSpace(empID) == "" {
		return errors.New("emp_id is required")
	}
	if password == "" {
		return errors.New("password is required")
	}
	return nil
}

// ValidatePassword wants at least 8 characters with a letter and a digit.
func ValidatePassword(pw string) error {
	if len(pw) < minPasswordLen {
		return errors.New("password must be at least 8 characters")
	}
	var letter, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !letter || !digit {
		return errors.New("password must contain letters and numbers")
	}
	return nil
}

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPasswordHash(hash, pw string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
}

// GeneratePassword returns a random initial password that passes ValidatePassword.
func GeneratePassword() (string, error) {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf) + "a1", nil
}
