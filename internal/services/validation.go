package services

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophquiz/internal/models"
)

const (
	MinAge             = 18
	MinPasswordLength  = 6
	forbiddenNameChars = `<>"'`
)

// ValidateName rejects names carrying markup or quote characters.
func ValidateName(name string) error {
	if strings.ContainsAny(name, forbiddenNameChars) {
		return invalid("name", ErrInvalidName)
	}
	return nil
}

// ParseAge parses a whole number of years and enforces MinAge.
func ParseAge(s string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, invalid("age", ErrInvalidAge)
	}
	if age < MinAge {
		return age, invalid("age", ErrUnderage)
	}
	return age, nil
}

// ValidateEmail trims email and checks its shape. Existence is checked
// separately, see RegistrationService.CheckEmailAvailable.
func ValidateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if strings.Count(email, "@") != 1 || !strings.Contains(email, ".") {
		return email, invalid("email", ErrInvalidEmail)
	}
	return email, nil
}

// CheckPasswordStrength enforces the strength policy: at least
// MinPasswordLength characters, one uppercase letter and one digit.
func CheckPasswordStrength(password []byte) error {
	var upper, digit bool
	for _, r := range string(password) {
		upper = upper || unicode.IsUpper(r)
		digit = digit || unicode.IsDigit(r)
	}
	if utf8.RuneCount(password) < MinPasswordLength || !upper || !digit {
		return invalid("password", ErrWeakPassword)
	}
	return nil
}

// NormalizeRole maps free text to a role. Anything other than "admin" or
// "aluno" becomes a student; ok is false in that case so the caller can tell
// the user.
func NormalizeRole(s string) (role models.Role, ok bool) {
	switch models.Role(strings.ToLower(strings.TrimSpace(s))) {
	case models.RoleAdmin:
		return models.RoleAdmin, true
	case models.RoleStudent:
		return models.RoleStudent, true
	}
	return models.RoleStudent, false
}
