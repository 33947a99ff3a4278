package validator

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidAccountNumber = errors.New("invalid account number")
	ErrInvalidDescription   = errors.New("invalid description")
)

const (
	maxCategoryLength    = 50
	maxDescriptionLength = 200
)

var accountNumberRegex = regexp.MustCompile(`^ACC[0-9]+$`)

func ValidateCategory(category string) error {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > maxCategoryLength {
		return ErrInvalidCategory
	}
	return nil
}

func ValidateAccountNumber(number string) error {
	if !accountNumberRegex.MatchString(number) {
		return ErrInvalidAccountNumber
	}
	return nil
}

// ValidateDescription allows empty descriptions.
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLength || strings.ContainsAny(description, "\r\n") {
		return ErrInvalidDescription
	}
	return nil
}
