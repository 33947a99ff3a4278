package validator

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateCategory(t *testing.T) {
	for _, category := range []string{"Food", "Rent & Utilities", "日用品"} {
		if err := ValidateCategory(category); err != nil {
			t.Fatalf("expected %q to be valid: %v", category, err)
		}
	}
	for _, category := range []string{"", "   ", strings.Repeat("x", 51)} {
		if err := ValidateCategory(category); !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("expected %q to be invalid", category)
		}
	}
}

func TestValidateAccountNumber(t *testing.T) {
	for _, number := range []string{"ACC1000", "ACC0"} {
		if err := ValidateAccountNumber(number); err != nil {
			t.Fatalf("expected %q to be valid: %v", number, err)
		}
	}
	for _, number := range []string{"", "ACC", "acc1000", "ACC10a", "1000"} {
		if err := ValidateAccountNumber(number); !errors.Is(err, ErrInvalidAccountNumber) {
			t.Fatalf("expected %q to be invalid", number)
		}
	}
}

func TestValidateDescription(t *testing.T) {
	if err := ValidateDescription(""); err != nil {
		t.Fatalf("empty description should be allowed: %v", err)
	}
	if err := ValidateDescription("line\nbreak"); !errors.Is(err, ErrInvalidDescription) {
		t.Fatal("expected newline to be rejected")
	}
	if err := ValidateDescription(strings.Repeat("d", 201)); !errors.Is(err, ErrInvalidDescription) {
		t.Fatal("expected long description to be rejected")
	}
}
