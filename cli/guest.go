package cli

import (
	"fmt"
	"strings"
	"unicode"
)

// Guest-input validation lives in the presentation layer: the booking core
// assumes well-formed input and only guards against missing optional fields.

func validateGuestName(field, name string) error {
	if name == "" {
		return fmt.Errorf("%s is required", field)
	}
	for _, r := range name {
		if unicode.IsDigit(r) {
			return fmt.Errorf("%s must not contain numbers", field)
		}
	}
	return nil
}

func validateEmail(email string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return fmt.Errorf("invalid email address %q", email)
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) < 8 {
		return fmt.Errorf("phone number must have at least 8 digits")
	}
	for _, r := range phone {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("phone number must contain digits only")
		}
	}
	return nil
}

func validateParty(adults, children int) error {
	if adults < 1 {
		return fmt.Errorf("at least one adult is required")
	}
	if children >= adults {
		return fmt.Errorf("children must be fewer than adults")
	}
	if adults+children > 6 {
		return fmt.Errorf("no more than 6 people in total")
	}
	return nil
}
