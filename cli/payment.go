package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Card details are validated here and immediately reduced to the last four
// digits; the full number, CVV and expiry never reach the booking store.
// Nothing is actually charged.

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)

func validateCardNumber(card string) error {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(card)
	if !digitsOnly(cleaned) {
		return fmt.Errorf("card number must contain only numbers")
	}
	if len(cleaned) != 16 {
		return fmt.Errorf("card number must be exactly 16 digits")
	}
	return nil
}

func validateCVV(cvv string) error {
	if !digitsOnly(cvv) {
		return fmt.Errorf("CVV must contain only numbers")
	}
	if len(cvv) != 3 {
		return fmt.Errorf("CVV must be exactly 3 digits")
	}
	return nil
}

// validateExpiry checks the MM/YY format and that the card has not expired
// as of now.
func validateExpiry(expiry string, now time.Time) error {
	m := expiryPattern.FindStringSubmatch(expiry)
	if m == nil {
		return fmt.Errorf("expiry date must be in MM/YY format (e.g., 12/25)")
	}

	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	year += 2000

	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return fmt.Errorf("card has expired")
	}

	return nil
}

func validateCardholder(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("cardholder name cannot be empty")
	}
	return nil
}

// cardLast4 returns the last four digits of a validated card number.
func cardLast4(card string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(card)
	if len(cleaned) < 4 {
		return cleaned
	}
	return cleaned[len(cleaned)-4:]
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
