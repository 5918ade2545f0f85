// Package phone normalizes and validates international phone numbers.
package phone

import (
	"errors"
	"strings"
)

const (
	minDigits = 10
	maxDigits = 15
)

var (
	ErrInvalidFormat          = errors.New("phone number must start with + and contain 10-15 digits")
	ErrUnsupportedCountryCode = errors.New("unsupported country code")
)

// Canonicalize strips everything except digits and a leading + and checks
// the result is a valid international number. Returns the canonical
// +<digits> form.
func Canonicalize(raw string) (string, error) {
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if !strings.HasPrefix(cleaned, "+") {
		return "", ErrInvalidFormat
	}

	digits := len(cleaned) - 1
	if digits < minDigits || digits > maxDigits {
		return "", ErrInvalidFormat
	}

	return cleaned, nil
}

// Validator canonicalizes numbers and optionally restricts them to an
// allow-list of country codes. An empty list allows every country.
type Validator struct {
	allowedCodes []string
}

func NewValidator(allowedCodes []string) *Validator {
	return &Validator{allowedCodes: allowedCodes}
}

func (v *Validator) Validate(raw string) (string, error) {
	cleaned, err := Canonicalize(raw)
	if err != nil {
		return "", err
	}

	if len(v.allowedCodes) == 0 {
		return cleaned, nil
	}

	// Country codes are 1-3 digits; match the longest allow-listed prefix.
	digits := cleaned[1:]
	for size := 3; size >= 1; size-- {
		if len(digits) < size {
			continue
		}
		for _, code := range v.allowedCodes {
			if len(code) == size && strings.HasPrefix(digits, code) {
				return cleaned, nil
			}
		}
	}

	return "", ErrUnsupportedCountryCode
}
