// Package validate holds the input checks run by the admin commands before a
// write is sent to the remote API.
package validate

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	passwordRe = regexp.MustCompile(`^[a-zA-Z\d@$!%*?&]{8,}$`)
)

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Password requires at least 8 characters with one uppercase letter, one
// lowercase letter, and one digit.
func Password(s string) bool {
	if !passwordRe.MatchString(s) {
		return false
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return lower && upper && digit
}

// URL reports whether s parses as an absolute URL.
func URL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// Required reports whether s is non-blank.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

// MinLength reports whether s has at least n non-blank-trimmed characters.
func MinLength(s string, n int) bool {
	return len(strings.TrimSpace(s)) >= n
}

// Numeric reports whether s parses as a number.
func Numeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// PositiveNumber reports whether v is strictly positive.
func PositiveNumber(v float64) bool {
	return v > 0
}

// InRange reports whether min <= v <= max.
func InRange(v, min, max float64) bool {
	return v >= min && v <= max
}
