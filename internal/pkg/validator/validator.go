package validator

import (
	"regexp"
	"strings"
)

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Employee IDs are short uppercase alphanumeric codes, e.g. "VY001".
var employeeIDRegex = regexp.MustCompile(`^[A-Z][A-Z0-9-]{2,19}$`)

func IsValidEmployeeID(id string) bool {
	return employeeIDRegex.MatchString(id)
}

// Phone number validation: digits only after stripping spaces, dashes
// and an optional leading +, ten to thirteen digits long.
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsValidPhoneNumber(phone string) bool {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	phone = strings.TrimPrefix(phone, "+")
	if len(phone) < 10 || len(phone) > 13 {
		return false
	}
	return numericRegex.MatchString(phone)
}
