package account

import (
	"regexp"
	"strings"
)

// emailPattern is intentionally a loose local@domain.tld shape check, not
// full RFC validation.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	maxNameLen    = 255
	maxEmailLen   = 255
	maxPhoneLen   = 20
	maxAddressLen = 500
	maxRegionLen  = 100
)

func validateCreate(in CreateInput) error {
	if strings.TrimSpace(in.FirstName) == "" {
		return &InvalidInputError{Reason: "first name is required"}
	}
	if strings.TrimSpace(in.LastName) == "" {
		return &InvalidInputError{Reason: "last name is required"}
	}
	if strings.TrimSpace(in.Email) == "" {
		return &InvalidInputError{Reason: "email is required"}
	}
	if !emailPattern.MatchString(in.Email) {
		return &InvalidInputError{Reason: "invalid email format"}
	}
	return validateLengths(in.FirstName, in.LastName, in.Email,
		in.PhoneNumber, in.Address, in.City, in.State, in.Country)
}

func validateUpdate(fields UpdateFields) error {
	if fields.FirstName != nil && strings.TrimSpace(*fields.FirstName) == "" {
		return &InvalidInputError{Reason: "first name cannot be empty"}
	}
	if fields.LastName != nil && strings.TrimSpace(*fields.LastName) == "" {
		return &InvalidInputError{Reason: "last name cannot be empty"}
	}
	if fields.Email != nil {
		if strings.TrimSpace(*fields.Email) == "" {
			return &InvalidInputError{Reason: "email cannot be empty"}
		}
		if !emailPattern.MatchString(*fields.Email) {
			return &InvalidInputError{Reason: "invalid email format"}
		}
	}
	return validateLengths(
		strDeref(fields.FirstName), strDeref(fields.LastName), strDeref(fields.Email),
		strDeref(fields.PhoneNumber), strDeref(fields.Address),
		strDeref(fields.City), strDeref(fields.State), strDeref(fields.Country))
}

func validateLengths(first, last, email, phone, address, city, state, country string) error {
	if len(first) > maxNameLen {
		return &InvalidInputError{Reason: "first name is too long"}
	}
	if len(last) > maxNameLen {
		return &InvalidInputError{Reason: "last name is too long"}
	}
	if len(email) > maxEmailLen {
		return &InvalidInputError{Reason: "email is too long"}
	}
	if len(phone) > maxPhoneLen {
		return &InvalidInputError{Reason: "phone number is too long"}
	}
	if len(address) > maxAddressLen {
		return &InvalidInputError{Reason: "address is too long"}
	}
	if len(city) > maxRegionLen {
		return &InvalidInputError{Reason: "city is too long"}
	}
	if len(state) > maxRegionLen {
		return &InvalidInputError{Reason: "state is too long"}
	}
	if len(country) > maxRegionLen {
		return &InvalidInputError{Reason: "country is too long"}
	}
	return nil
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
