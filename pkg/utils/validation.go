package utils

import "regexp"

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates email address format
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// RequiredFields collects the names of fields whose value is empty. Numeric
// ids count as missing when zero, matching the registration contract where
// ids start at 1.
type RequiredFields struct {
	missing []string
}

func (r *RequiredFields) String(name, value string) *RequiredFields {
	if value == "" {
		r.missing = append(r.missing, name)
	}
	return r
}

func (r *RequiredFields) ID(name string, value uint) *RequiredFields {
	if value == 0 {
		r.missing = append(r.missing, name)
	}
	return r
}

// Email records the field when the value is empty or not a plausible email
// address.
func (r *RequiredFields) Email(name, value string) *RequiredFields {
	if !ValidateEmail(value) {
		r.missing = append(r.missing, name)
	}
	return r
}

// Missing returns the collected field names, nil when all were present.
func (r *RequiredFields) Missing() []string {
	return r.missing
}
