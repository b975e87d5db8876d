package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for every operation outcome the handlers translate to an
// HTTP status. Services never touch status codes themselves.
var (
	ErrEmployeeNotFound = errors.New("no employee found with this orgid and empid")
	ErrEmployeeNoEmail  = errors.New("employee email not found")
	ErrEmployeeExists   = errors.New("employee with this empid already exists in this organization")

	ErrOrganizationNotFound = errors.New("organization not found")
	ErrClientExists         = errors.New("client with this clientid already exists in this organization")
	ErrClientNotFound       = errors.New("invalid clientid for this organization")

	ErrOTPNotFound = errors.New("OTP not found or expired")
	ErrOTPExpired  = errors.New("OTP expired")
	ErrOTPMismatch = errors.New("invalid OTP")

	ErrNoteNotFound = errors.New("no matching note found to update")
)

// ValidationError reports required request fields that are missing or
// malformed, by their wire names.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// NewValidationError builds a ValidationError for the given wire field names.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
