package domain

import (
	"errors"
	"strings"
)

// MinPasswordLength is the minimum accepted password length, applied to both
// registration and password resets.
const MinPasswordLength = 5

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password so a caller cannot tell which part was invalid.
var ErrInvalidCredentials = errors.New("invalid username or password")

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrTokenNotFound = errors.New("reset token not found")
var ErrSessionNotFound = errors.New("session not found")

// Violation codes reported by the validation pipeline.
const (
	CodeUsernameTaken    = "username_taken"
	CodeEmailTaken       = "email_taken"
	CodePasswordTooShort = "password_too_short"
	CodePasswordMismatch = "password_mismatch"
	CodeResetLinkExpired = "reset_link_expired"
)

// Violation is a single user-correctable rule failure.
type Violation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors is the full batch of violations from one operation.
// Rules are evaluated collectively, not short-circuited, so the caller can
// display every applicable problem at once.
type ValidationErrors []Violation

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, violation := range v {
		msgs = append(msgs, violation.Message)
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether the batch contains a violation with the given code.
func (v ValidationErrors) Has(code string) bool {
	for _, violation := range v {
		if violation.Code == code {
			return true
		}
	}
	return false
}

var (
	ViolationUsernameTaken    = Violation{Code: CodeUsernameTaken, Message: "username already exists"}
	ViolationEmailTaken       = Violation{Code: CodeEmailTaken, Message: "an account with this email already exists"}
	ViolationPasswordTooShort = Violation{Code: CodePasswordTooShort, Message: "password must be at least 5 characters"}
	ViolationPasswordMismatch = Violation{Code: CodePasswordMismatch, Message: "passwords do not match"}
	ViolationResetLinkExpired = Violation{Code: CodeResetLinkExpired, Message: "reset link has expired"}
)
