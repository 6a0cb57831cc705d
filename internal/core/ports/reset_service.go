package ports

import "context"

// CompleteResetInput carries the fields submitted on the reset form.
type CompleteResetInput struct {
	TokenID         string
	Password        string
	ConfirmPassword string
}

// ResetService coordinates the password-reset flow: issuing tokens, gating
// the confirmation page, and consuming a token to update a password.
type ResetService interface {
	// RequestReset issues a new reset token for the account owning email and
	// enqueues the reset link for delivery. It returns the token id so the
	// caller can route to the confirmation view.
	RequestReset(ctx context.Context, email string) (string, error)

	// ConfirmTokenExists reports whether a ledger entry exists for the id.
	// It deliberately does not evaluate expiry.
	ConfirmTokenExists(ctx context.Context, tokenID string) (bool, error)

	// CompleteReset validates the submission as a batch and, when clean,
	// consumes the token and updates the user's password.
	CompleteReset(ctx context.Context, input CompleteResetInput) error
}
