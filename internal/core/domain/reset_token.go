package domain

import "time"

// ResetTokenTTL is the validity window of a password-reset token, measured
// from its creation time. Expiry is evaluated lazily at lookup time; there
// is no background sweeper.
const ResetTokenTTL = 10 * time.Minute

// PasswordResetToken represents one outstanding reset request. The ID is an
// unguessable identifier embedded in the emailed reset link. A token is
// single-use: it is deleted on successful consumption and on expiry
// detection, and is never extended or reused.
type PasswordResetToken struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ExpiresAt returns the instant after which the token is no longer valid.
func (t *PasswordResetToken) ExpiresAt() time.Time {
	return t.CreatedAt.Add(ResetTokenTTL)
}

// Expired reports whether the token has passed its TTL at the given instant.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt())
}
