package domain

import "time"

// Session binds an authenticated user to an opaque session id. Sessions are
// explicit objects returned by login and passed through subsequent calls;
// there is no ambient "current user".
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
