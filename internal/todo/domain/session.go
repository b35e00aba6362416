package domain

import "time"

// Session is a server-side login record. Key is the fingerprint of the
// opaque token, never the token itself.
type Session struct {
	Key       string    `json:"key"`
	Principal Principal `json:"principal"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
