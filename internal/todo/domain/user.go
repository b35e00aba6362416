package domain

import "time"

// User is a registered account. PasswordHash is a PHC argon2id string, or a
// bcrypt digest for rows imported from older deployments.
type User struct {
	ID           string // ULID
	Username     string // unique, case sensitive
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Principal is the user snapshot a session carries and the API returns.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Principal returns the public snapshot of u.
func (u User) Principal() Principal {
	return Principal{ID: u.ID, Username: u.Username, Name: u.Name}
}

// IsZero reports whether p holds no user.
func (p Principal) IsZero() bool {
	return p.ID == ""
}
