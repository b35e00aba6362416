package session

import (
	"net/http"
	"time"
)

// DefaultCookieName is used when no cookie name is configured.
const DefaultCookieName = "todo.sid"

// Cookie describes how the session cookie is written. In production the
// browser client lives on another origin, so the cookie must be
// SameSite=None and therefore Secure.
type Cookie struct {
	Name     string
	Secure   bool
	SameSite http.SameSite
}

// NewCookie returns the cookie policy for the environment.
func NewCookie(name string, production bool) Cookie {
	if name == "" {
		name = DefaultCookieName
	}
	if production {
		return Cookie{Name: name, Secure: true, SameSite: http.SameSiteNoneMode}
	}
	return Cookie{Name: name, Secure: false, SameSite: http.SameSiteLaxMode}
}

// Read returns the raw cookie value, or "" when absent.
func (c Cookie) Read(r *http.Request) string {
	ck, err := r.Cookie(c.Name)
	if err != nil {
		return ""
	}
	return ck.Value
}

// Write sets the session cookie to expire together with the session.
func (c Cookie) Write(w http.ResponseWriter, value string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   max(int(time.Until(expiresAt).Seconds()), 1),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}

// Clear tells the browser to drop the session cookie.
func (c Cookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}
