package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrIssuer     = errors.New("jwtx: issuer mismatch")
	ErrExpired    = errors.New("jwtx: token expired")
	ErrMissingSID = errors.New("jwtx: missing session id")
)

// SessionClaims is the payload of a session cookie. The SID is the opaque
// session token; the server-side record stays the source of truth, the
// signature only lets us drop forged cookies without a store round trip.
type SessionClaims struct {
	jwt.RegisteredClaims

	SID string `json:"sid"`
}

// NewSessionClaims builds claims for a session issued at now and expiring at
// expiresAt.
func NewSessionClaims(sid, issuer string, now, expiresAt time.Time) SessionClaims {
	return SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		SID: sid,
	}
}

// ValidateIssuer checks the issuer claim. An empty expected issuer accepts anything.
func (c *SessionClaims) ValidateIssuer(expected string) error {
	if expected == "" || c.Issuer == expected {
		return nil
	}
	return ErrIssuer
}

// ValidateExpiry checks exp against now.
func (c *SessionClaims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt == nil || !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}
	return nil
}
