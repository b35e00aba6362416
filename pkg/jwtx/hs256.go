package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// HS256 signs and verifies session cookies with a shared secret.
type HS256 struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewHS256 returns an HS256 signer/verifier. The secret must not be empty.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty signing secret")
	}
	return &HS256{secret: secret, issuer: issuer, now: time.Now}, nil
}

// WithClock overrides the clock used for expiry checks. Tests only.
func (h *HS256) WithClock(now func() time.Time) *HS256 {
	h.now = now
	return h
}

// Sign signs session claims into a compact JWT.
func (h *HS256) Sign(c SessionClaims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := tok.SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify validates a JWT and gives you back the claims if it's legit.
func (h *HS256) Verify(token string) (SessionClaims, error) {
	var claims SessionClaims

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		// Expiry is checked below against our own clock.
		jwt.WithoutClaimsValidation(),
	)
	_, err := parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		// Also covers tokens signed with any method other than HS256.
		return SessionClaims{}, ErrInvalidSig
	default:
		return SessionClaims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return SessionClaims{}, err
	}
	if err := claims.ValidateExpiry(h.now()); err != nil {
		return SessionClaims{}, err
	}
	if claims.SID == "" {
		return SessionClaims{}, ErrMissingSID
	}
	return claims, nil
}
