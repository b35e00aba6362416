package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrPasswordMismatch is returned when the plaintext does not produce the digest.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrInvalidHash is returned when the stored digest cannot be parsed.
	ErrInvalidHash = errors.New("invalid hash format")
)

const argon2Prefix = "$argon2id$"

// HashPassword generates a PHC-format Argon2id hash string including salt and parameters.
// Every call draws a fresh salt, so hashing the same password twice yields two
// different digests that both verify.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey(
		[]byte(password+GetPepper()),
		salt,
		iterations,
		memory,
		parallelism,
		keyLength,
	)

	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword compares a plaintext password against a stored digest. Argon2id
// PHC strings are the native format. Bcrypt digests ($2a$, $2b$, $2y$) are also
// accepted so accounts imported from the previous deployment can still log in;
// those were never peppered.
func VerifyPassword(password, encodedHash string) error {
	switch {
	case strings.HasPrefix(encodedHash, argon2Prefix):
		return verifyArgon2id(password, encodedHash)
	case isBcrypt(encodedHash):
		err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidHash, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown algorithm", ErrInvalidHash)
	}
}

// NeedsRehash reports whether a digest should be replaced by a fresh Argon2id
// hash after the next successful verification.
func NeedsRehash(encodedHash string) bool {
	if !strings.HasPrefix(encodedHash, argon2Prefix) {
		return true
	}
	params, _, _, err := parseArgon2id(encodedHash)
	if err != nil {
		return true
	}
	return params != fmt.Sprintf("m=%d,t=%d,p=%d", memory, iterations, parallelism)
}

func verifyArgon2id(password, encodedHash string) error {
	params, salt, expected, err := parseArgon2id(encodedHash)
	if err != nil {
		return err
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(params, "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("%w: failed to parse parameters: %v", ErrInvalidHash, err)
	}

	computed := argon2.IDKey(
		[]byte(password+GetPepper()),
		salt,
		iters,
		mem,
		par,
		uint32(len(expected)), // #nosec G115 - If this overflows we have bigger problems
	)

	if subtle.ConstantTimeCompare(computed, expected) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}

// parseArgon2id splits $argon2id$v=19$m=X,t=Y,p=Z$salt$hash into its
// parameter string, salt and hash.
func parseArgon2id(encodedHash string) (string, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return "", nil, nil, fmt.Errorf("%w: expected 6 parts", ErrInvalidHash)
	}
	if parts[1] != "argon2id" {
		return "", nil, nil, fmt.Errorf("%w: not argon2id", ErrInvalidHash)
	}
	if parts[2] != "v=19" {
		return "", nil, nil, fmt.Errorf("%w: wrong version", ErrInvalidHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return "", nil, nil, fmt.Errorf("%w: failed to decode salt: %v", ErrInvalidHash, err)
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return "", nil, nil, fmt.Errorf("%w: failed to decode hash: %v", ErrInvalidHash, err)
	}
	return parts[3], salt, hash, nil
}

func isBcrypt(encodedHash string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(encodedHash, prefix) {
			return true
		}
	}
	return false
}
