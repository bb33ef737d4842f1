// Package hasher turns plaintext passwords into the digests stored for users.
package hasher

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Mode selects how a password digest is derived.
type Mode string

const (
	// ModeHMAC stores hex(HMAC-SHA256(secret, password)). Digests are
	// deterministic across users, which keeps compatibility with existing rows.
	ModeHMAC Mode = "hmac"
	// ModeBcrypt stores bcrypt(hex(HMAC-SHA256(secret, password))), adding a
	// random per-record salt on top of the shared secret.
	ModeBcrypt Mode = "bcrypt"
)

var (
	// ErrEmptySecret is returned when no hash secret is configured.
	ErrEmptySecret = errors.New("hash secret must not be empty")
	// ErrUnknownMode is returned for an unsupported hash mode.
	ErrUnknownMode = errors.New("unknown hash mode")
)

// ParseMode converts a configuration value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeHMAC, ModeBcrypt:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// KeyedHash returns the hex-encoded HMAC-SHA256 of message keyed by secret.
func KeyedHash(secret, message string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

// Hasher derives password digests from a shared secret.
type Hasher struct {
	secret string
	mode   Mode
	cost   int
}

// New creates a Hasher. An empty secret is rejected.
func New(secret string, mode Mode) (*Hasher, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	return &Hasher{
		secret: secret,
		mode:   mode,
		cost:   bcrypt.DefaultCost,
	}, nil
}

// Hash returns the digest to store for password.
func (h *Hasher) Hash(password string) (string, error) {
	digest := KeyedHash(h.secret, password)
	if h.mode == ModeHMAC {
		return digest, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(digest), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hashed), nil
}
