package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

const sessionCookieName = "portfolio_admin_session"
const minSecretLen = 32

// adminSubject is the only identity this site knows: the portfolio owner.
const adminSubject = "admin"

// SessionCookieName returns the admin session cookie name.
func SessionCookieName() string {
	return sessionCookieName
}

// CreateAdminToken builds a signed session token for the admin identity.
func CreateAdminToken(secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(adminSubject))
	sig := hex.EncodeToString(mac.Sum(nil))
	return base64.URLEncoding.EncodeToString([]byte(adminSubject)) + "." + sig
}

// VerifyAdminToken checks the token's signature and subject.
func VerifyAdminToken(token string, secret []byte) error {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return errors.New("invalid token format")
	}
	payload, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return err
	}
	if string(payload) != adminSubject {
		return errors.New("unknown subject")
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return errors.New("invalid signature")
	}
	return nil
}

// CheckPassword compares a login attempt against the configured admin
// password in constant time.
func CheckPassword(attempt, configured string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(attempt), []byte(configured)) == 1
}

// SessionSecretBytes derives the signing key from a secret string,
// zero-padding to a 32-byte minimum.
func SessionSecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}
