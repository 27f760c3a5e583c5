package auth

import (
	"strings"
	"testing"
)

func TestCreateAndVerifyAdminToken(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	token := CreateAdminToken(secret)
	if err := VerifyAdminToken(token, secret); err != nil {
		t.Errorf("expected valid token, got %v", err)
	}
}

func TestVerifyAdminToken_WrongSecret(t *testing.T) {
	token := CreateAdminToken(SessionSecretBytes("secret-a"))
	if err := VerifyAdminToken(token, SessionSecretBytes("secret-b")); err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}

func TestVerifyAdminToken_Tampered(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	token := CreateAdminToken(secret)

	cases := []string{
		"no-dot-in-here",
		"!!!." + strings.SplitN(token, ".", 2)[1], // invalid base64 payload
		token + "ff",                              // signature suffix
		"",
	}
	for _, c := range cases {
		if err := VerifyAdminToken(c, secret); err == nil {
			t.Errorf("expected verification of %q to fail", c)
		}
	}
}

func TestCheckPassword(t *testing.T) {
	if !CheckPassword("hunter2", "hunter2") {
		t.Error("expected matching password to pass")
	}
	if CheckPassword("wrong", "hunter2") {
		t.Error("expected wrong password to fail")
	}
	// Unset admin password must never authenticate, even for "".
	if CheckPassword("", "") {
		t.Error("expected empty configured password to reject everything")
	}
}

func TestSessionSecretBytes_PadsShortSecrets(t *testing.T) {
	b := SessionSecretBytes("short")
	if len(b) < 32 {
		t.Errorf("expected at least 32 bytes, got %d", len(b))
	}
	long := strings.Repeat("x", 64)
	if got := SessionSecretBytes(long); len(got) != 64 {
		t.Errorf("expected long secret to pass through, got %d bytes", len(got))
	}
}
