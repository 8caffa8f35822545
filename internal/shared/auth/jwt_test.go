package auth

import (
	"testing"
	"time"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	token, err := issuer.Sign("user-123", "jane@example.com", "Jane", "https://img.example.com/jane.png")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Errorf("subject = %q, want %q", claims.Subject, "user-123")
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("email = %q, want %q", claims.Email, "jane@example.com")
	}
	if claims.Name != "Jane" {
		t.Errorf("name = %q, want %q", claims.Name, "Jane")
	}
	if claims.Picture != "https://img.example.com/jane.png" {
		t.Errorf("picture = %q", claims.Picture)
	}
}

func TestSignRequiresSubject(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	if _, err := issuer.Sign("", "jane@example.com", "Jane", ""); err == nil {
		t.Fatal("expected error for empty subject")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewIssuer("secret-a", time.Hour).Sign("user-123", "", "", "")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewIssuer("secret-b", time.Hour).Verify(token); err != ErrInvalidToken {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)
	// NewIssuer clamps non-positive expiry, so build one directly.
	issuer.expiry = -time.Minute

	token, err := issuer.Sign("user-123", "", "", "")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := issuer.Verify(token); err != ErrInvalidToken {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := issuer.Verify(raw); err != ErrInvalidToken {
			t.Fatalf("Verify(%q) err = %v, want ErrInvalidToken", raw, err)
		}
	}
}
