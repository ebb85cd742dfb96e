package jwt

import (
	"errors"
	"testing"
)

const testSecret = "test_secret_key_1234567890"

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("user-123", testSecret, 30)
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateSessionToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateSessionToken() error = %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("expected user id %q, got %q", "user-123", claims.UserID)
	}
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := GenerateSessionToken("user-123", testSecret, 30)
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	_, err = ValidateSessionToken(token, "another_secret")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestSessionTokenExpired(t *testing.T) {
	token, err := GenerateSessionToken("user-123", testSecret, -1)
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	_, err = ValidateSessionToken(token, testSecret)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestSessionTokenGarbage(t *testing.T) {
	_, err := ValidateSessionToken("not.a.token", testSecret)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
