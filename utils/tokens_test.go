package utils

import (
	"testing"
	"time"
)

func TestNewManagerRequiresKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Error("expected an error for an empty signing key")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager, err := NewManager("unit-test-key")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	token, err := manager.NewAccessToken(42, time.Minute)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	claims, err := manager.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
}

func TestParseRejectsForeignKey(t *testing.T) {
	signer, _ := NewManager("key-one")
	verifier, _ := NewManager("key-two")

	token, err := signer.NewAccessToken(1, time.Minute)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	if _, err := verifier.ParseAccessToken(token); err == nil {
		t.Error("token signed with a different key must not parse")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	manager, _ := NewManager("unit-test-key")

	token, err := manager.NewAccessToken(1, -time.Minute)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	if _, err := manager.ParseAccessToken(token); err == nil {
		t.Error("expired token must not parse")
	}
}

func TestNewRefreshToken(t *testing.T) {
	manager, _ := NewManager("unit-test-key")

	first, err := manager.NewRefreshToken()
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if len(first) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(first))
	}

	second, _ := manager.NewRefreshToken()
	if first == second {
		t.Error("consecutive refresh tokens must differ")
	}
}
