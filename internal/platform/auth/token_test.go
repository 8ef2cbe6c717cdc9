package auth

import (
	"strings"
	"testing"
	"time"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestIssueAndParseToken(t *testing.T) {
	tokenStr, err := IssueToken(testSecret, 42, "patient", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}
	if tokenStr == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ParseToken(testSecret, tokenStr)
	if err != nil {
		t.Fatalf("ParseToken() error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Role != "patient" {
		t.Errorf("expected role patient, got %s", claims.Role)
	}
	if claims.Subject != "42" {
		t.Errorf("expected subject 42, got %s", claims.Subject)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tokenStr, err := IssueToken(testSecret, 42, "patient", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}

	if _, err := ParseToken([]byte("another-secret-another-secret-xx"), tokenStr); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	tokenStr, err := IssueToken(testSecret, 42, "patient", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}

	if _, err := ParseToken(testSecret, tokenStr); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken(testSecret, "not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestIssueToken_ThreeSegments(t *testing.T) {
	tokenStr, err := IssueToken(testSecret, 1, "admin", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}
	if got := len(strings.Split(tokenStr, ".")); got != 3 {
		t.Errorf("expected 3 JWT segments, got %d", got)
	}
}
