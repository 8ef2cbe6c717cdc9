package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("expected hash to differ from plaintext")
	}

	if !CheckPassword(hash, "s3cret-pass") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Error("expected wrong password to fail")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	h2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if h1 == h2 {
		t.Error("expected distinct hashes for the same password")
	}
}
