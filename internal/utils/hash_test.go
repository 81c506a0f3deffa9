package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("joepassword1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "joepassword1" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}

	ok, err := ComparePassword(hash, "joepassword1")
	if err != nil || !ok {
		t.Errorf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = ComparePassword(hash, "wrongpassword")
	if err != nil || ok {
		t.Errorf("expected mismatch without error, got ok=%v err=%v", ok, err)
	}
}

func TestHashPassword_InvalidCost(t *testing.T) {
	if _, err := HashPassword("joepassword1", bcrypt.MaxCost+1); err == nil {
		t.Error("expected error for invalid cost")
	}
}

func TestComparePassword_MalformedHash(t *testing.T) {
	ok, err := ComparePassword("not-a-hash", "joepassword1")
	if err == nil {
		t.Error("expected error for malformed hash")
	}
	if ok {
		t.Error("malformed hash must not match")
	}
}

func TestHashPassword_MultiByteBeyondBcryptLimit(t *testing.T) {
	// 20 characters, 80 bytes
	password := strings.Repeat("😀", 20)

	hash, err := HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := ComparePassword(hash, password)
	if err != nil || !ok {
		t.Errorf("expected match, got ok=%v err=%v", ok, err)
	}

	// differs only past byte 72
	other := strings.Repeat("😀", 19) + "😁"
	ok, err = ComparePassword(hash, other)
	if err != nil || ok {
		t.Errorf("expected mismatch without error, got ok=%v err=%v", ok, err)
	}
}
