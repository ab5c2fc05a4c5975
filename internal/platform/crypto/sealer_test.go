package crypto

import (
	"encoding/base64"
	"strings"
	"testing"
)

func testKey() string {
	return base64.StdEncoding.EncodeToString([]byte(strings.Repeat("k", 32)))
}

func TestSealOpenRoundTrip(t *testing.T) {
	s, err := NewSealer(testKey())
	if err != nil {
		t.Fatalf("NewSealer: %v", err)
	}
	sealed, err := s.Seal("JBSWY3DPEHPK3PXP")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if sealed == "JBSWY3DPEHPK3PXP" {
		t.Fatalf("sealed value should differ from plaintext")
	}
	got, err := s.Open(sealed)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got != "JBSWY3DPEHPK3PXP" {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestSealWithoutKeyPassesThrough(t *testing.T) {
	s, err := NewSealer("")
	if err != nil {
		t.Fatalf("NewSealer: %v", err)
	}
	sealed, err := s.Seal("secret")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if sealed != "secret" {
		t.Fatalf("expected passthrough, got %q", sealed)
	}
}

func TestNewSealerRejectsShortKey(t *testing.T) {
	if _, err := NewSealer(base64.StdEncoding.EncodeToString([]byte("short"))); err == nil {
		t.Fatalf("expected error for short key")
	}
}

func TestOpenRejectsGarbage(t *testing.T) {
	s, err := NewSealer(testKey())
	if err != nil {
		t.Fatalf("NewSealer: %v", err)
	}
	if _, err := s.Open(base64.StdEncoding.EncodeToString([]byte("xx"))); err == nil {
		t.Fatalf("expected error for truncated ciphertext")
	}
}
