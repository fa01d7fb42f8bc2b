package cachekey

import (
	"regexp"
	"testing"
)

func TestDeriveURL(t *testing.T) {
	key1, err := Derive("https://example.com/ep1.mp3")
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}

	if len(key1) != 32 {
		t.Errorf("key length = %d, want 32", len(key1))
	}
	if !regexp.MustCompile(`^[0-9a-f]{32}$`).MatchString(key1) {
		t.Errorf("key %q is not lowercase hex", key1)
	}

	// Same URL must always derive the same key
	key2, err := Derive("https://example.com/ep1.mp3")
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}
	if key1 != key2 {
		t.Errorf("same URL derived different keys: %q vs %q", key1, key2)
	}

	// Different URLs must derive different keys
	other, err := Derive("https://example.com/ep2.mp3")
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}
	if other == key1 {
		t.Errorf("different URLs derived the same key %q", key1)
	}
}

func TestDeriveCaseSensitive(t *testing.T) {
	lower, err := Derive("http://example.com/X")
	if err != nil {
		t.Fatal(err)
	}
	upper, err := Derive("http://example.com/x")
	if err != nil {
		t.Fatal(err)
	}
	if lower == upper {
		t.Error("URL hashing should be case-sensitive")
	}
}

func TestDerivePassthrough(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
	}{
		{"plain key", "plain-key-123"},
		{"hex key", "0123456789abcdef0123456789abcdef"},
		{"scheme-less host", "example.com/ep1.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Derive(tt.identifier)
			if err != nil {
				t.Fatalf("Derive() error = %v", err)
			}
			if got != tt.identifier {
				t.Errorf("Derive(%q) = %q, want passthrough", tt.identifier, got)
			}
		})
	}
}

func TestDeriveEmpty(t *testing.T) {
	for _, id := range []string{"", "   ", "\t\n"} {
		if _, err := Derive(id); err == nil {
			t.Errorf("Derive(%q) should fail", id)
		}
	}
}
