package commitment

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, fmt.Errorf("read error") }

func TestGenerateKeyDefaults(t *testing.T) {
	key, err := Scheme{}.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	if len(key) != MinKeySize {
		t.Fatalf("expected %d byte key, got %d", MinKeySize, len(key))
	}
	if len(key.String()) != 2*MinKeySize {
		t.Fatalf("expected %d hex chars, got %d", 2*MinKeySize, len(key.String()))
	}
}

func TestGenerateKeyUsesReader(t *testing.T) {
	want := sequentialKey()
	key, err := Scheme{Random: bytes.NewReader(want)}.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	if !bytes.Equal(key, want) {
		t.Fatalf("expected key %s, got %s", want, key)
	}
}

func TestGenerateKeyLargerSize(t *testing.T) {
	key, err := Scheme{KeySize: 64}.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	if len(key) != 64 {
		t.Fatalf("expected 64 byte key, got %d", len(key))
	}
}

func TestGenerateKeyRejectsShortKeys(t *testing.T) {
	if _, err := (Scheme{KeySize: 16}).GenerateKey(); err == nil {
		t.Fatal("expected error for a 128-bit key")
	}
}

func TestGenerateKeyReaderFailure(t *testing.T) {
	_, err := Scheme{Random: errReader{}}.GenerateKey()
	if !errors.Is(err, ErrRandomSourceUnavailable) {
		t.Fatalf("expected ErrRandomSourceUnavailable, got %v", err)
	}
}

func TestGenerateKeyShortRead(t *testing.T) {
	_, err := Scheme{Random: bytes.NewReader([]byte{1, 2, 3})}.GenerateKey()
	if !errors.Is(err, ErrRandomSourceUnavailable) {
		t.Fatalf("expected ErrRandomSourceUnavailable, got %v", err)
	}
}

func TestGenerateKeyUnique(t *testing.T) {
	const sessions = 10_000

	seen := make(map[string]struct{}, sessions)
	for i := 0; i < sessions; i++ {
		key, err := Scheme{}.GenerateKey()
		if err != nil {
			t.Fatalf("generate key: %v", err)
		}

		if _, found := seen[key.String()]; found {
			t.Fatalf("duplicate key after %d sessions: %s", i, key)
		}
		seen[key.String()] = struct{}{}
	}
}

func TestParseKey(t *testing.T) {
	key, err := ParseKey("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	if err != nil {
		t.Fatalf("parse key: %v", err)
	}
	if !bytes.Equal(key, sequentialKey()) {
		t.Fatalf("expected sequential key, got %s", key)
	}

	for _, bad := range []string{"", "xyz", "abc"} {
		if _, err := ParseKey(bad); err == nil {
			t.Fatalf("expected error parsing %q", bad)
		}
	}
}
