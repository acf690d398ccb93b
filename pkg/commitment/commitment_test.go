package commitment

import (
	"bytes"
	"errors"
	"testing"
)

func sequentialKey() Key {
	key := make(Key, 32)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

const rockDigest = "d43d1b772ce0b2599ac738ed377f40d7e0360dadc6a1514d5de251f8b285a393"

func TestCommitKnownDigest(t *testing.T) {
	if got := Commit(sequentialKey(), "rock").String(); got != rockDigest {
		t.Fatalf("expected digest %s, got %s", rockDigest, got)
	}
}

func TestCommitIsDeterministic(t *testing.T) {
	key := sequentialKey()
	if Commit(key, "paper") != Commit(key, "paper") {
		t.Fatal("expected the same digest for the same key and move")
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	scheme := Scheme{}
	for _, move := range []string{"rock", "paper", "scissors", "lizard", "spock", "", "ножницы"} {
		key, err := scheme.GenerateKey()
		if err != nil {
			t.Fatalf("generate key: %v", err)
		}

		digest := Commit(key, move)
		if !Verify(key, move, digest) {
			t.Fatalf("expected %q to verify", move)
		}
		if err := Check(key, move, digest); err != nil {
			t.Fatalf("check %q: %v", move, err)
		}
	}
}

func TestVerifyRejectsAlteredDigest(t *testing.T) {
	key := sequentialKey()
	digest := Commit(key, "rock")

	for i := 0; i < DigestSize*8; i++ {
		altered := digest
		altered[i/8] ^= 1 << (i % 8)

		if Verify(key, "rock", altered) {
			t.Fatalf("expected digest with bit %d flipped to be rejected", i)
		}
	}
}

func TestVerifyRejectsAlteredMove(t *testing.T) {
	key := sequentialKey()
	move := []byte("scissors")
	digest := Commit(key, string(move))

	for i := 0; i < len(move)*8; i++ {
		altered := bytes.Clone(move)
		altered[i/8] ^= 1 << (i % 8)

		if Verify(key, string(altered), digest) {
			t.Fatalf("expected move with bit %d flipped to be rejected", i)
		}
	}
}

func TestVerifyRejectsOtherKey(t *testing.T) {
	key := sequentialKey()
	digest := Commit(key, "rock")

	other := bytes.Clone(key)
	other[0] ^= 1

	err := Check(other, "rock", digest)
	if !errors.Is(err, ErrCommitmentMismatch) {
		t.Fatalf("expected ErrCommitmentMismatch, got %v", err)
	}
}

func TestParseDigest(t *testing.T) {
	digest, err := ParseDigest(rockDigest)
	if err != nil {
		t.Fatalf("parse digest: %v", err)
	}
	if digest != Commit(sequentialKey(), "rock") {
		t.Fatal("expected parsed digest to match the commitment")
	}

	for _, bad := range []string{"", "zz", rockDigest[:62], rockDigest + "00"} {
		if _, err := ParseDigest(bad); err == nil {
			t.Fatalf("expected error parsing %q", bad)
		}
	}
}
