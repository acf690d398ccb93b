// Copyright © 2026 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package commitment lets a party fix a move before the other side plays
// and prove afterwards that it did not change it.
//
// The committing party generates a fresh secret Key, publishes the
// HMAC-SHA256 Digest of its move under that key, and only reveals the key
// and the move once the other side has played. Anyone can then recompute
// the digest with Verify.
package commitment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrCommitmentMismatch is returned when a revealed move and key don't
// reproduce the digest that was committed to.
var ErrCommitmentMismatch = errors.New("commitment mismatch")

// DigestSize is the size of a Digest in bytes.
const DigestSize = sha256.Size

// Digest is the HMAC-SHA256 of a move under a secret Key.
type Digest [DigestSize]byte

// String returns the Digest as 64 lowercase hex characters.
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// ParseDigest parses a Digest from its hex representation.
func ParseDigest(str string) (Digest, error) {
	var digest Digest

	data, err := hex.DecodeString(str)
	if err != nil {
		return digest, fmt.Errorf("parse digest: %w", err)
	}

	if len(data) != DigestSize {
		return digest, fmt.Errorf("parse digest: expected %d bytes, got %d", DigestSize, len(data))
	}

	copy(digest[:], data)
	return digest, nil
}

// Commit returns the Digest of the given move under the given Key. The move
// is hashed as its UTF-8 bytes.
func Commit(key Key, move string) Digest {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(move))

	var digest Digest
	copy(digest[:], mac.Sum(nil))
	return digest
}

// Verify reports whether digest is the commitment to move under key.
func Verify(key Key, move string, digest Digest) bool {
	candidate := Commit(key, move)
	return hmac.Equal(candidate[:], digest[:])
}

// Check is like Verify but returns ErrCommitmentMismatch on failure.
func Check(key Key, move string, digest Digest) error {
	if !Verify(key, move, digest) {
		return fmt.Errorf("%w: %q does not match %s", ErrCommitmentMismatch, move, digest)
	}

	return nil
}
