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

package commitment

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// MinKeySize is the smallest Key, in bytes, a Scheme will generate.
const MinKeySize = 32

// ErrRandomSourceUnavailable is returned when the secure random source
// can't supply the bytes for a Key. It isn't safe to go on playing.
var ErrRandomSourceUnavailable = errors.New("secure random source unavailable")

// Key is the secret a Digest is computed with. It must stay secret until
// the committed move is revealed.
type Key []byte

// String returns the Key as lowercase hex.
func (key Key) String() string {
	return hex.EncodeToString(key)
}

// ParseKey parses a Key from its hex representation.
func ParseKey(str string) (Key, error) {
	key, err := hex.DecodeString(str)
	if err != nil {
		return nil, fmt.Errorf("parse key: %w", err)
	}

	if len(key) == 0 {
		return nil, errors.New("parse key: empty key")
	}

	return key, nil
}

// Scheme generates Keys. The zero value reads MinKeySize bytes from
// crypto/rand, and Random can be replaced with a deterministic reader in
// tests.
type Scheme struct {
	Random  io.Reader
	KeySize int
}

// GenerateKey returns a new, uniformly random Key. Every call reads fresh
// bytes from the random source, so keys are never reused between sessions.
func (scheme Scheme) GenerateKey() (Key, error) {
	size := scheme.KeySize
	if size == 0 {
		size = MinKeySize
	}

	if size < MinKeySize {
		return nil, fmt.Errorf("generate key: %d bytes is below the minimum of %d", size, MinKeySize)
	}

	reader := scheme.Random
	if reader == nil {
		reader = rand.Reader
	}

	key := make(Key, size)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSourceUnavailable, err)
	}

	return key, nil
}
