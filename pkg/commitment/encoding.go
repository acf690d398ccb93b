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
	"encoding/base64"
	"fmt"
)

// Encoding is a way of displaying a Digest. Both encodings have a fixed
// width: 64 characters for hex and 44 for base64.
type Encoding interface {
	Name() string
	Encode(Digest) string
	Decode(string) (Digest, error)
}

// NewEncoding returns the Encoding with the given name. An empty name
// selects hex.
func NewEncoding(name string) (Encoding, error) {
	switch name {
	case "hex", "":
		return Hex{}, nil
	case "base64":
		return Base64{}, nil
	default:
		return nil, fmt.Errorf("new encoding: invalid digest encoding %s", name)
	}
}

// Hex encodes digests as 64 lowercase hex characters.
type Hex struct{}

func (Hex) Name() string { return "hex" }

func (Hex) Encode(digest Digest) string { return digest.String() }

func (Hex) Decode(str string) (Digest, error) { return ParseDigest(str) }

// Base64 encodes digests with standard, padded base64.
type Base64 struct{}

func (Base64) Name() string { return "base64" }

func (Base64) Encode(digest Digest) string {
	return base64.StdEncoding.EncodeToString(digest[:])
}

func (Base64) Decode(str string) (Digest, error) {
	var digest Digest

	data, err := base64.StdEncoding.DecodeString(str)
	if err != nil {
		return digest, fmt.Errorf("parse digest: %w", err)
	}

	if len(data) != DigestSize {
		return digest, fmt.Errorf("parse digest: expected %d bytes, got %d", DigestSize, len(data))
	}

	copy(digest[:], data)
	return digest, nil
}
