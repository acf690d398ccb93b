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

// Package moves implements the catalog of move labels a game is played
// with. A catalog is an ordered list of an odd number (at least three) of
// distinct labels, and is immutable once created.
package moves

import (
	"errors"
	"fmt"
)

// MinSize is the smallest number of moves a Catalog can have.
const MinSize = 3

// ErrInvalidCatalog is returned by New when the given labels can't form
// a Catalog. The returned error wraps it with the exact reason.
var ErrInvalidCatalog = errors.New("invalid move catalog")

// Catalog is an ordered, duplicate-free list of move labels.
type Catalog struct {
	labels []string
	index  map[string]int
}

// New creates a Catalog from the given labels, in order. Labels are
// compared case-sensitively, so "Rock" and "rock" are different moves.
func New(labels ...string) (*Catalog, error) {
	switch {
	case len(labels) < MinSize:
		return nil, fmt.Errorf("%w: need at least %d moves, got %d", ErrInvalidCatalog, MinSize, len(labels))
	case len(labels)%2 == 0:
		return nil, fmt.Errorf("%w: need an odd number of moves, got %d", ErrInvalidCatalog, len(labels))
	}

	catalog := Catalog{
		labels: make([]string, len(labels)),
		index:  make(map[string]int, len(labels)),
	}

	for i, label := range labels {
		if label == "" {
			return nil, fmt.Errorf("%w: move %d is empty", ErrInvalidCatalog, i+1)
		}

		if j, found := catalog.index[label]; found {
			return nil, fmt.Errorf("%w: move %q repeated at %d and %d", ErrInvalidCatalog, label, j+1, i+1)
		}

		catalog.labels[i] = label
		catalog.index[label] = i
	}

	return &catalog, nil
}

// Len returns the number of moves in the Catalog.
func (catalog *Catalog) Len() int {
	return len(catalog.labels)
}

// Label returns the move at the given index.
func (catalog *Catalog) Label(i int) string {
	return catalog.labels[i]
}

// Index returns the position of the given move in the Catalog, and
// whether it was found at all.
func (catalog *Catalog) Index(label string) (int, bool) {
	i, found := catalog.index[label]
	return i, found
}

// Contains reports whether the given move is in the Catalog.
func (catalog *Catalog) Contains(label string) bool {
	_, found := catalog.index[label]
	return found
}

// Labels returns a copy of the moves in the Catalog, in order.
func (catalog *Catalog) Labels() []string {
	return append([]string(nil), catalog.labels...)
}

// Middle returns the index of the move right in the middle of the Catalog.
// It always exists since a Catalog has an odd number of moves.
func (catalog *Catalog) Middle() int {
	return len(catalog.labels) / 2
}
