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

// Package rules decides which move beats which in a move catalog.
//
// The catalog is split into three parts around its middle move: the lower
// half, the middle move itself, and the upper half. Every move in the lower
// half beats every move in the upper half, regardless of where exactly the
// two moves sit inside their halves. Any other pairing is a draw, so the
// middle move draws against everything, itself included.
package rules

import "laptudirm.com/x/rps/pkg/moves"

// Side is the part of a Partition a move falls into.
type Side int

const (
	Lower Side = iota
	Middle
	Upper
	Outside // not in the catalog
)

// Partition is the lower/middle/upper split of a move catalog. It is
// computed once per catalog by New and never changes after that.
type Partition struct {
	catalog *moves.Catalog
	half    int
}

// New computes the Partition of the given catalog.
func New(catalog *moves.Catalog) Partition {
	return Partition{
		catalog: catalog,
		half:    catalog.Len() / 2,
	}
}

// Half returns the number of moves in each of the lower and upper halves.
func (partition Partition) Half() int {
	return partition.half
}

// Side returns which part of the Partition the move at index i is in.
func (partition Partition) Side(i int) Side {
	switch {
	case i < 0, i >= partition.catalog.Len():
		return Outside
	case i < partition.half:
		return Lower
	case i == partition.half:
		return Middle
	default:
		return Upper
	}
}

func (partition Partition) sideOf(label string) Side {
	i, found := partition.catalog.Index(label)
	if !found {
		return Outside
	}

	return partition.Side(i)
}

// Outcome returns the result of the player playing a against the opponent
// playing b. Labels not in the catalog are treated as a Draw, so callers
// are expected to validate moves before asking for an Outcome.
func (partition Partition) Outcome(a, b string) Outcome {
	return decide(partition.sideOf(a), partition.sideOf(b))
}

func decide(a, b Side) Outcome {
	switch {
	case a == Lower && b == Upper:
		return PlayerWins
	case b == Lower && a == Upper:
		return OpponentWins
	default:
		return Draw
	}
}

// Judge returns the result of the player playing a against the opponent
// playing b with the given catalog. Use a Partition when asking for more
// than one Outcome with the same catalog.
func Judge(a, b string, catalog *moves.Catalog) Outcome {
	return New(catalog).Outcome(a, b)
}
