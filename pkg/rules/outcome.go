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

package rules

// Outcome represents the result of a single round, from the player's
// point of view.
type Outcome int

const (
	PlayerWins   Outcome = +1
	Draw         Outcome = 0
	OpponentWins Outcome = -1
)

// Invert returns the Outcome as seen by the other side.
func (outcome Outcome) Invert() Outcome {
	return -outcome
}

// String returns a string representation of the given Outcome.
func (outcome Outcome) String() string {
	switch outcome {
	case PlayerWins:
		return "Win"
	case Draw:
		return "Draw"
	case OpponentWins:
		return "Lose"
	default:
		return "?"
	}
}
