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

package game

import (
	"fmt"

	"laptudirm.com/x/rps/pkg/rules"
)

// Score tallies the outcomes of the rounds played in one sitting.
type Score struct {
	Wins, Draws, Losses int
}

// Add records the given Outcome.
func (score *Score) Add(outcome rules.Outcome) {
	switch outcome {
	case rules.PlayerWins:
		score.Wins++
	case rules.Draw:
		score.Draws++
	case rules.OpponentWins:
		score.Losses++
	}
}

// Rounds returns the total number of rounds recorded.
func (score Score) Rounds() int {
	return score.Wins + score.Draws + score.Losses
}

// String returns the Score in W-D-L form.
func (score Score) String() string {
	return fmt.Sprintf("%d-%d-%d", score.Wins, score.Draws, score.Losses)
}
