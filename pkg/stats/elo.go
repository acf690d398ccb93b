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

// Package stats estimates how well a player has been doing from the
// results of the rounds they played.
package stats

import "math"

// Elo returns the likely elo difference between the player and the
// computer given the player's wins, draws, and losses, along with its
// p < 0.05 lower and upper bounds. A Dirichlet([0.5, 0.5, 0.5]) prior is
// applied, so a handful of rounds won't give infinite bounds.
func Elo(ws, ds, ls int) (lower float64, elo float64, upper float64) {
	N := float64(ws+ds+ls) + 1.5 // total number of rounds

	w := (float64(ws) + 0.5) / N // measured win probability
	d := (float64(ds) + 0.5) / N // measured draw probability
	l := (float64(ls) + 0.5) / N // measured loss probability

	// empirical mean of random variable
	mu := w + d/2

	// standard deviation of the random variable
	sigma := math.Sqrt(
		w*math.Pow(1-mu, 2)+
			d*math.Pow(0.5-mu, 2)+
			l*math.Pow(0-mu, 2),
	) / math.Sqrt(N)

	muMin := mu + phiInv(0.025)*sigma // lower bound
	muMax := mu + phiInv(0.975)*sigma // upper bound

	return scoreToElo(muMin), scoreToElo(mu), scoreToElo(muMax)
}

// ScoreRate returns the fraction of points scored, with a win worth one
// point and a draw half a point.
func ScoreRate(ws, ds, ls int) float64 {
	n := ws + ds + ls
	if n == 0 {
		return 0
	}

	return (float64(ws) + float64(ds)/2) / float64(n)
}

// epsilon keeps scores strictly inside (0, 1), where the elo curve is
// defined. Bounds of short one-sided runs fall outside it.
const epsilon = 1e-6

// scoreToElo is monotonic, so bounds keep their order after conversion.
func scoreToElo(x float64) float64 {
	x = math.Max(epsilon, math.Min(x, 1-epsilon))
	return -400 * math.Log10(1/x-1)
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
