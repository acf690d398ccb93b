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

import "laptudirm.com/x/rps/pkg/moves"

// Matrix returns the Outcome of every ordered pair of moves in the
// Partition's catalog: matrix[i][j] is the result of move i played against
// move j, from the point of view of move i.
func (partition Partition) Matrix() [][]Outcome {
	n := partition.catalog.Len()

	matrix := make([][]Outcome, n)
	for i := range matrix {
		matrix[i] = make([]Outcome, n)
		for j := range matrix[i] {
			matrix[i][j] = decide(partition.Side(i), partition.Side(j))
		}
	}

	return matrix
}

// Matrix returns the outcome matrix of the given catalog.
func Matrix(catalog *moves.Catalog) [][]Outcome {
	return New(catalog).Matrix()
}
