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

package cmd

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"laptudirm.com/x/rps/pkg/moves"
	"laptudirm.com/x/rps/pkg/rules"
)

// renderTable renders the outcome of every pair of moves in the catalog,
// each cell read as the row's move played against the column's move:
// Win, Lose or Draw for the row's move.
func renderTable(w io.Writer, catalog *moves.Catalog) error {
	matrix := rules.Matrix(catalog)

	data := pterm.TableData{append([]string{"Moves"}, catalog.Labels()...)}
	for i, row := range matrix {
		line := []string{catalog.Label(i)}
		for _, outcome := range row {
			line = append(line, outcome.String())
		}
		data = append(data, line)
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, table)
	return nil
}

// renderMenu lists the moves the player can choose from.
func renderMenu(w io.Writer, catalog *moves.Catalog) {
	fmt.Fprintln(w, pterm.LightBlue("Available moves:"))
	for i, label := range catalog.Labels() {
		fmt.Fprintf(w, "%d - %s\n", i+1, label)
	}
	fmt.Fprintln(w, "0 - exit")
	fmt.Fprintln(w, "? - help")
}

func renderOutcome(outcome rules.Outcome) string {
	switch outcome {
	case rules.PlayerWins:
		return pterm.LightGreen("You win!")
	case rules.OpponentWins:
		return pterm.LightRed("Computer wins!")
	default:
		return pterm.Yellow("Draw")
	}
}
