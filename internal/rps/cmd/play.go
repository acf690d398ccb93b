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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/rps/pkg/commitment"
	"laptudirm.com/x/rps/pkg/game"
	"laptudirm.com/x/rps/pkg/moves"
	"laptudirm.com/x/rps/pkg/stats"
)

// rps play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [moves...]",
		Short: "Play against the computer",
		Long: heredoc.Doc(`play starts a game against the computer with the given moves,
			or with the moves from the configuration file if none are given.

			There has to be an odd number of at least three moves, with no
			move repeated. Each move beats the moves in the half of the list
			after the middle move if it's in the half before it, and the middle
			move draws against everything.

			Before you choose, the HMAC of the computer's move is shown. After
			you choose, the computer's move and the HMAC key are revealed, and
			the HMAC can be checked with rps verify or any HMAC-SHA256 tool.`),
		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			catalog, err := loadCatalog(args, cfg)
			if err != nil {
				return err
			}

			rounds := cfg.Rounds
			if cmd.Flag("rounds").Changed {
				rounds, _ = cmd.Flags().GetInt("rounds")
			}

			if rounds < 1 {
				return fmt.Errorf("rounds must be at least 1, got %d", rounds)
			}

			encoding, err := cfg.DigestEncoding()
			if err != nil {
				return err
			}

			p := player{
				out:      cmd.OutOrStdout(),
				in:       bufio.NewScanner(cmd.InOrStdin()),
				catalog:  catalog,
				scheme:   cfg.Scheme(),
				encoding: encoding,
			}

			if err := renderTable(p.out, catalog); err != nil {
				return err
			}

			var score game.Score
			for round := 1; round <= rounds; round++ {
				if rounds > 1 {
					fmt.Fprintf(p.out, "\nRound %d of %d\n", round, rounds)
				}

				reveal, played, err := p.round()
				if err != nil {
					return err
				}

				if !played {
					break
				}

				score.Add(reveal.Outcome)
			}

			if rounds > 1 && score.Rounds() > 0 {
				renderScore(p.out, score)
			}

			return nil
		},
	}

	cmd.Flags().IntP("rounds", "r", 0, "Number of Rounds to play (default from config)")

	return cmd
}

type player struct {
	out io.Writer
	in  *bufio.Scanner

	catalog  *moves.Catalog
	scheme   commitment.Scheme
	encoding commitment.Encoding
}

// round plays a single round. It returns false if the player chose to
// exit or there was no more input.
func (p *player) round() (game.Reveal, bool, error) {
	session, err := game.New(p.catalog, game.WithScheme(p.scheme))
	if err != nil {
		return game.Reveal{}, false, err
	}

	fmt.Fprintln(p.out, "HMAC:", p.encoding.Encode(session.Digest()))
	renderMenu(p.out, p.catalog)

	for {
		fmt.Fprint(p.out, "Enter your move: ")

		if !p.in.Scan() {
			fmt.Fprintln(p.out)
			return game.Reveal{}, false, p.in.Err()
		}

		input := strings.TrimSpace(p.in.Text())
		switch input {
		case "0":
			return game.Reveal{}, false, nil
		case "?":
			if err := renderTable(p.out, p.catalog); err != nil {
				return game.Reveal{}, false, err
			}
			continue
		}

		// Menu numbers take precedence over numeric move names; anything
		// else is tried as a move name.
		move := input
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= p.catalog.Len() {
			move = p.catalog.Label(n - 1)
		}

		reveal, err := session.Play(move)
		switch {
		case errors.Is(err, game.ErrUnknownMove):
			logrus.WithField("input", input).Debug("Rejected unknown move")
			fmt.Fprintln(p.out, pterm.LightRed("Invalid input. Please enter a valid move or ? for help."))
			continue
		case err != nil:
			return game.Reveal{}, false, err
		}

		renderReveal(p.out, reveal, p.encoding)
		return reveal, true, nil
	}
}

func renderReveal(w io.Writer, reveal game.Reveal, encoding commitment.Encoding) {
	fmt.Fprintln(w, "Your move:", reveal.PlayerMove)
	fmt.Fprintln(w, "Computer move:", reveal.OpponentMove)
	fmt.Fprintln(w, "Result:", renderOutcome(reveal.Outcome))
	fmt.Fprintln(w, "HMAC key:", reveal.Key)
	fmt.Fprintln(w, pterm.Gray(fmt.Sprintf(
		"Check it with: rps verify --key %s --move %q --hmac %s --encoding %s",
		reveal.Key, reveal.OpponentMove, encoding.Encode(reveal.Digest), encoding.Name(),
	)))
}

func renderScore(w io.Writer, score game.Score) {
	lower, elo, upper := stats.Elo(score.Wins, score.Draws, score.Losses)
	rate := stats.ScoreRate(score.Wins, score.Draws, score.Losses)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Score of you vs computer: %s [%.3f] %d\n", score, rate, score.Rounds())
	fmt.Fprintf(w, "Elo difference: %+.1f [%+.1f, %+.1f]\n", elo, lower, upper)
}
