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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/rps/pkg/config"
	"laptudirm.com/x/rps/pkg/moves"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "rps",
		Short: "Provably fair rock-paper-scissors with any odd number of moves",
		Long: heredoc.Doc(`rps plays rock-paper-scissors, generalized to any odd number
			of moves, against the computer.

			The computer picks its move before you do and shows you the
			HMAC of that move. Once you have moved, it reveals its move
			and the secret HMAC key, so you can check that it did not
			change its mind after seeing your choice.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show rps's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("config", "c", "", "Use the given Configuration File")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Play())
	root.AddCommand(Table())
	root.AddCommand(Verify())
	root.AddCommand(Key())

	return root
}

// loadConfig loads the configuration selected by the --config flag.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// loadCatalog creates the move catalog from the command's arguments, or
// from the configuration if no moves were given.
func loadCatalog(args []string, cfg config.Config) (*moves.Catalog, error) {
	labels := args
	if len(labels) == 0 {
		labels = cfg.Moves
	}

	catalog, err := moves.New(labels...)
	if err != nil {
		return nil, fmt.Errorf(
			"%w\nprovide an odd number >= 3 of non-repeating moves, e.g. rps play rock paper scissors",
			err,
		)
	}

	logrus.WithField("moves", catalog.Labels()).Debug("Loaded move catalog")
	return catalog, nil
}
