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

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"laptudirm.com/x/rps/pkg/commitment"
)

// rps verify
func Verify() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify --key key --move move --hmac digest",
		Short: "Check that a revealed move matches its HMAC",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if cmd.Flag("encoding").Changed {
				cfg.Encoding, _ = cmd.Flags().GetString("encoding")
			}

			encoding, err := cfg.DigestEncoding()
			if err != nil {
				return err
			}

			keyStr, _ := cmd.Flags().GetString("key")
			move, _ := cmd.Flags().GetString("move")
			digestStr, _ := cmd.Flags().GetString("hmac")

			key, err := commitment.ParseKey(keyStr)
			if err != nil {
				return err
			}

			digest, err := encoding.Decode(digestStr)
			if err != nil {
				return err
			}

			if err := commitment.Check(key, move, digest); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), pterm.LightGreen("HMAC verified:"), move)
			return nil
		},
	}

	cmd.Flags().StringP("key", "k", "", "Revealed HMAC Key (hex)")
	cmd.Flags().StringP("move", "m", "", "Revealed Computer Move")
	cmd.Flags().StringP("hmac", "H", "", "HMAC shown before the move")
	cmd.Flags().StringP("encoding", "e", "", "Encoding of the HMAC (hex or base64)")

	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("move")
	_ = cmd.MarkFlagRequired("hmac")

	return cmd
}
