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

	"github.com/spf13/cobra"

	"laptudirm.com/x/rps/pkg/commitment"
)

// rps key
func Key() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Generate a random HMAC key",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			scheme := cfg.Scheme()
			if cmd.Flag("bytes").Changed {
				scheme.KeySize, _ = cmd.Flags().GetInt("bytes")
			}

			key, err := scheme.GenerateKey()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}

	cmd.Flags().IntP("bytes", "b", commitment.MinKeySize, "Number of random Bytes in the key")

	return cmd
}
