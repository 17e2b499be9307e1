// Copyright 2025 Ahmet Alp Balkan
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/ahmetb/foodshare/internal/annotate"
	"github.com/ahmetb/foodshare/internal/store"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var position string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the board file annotated with freshness comments",
		Long: `Print the board file with a comment on every listing's expiresAt
(time remaining, expired or claimed) and every notification's timestamp
(how long ago it happened).

The board file itself is not modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if position != "inline" && position != "above" {
				return fmt.Errorf("invalid --position value %q (must be inline or above)", position)
			}
			doc, err := store.LoadNode(a.opts.file)
			if err != nil {
				return err
			}
			opts := annotate.Options{Above: position == "above", Now: a.clock.Now()}
			if _, err := annotate.Annotate(doc.Content[0], opts); err != nil {
				return fmt.Errorf("annotating %s: %w", a.opts.file, err)
			}
			return store.EncodeNode(a.out, doc)
		},
	}
	cmd.Flags().StringVar(&position, "position", "inline", "comment placement (inline|above)")
	return cmd
}
