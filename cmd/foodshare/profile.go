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

	"github.com/ahmetb/foodshare/internal/board"
	"github.com/ahmetb/foodshare/internal/output"
	"github.com/ahmetb/foodshare/internal/view"
	"github.com/spf13/cobra"
)

const (
	tabPosted  = "posted"
	tabClaimed = "claimed"
)

func newProfileCmd(a *app) *cobra.Command {
	var tab string
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your profile and the food you shared or claimed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				heading, empty string
				pick           func(*board.Board, string) []board.Listing
			)
			switch tab {
			case tabPosted:
				heading, empty, pick = "Food You've Shared", "You haven't shared any food yet", (*board.Board).Posted
			case tabClaimed:
				heading, empty, pick = "Food You've Claimed", "You haven't claimed any food yet", (*board.Board).Claimed
			default:
				return fmt.Errorf("invalid --tab value %q (must be %s or %s)", tab, tabPosted, tabClaimed)
			}

			b, err := a.load()
			if err != nil {
				return err
			}
			user, err := a.user(b)
			if err != nil {
				return err
			}

			var lines []output.Line
			if b.Profile.Name == user {
				lines = append(view.Profile(b.Profile), output.Line{})
			}
			lines = append(lines, output.Line{Text: heading})
			if items := pick(b, user); len(items) > 0 {
				lines = append(lines, view.Listings(items, a.clock.Now())...)
			} else {
				lines = append(lines, output.Line{Text: empty})
			}
			return a.printer().Print(lines...)
		},
	}
	cmd.Flags().StringVar(&tab, "tab", tabPosted, "which listings to show ("+tabPosted+"|"+tabClaimed+")")
	return cmd
}
