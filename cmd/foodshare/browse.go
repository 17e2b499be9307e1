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
	"github.com/ahmetb/foodshare/internal/board"
	"github.com/ahmetb/foodshare/internal/output"
	"github.com/ahmetb/foodshare/internal/view"
	"github.com/spf13/cobra"
)

func newBrowseCmd(a *app) *cobra.Command {
	var (
		query     string
		available bool
		long      bool
	)
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List food that has not been claimed yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.load()
			if err != nil {
				return err
			}
			now := a.clock.Now()
			items := b.Browse(board.Filter{Query: query, AvailableOnly: available, Now: now})

			p := a.printer()
			if len(items) == 0 {
				return p.Print(
					output.Line{Text: "No food items available"},
					output.Line{Text: "Check back later or share your own food!"},
				)
			}
			if !long {
				return p.Print(view.Listings(items, now)...)
			}
			var lines []output.Line
			for i, l := range items {
				if i > 0 {
					lines = append(lines, output.Line{})
				}
				lines = append(lines, view.Listing(l, now)...)
			}
			return p.Print(lines...)
		},
	}
	cmd.Flags().StringVarP(&query, "search", "s", "", "only show food whose title or description contains this text")
	cmd.Flags().BoolVar(&available, "available", false, "hide expired food")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "show descriptions and locations")
	return cmd
}
