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
	"github.com/ahmetb/foodshare/internal/timeutil"
	"github.com/ahmetb/foodshare/internal/view"
	"github.com/spf13/cobra"
)

func newPostCmd(a *app) *cobra.Command {
	var d board.Draft
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Share food with the community",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.load()
			if err != nil {
				return err
			}
			if d.PostedBy, err = a.user(b); err != nil {
				return err
			}
			l, err := b.Post(d, a.clock.Now())
			if err != nil {
				return err
			}
			if err := a.save(b); err != nil {
				return err
			}
			p := a.printer()
			if err := p.Print(view.Listing(l, a.clock.Now())...); err != nil {
				return err
			}
			return p.Printf("Food posted! Others can claim it for the next %s.", timeutil.FormatDuration(d.Expiry()))
		},
	}
	f := cmd.Flags()
	f.StringVar(&d.Title, "title", "", "food name, e.g. Pizza or Biryani (required)")
	f.StringVar(&d.Description, "description", "", "condition of the food and why you're sharing it (required)")
	f.StringVar(&d.Quantity, "quantity", "", "how much there is, e.g. \"3 servings\" (required)")
	f.StringVar(&d.Location, "location", "", "where to pick it up, e.g. \"Block A, Room 102\" (required)")
	f.StringVar(&d.ImageURL, "image-url", "", "link to a photo of the food")
	f.IntVar(&d.ExpiryHours, "hours", int(board.DefaultExpiry.Hours()),
		fmt.Sprintf("hours the food stays available (0-%d)", board.MaxExpiryHours))
	f.IntVar(&d.ExpiryMinutes, "minutes", 0, fmt.Sprintf("extra minutes the food stays available %v", board.ExpiryMinuteSteps))
	return cmd
}
