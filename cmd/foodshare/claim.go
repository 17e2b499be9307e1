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
	"bufio"
	"fmt"
	"strings"

	"github.com/ahmetb/foodshare/internal/board"
	"github.com/spf13/cobra"
)

func newClaimCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "claim ID",
		Short: "Claim a food listing",
		Long: `Claim a food listing by its ID or a unique ID prefix.

You will be asked to confirm unless --yes is given. Claimed food should be
picked up within 3 hours.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.load()
			if err != nil {
				return err
			}
			user, err := a.user(b)
			if err != nil {
				return err
			}
			now := a.clock.Now()
			l, err := b.CanClaim(args[0], user, now)
			if err != nil {
				return err
			}
			if !yes {
				ok, err := a.confirm(fmt.Sprintf("You're about to claim %s from %s. Are you sure?", l.Title, l.Location))
				if err != nil {
					return err
				}
				if !ok {
					return a.printer().Printf("Claim cancelled.")
				}
			}

			claimed, err := b.Claim(l.ID, user, now)
			if err != nil {
				return err
			}
			if err := a.save(b); err != nil {
				return err
			}
			return a.printer().Printf("You've successfully claimed %s. Head to %s within %d hours!",
				claimed.Title, claimed.Location, int(board.PickupWindow.Hours()))
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "claim without asking for confirmation")
	return cmd
}

// confirm asks a yes/no question on the input stream. Anything other than
// "y" or "yes" is a no.
func (a *app) confirm(question string) (bool, error) {
	if _, err := fmt.Fprintf(a.errOut, "%s [y/N] ", question); err != nil {
		return false, err
	}
	answer, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil && answer == "" {
		// EOF without an answer means no.
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
