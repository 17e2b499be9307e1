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
	"errors"
	"fmt"

	"github.com/ahmetb/foodshare/internal/output"
	"github.com/ahmetb/foodshare/internal/view"
	"github.com/spf13/cobra"
)

func newNotificationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notif"},
		Short:   "List your notifications, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.load()
			if err != nil {
				return err
			}
			p := a.printer()
			inbox := b.Inbox()
			if len(inbox) == 0 {
				return p.Printf("No notifications")
			}
			lines := []output.Line{{Text: unreadSummary(b.UnreadCount())}}
			lines = append(lines, view.Notifications(inbox, a.clock.Now())...)
			return p.Print(lines...)
		},
	}
	cmd.AddCommand(newNotificationsReadCmd(a), newNotificationsDeleteCmd(a))
	return cmd
}

func unreadSummary(n int) string {
	switch n {
	case 0:
		return "All caught up"
	case 1:
		return "1 unread notification"
	}
	return fmt.Sprintf("%d unread notifications", n)
}

func newNotificationsReadCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "read [ID]",
		Short: "Mark a notification, or all of them, as read",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return errors.New("pass either a notification ID or --all")
			}
			b, err := a.load()
			if err != nil {
				return err
			}
			var msg string
			if all {
				msg = fmt.Sprintf("Marked %d notification(s) as read.", b.MarkAllRead())
			} else {
				if err := b.MarkRead(args[0]); err != nil {
					return err
				}
				msg = "Marked as read."
			}
			if err := a.save(b); err != nil {
				return err
			}
			return a.printer().Printf("%s", msg)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "mark every notification as read")
	return cmd
}

func newNotificationsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.load()
			if err != nil {
				return err
			}
			if err := b.DeleteNotification(args[0]); err != nil {
				return err
			}
			if err := a.save(b); err != nil {
				return err
			}
			return a.printer().Printf("Notification deleted.")
		},
	}
}
