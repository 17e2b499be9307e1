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
	"io"
	"os"

	"github.com/ahmetb/foodshare/internal/board"
	"github.com/ahmetb/foodshare/internal/output"
	"github.com/ahmetb/foodshare/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/utils/clock"
)

const (
	defaultBoardFile = "foodshare.yaml"
	boardFileEnv     = "FOODSHARE_FILE"
)

// options are the flags shared by every subcommand.
type options struct {
	file  string
	user  string
	color string
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	defaultFile := os.Getenv(boardFileEnv)
	if defaultFile == "" {
		defaultFile = defaultBoardFile
	}
	fs.StringVarP(&o.file, "file", "f", defaultFile, "board file (env "+boardFileEnv+")")
	fs.StringVarP(&o.user, "user", "u", "", "act as this user (default: the board profile name)")
	fs.StringVar(&o.color, "color", "auto", "colorize output (auto|always|never)")
}

func (o *options) validate() error {
	switch o.color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid --color value %q (must be auto, always or never)", o.color)
	}
	if o.file == "" {
		return errors.New("--file must not be empty")
	}
	return nil
}

// app carries the dependencies of the subcommands.
type app struct {
	clock  clock.PassiveClock
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	isTTY  bool

	opts options
}

func (a *app) load() (*board.Board, error) {
	return store.Load(a.opts.file)
}

func (a *app) save(b *board.Board) error {
	return store.Save(a.opts.file, b)
}

// user returns the acting user: --user, falling back to the board owner.
func (a *app) user(b *board.Board) (string, error) {
	if a.opts.user != "" {
		return a.opts.user, nil
	}
	if b.Profile.Name != "" {
		return b.Profile.Name, nil
	}
	return "", errors.New("no user: pass --user or set profile.name in the board file")
}

func (a *app) printer() *output.Printer {
	return &output.Printer{W: a.out, Color: output.ResolveColor(a.opts.color, a.isTTY)}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "foodshare",
		Short: "Share leftover food with your hostel community",
		Long: `foodshare keeps a community food-sharing board in a YAML file.

Browse what is available, post your leftovers, claim food before it expires
and keep up with notifications about your posts.

Usage:
  foodshare browse --search pizza
  foodshare post --title Biryani --description "Still warm" \
      --quantity "3 servings" --location "Block A, Room 102" --hours 3
  foodshare claim 0b6f3c1e`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.opts.validate()
		},
	}
	a.opts.addFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newBrowseCmd(a),
		newPostCmd(a),
		newClaimCmd(a),
		newDeleteCmd(a),
		newProfileCmd(a),
		newNotificationsCmd(a),
		newSweepCmd(a),
		newExportCmd(a),
	)
	return rootCmd
}
