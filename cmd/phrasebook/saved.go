// Copyright 2025 Ian Lewis
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
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-phrasebook/phrase"
	"github.com/ianlewis/go-phrasebook/store"
)

func saveCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "save",
		Usage:     "save a phrase",
		ArgsUsage: "ID",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "note",
				Usage: "attach `NOTE` to the saved phrase",
			},
		},
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			p, err := e.pb.Phrase(c.Args().First())
			if err != nil {
				return err
			}
			s, err := e.openStore(c)
			if err != nil {
				return err
			}

			if s.Phrases.Save(p, c.String("note")) {
				fmt.Fprintf(c.App.Writer, "Saved %s %s.\n", p.ID, p.Chinese)
			} else {
				fmt.Fprintf(c.App.Writer, "%s is already saved.\n", p.ID)
			}
			return nil
		},
	}
}

func saveWordCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:         "save-word",
		Usage:        "save a vocabulary word",
		ArgsUsage:    "CATEGORY CHINESE",
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 2); err != nil {
				return err
			}
			categoryID, chinese := c.Args().Get(0), c.Args().Get(1)
			word, err := e.pb.Word(categoryID, chinese)
			if err != nil {
				return err
			}
			s, err := e.openStore(c)
			if err != nil {
				return err
			}

			id := phrase.WordID(categoryID, chinese)
			if s.Words.Save(id, word) {
				fmt.Fprintf(c.App.Writer, "Saved %s.\n", id)
			} else {
				fmt.Fprintf(c.App.Writer, "%s is already saved.\n", id)
			}
			return nil
		},
	}
}

func removeCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:         "remove",
		Usage:        "remove a saved phrase or word",
		ArgsUsage:    "ID",
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			s, err := e.openStore(c)
			if err != nil {
				return err
			}

			id := c.Args().First()
			switch {
			case s.Phrases.IsSaved(id):
				s.Phrases.Remove(id)
			case s.Words.IsSaved(id):
				s.Words.Remove(id)
			default:
				return fmt.Errorf("%w: %q", ErrNotSaved, id)
			}
			fmt.Fprintf(c.App.Writer, "Removed %s.\n", id)
			return nil
		},
	}
}

func savedCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "saved",
		Usage: "list saved phrases or words",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:               "words",
				Usage:              "list saved words",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "favorites",
				Usage:              "list favorite phrases only",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "recent",
				Usage:              "list recently used phrases, most recent first",
				DisableDefaultText: true,
			},
		},
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			s, err := e.openStore(c)
			if err != nil {
				return err
			}

			w := c.App.Writer
			if c.Bool("words") {
				words := s.Words.List()
				if len(words) == 0 {
					fmt.Fprintln(w, "No saved words.")
					return nil
				}
				tbl := newTable(w, "ID", "Chinese", "Pinyin", "English", "Category")
				for _, sw := range words {
					tbl.AddRow(sw.ID, sw.Chinese, sw.Pinyin, sw.English, sw.Category)
				}
				tbl.Print()
				return nil
			}

			var phrases []store.SavedPhrase
			switch {
			case c.Bool("recent"):
				phrases = s.Phrases.RecentlyUsed(store.DefaultRecentlyUsedLimit)
			case c.Bool("favorites"):
				phrases = s.Phrases.Favorites()
			default:
				phrases = s.Phrases.List()
			}
			if len(phrases) == 0 {
				fmt.Fprintln(w, "No saved phrases.")
				return nil
			}

			tbl := newTable(w, "", "ID", "Chinese", "Pinyin", "English", "Uses", "Note")
			for _, p := range phrases {
				star := ""
				if p.Favorite {
					star = "*"
				}
				tbl.AddRow(star, p.ID, p.Chinese, p.Pinyin, p.English, p.UsageCount, p.Note)
			}
			tbl.Print()
			return nil
		},
	}
}

// withSavedPhrase calls fn with the saved phrase ID given as the command's
// first argument.
func withSavedPhrase(e *env, c *cli.Context, fn func(s *store.Store, id string)) error {
	s, err := e.openStore(c)
	if err != nil {
		return err
	}
	id := c.Args().First()
	if !s.Phrases.IsSaved(id) {
		return fmt.Errorf("%w: %q", ErrNotSaved, id)
	}
	fn(s, id)
	return nil
}

func favoriteCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:         "favorite",
		Usage:        "mark or unmark a saved phrase as a favorite",
		ArgsUsage:    "ID",
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			return withSavedPhrase(e, c, func(s *store.Store, id string) {
				s.Phrases.ToggleFavorite(id)
				if p, _ := s.Phrases.Get(id); p.Favorite {
					fmt.Fprintf(c.App.Writer, "Added %s to favorites.\n", id)
				} else {
					fmt.Fprintf(c.App.Writer, "Removed %s from favorites.\n", id)
				}
			})
		},
	}
}

func noteCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:         "note",
		Usage:        "set the note on a saved phrase",
		ArgsUsage:    "ID TEXT",
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 2 {
				return requireArgs(c, 2)
			}
			text := strings.Join(c.Args().Tail(), " ")
			return withSavedPhrase(e, c, func(s *store.Store, id string) {
				s.Phrases.UpdateNote(id, text)
				fmt.Fprintf(c.App.Writer, "Updated note for %s.\n", id)
			})
		},
	}
}

func useCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:         "use",
		Usage:        "record that a saved phrase was used",
		ArgsUsage:    "ID",
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			return withSavedPhrase(e, c, func(s *store.Store, id string) {
				s.Phrases.RecordUsage(id)
				p, _ := s.Phrases.Get(id)
				fmt.Fprintf(c.App.Writer, "Used %s %d time(s).\n", id, p.UsageCount)
			})
		},
	}
}
