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
	"io"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-phrasebook/phrase"
	"github.com/ianlewis/go-phrasebook/search"
)

func newTable(w io.Writer, headers ...interface{}) table.Table {
	return table.New(headers...).WithWriter(w)
}

func tagNames(tags []phrase.Tag) string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func parseTags(values []string) []phrase.Tag {
	var tags []phrase.Tag
	for _, v := range values {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, phrase.Tag(t))
			}
		}
	}
	return tags
}

func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "tag",
			Usage:   "only show entries with `TAG` (may be repeated)",
			Aliases: []string{"t"},
		},
		&cli.StringFlag{
			Name:    "query",
			Usage:   "only show entries matching `QUERY`",
			Aliases: []string{"q"},
		},
	}
}

func situationsCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:         "situations",
		Usage:        "list situations",
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			tbl := newTable(c.App.Writer, "ID", "Name", "Phrases", "Description")
			for _, s := range e.pb.Situations() {
				tbl.AddRow(s.ID, s.Name, len(s.Phrases), s.Description)
			}
			tbl.Print()
			return nil
		},
	}
}

func showCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:         "show",
		Usage:        "show the phrases for a situation",
		ArgsUsage:    "SITUATION",
		Flags:        filterFlags(),
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			id := phrase.Category(c.Args().First())
			s, err := e.pb.Situation(id)
			if err != nil {
				return err
			}
			phrases, err := e.pb.SituationPhrases(id, c.String("query"), parseTags(c.StringSlice("tag")))
			if err != nil {
				return err
			}

			w := c.App.Writer
			fmt.Fprintf(w, "%s %s\n", s.Icon, s.Name)
			if s.Description != "" {
				fmt.Fprintln(w, s.Description)
			}
			fmt.Fprintf(w, "Tags: %s\n\n", tagNames(search.AvailableTags(s.Phrases, search.PhraseTags)))

			if len(phrases) == 0 {
				fmt.Fprintln(w, "No phrases found.")
				return nil
			}
			printPhrases(w, phrases)
			return nil
		},
	}
}

func printPhrases(w io.Writer, phrases []*phrase.Phrase) {
	tbl := newTable(w, "ID", "Chinese", "Pinyin", "English", "Tags")
	for _, p := range phrases {
		tbl.AddRow(p.ID, p.Chinese, p.Pinyin, p.English, tagNames(p.Tags))
	}
	tbl.Print()
}

func phraseCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:         "phrase",
		Usage:        "show a phrase in detail",
		ArgsUsage:    "ID",
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

			w := c.App.Writer
			fmt.Fprintf(w, "%s\n%s\n%s\n", p.Chinese, p.Pinyin, p.English)
			if p.Variant != nil {
				fmt.Fprintf(w, "%s: %s (%s)\n", p.Variant.Locale, p.Variant.Chinese, p.Variant.Pinyin)
			}
			fmt.Fprintln(w)
			fmt.Fprintf(w, "Situation:  %s\n", p.Category)
			if p.Politeness != "" {
				fmt.Fprintf(w, "Politeness: %s\n", p.Politeness)
			}
			if len(p.Tags) > 0 {
				fmt.Fprintf(w, "Tags:       %s\n", tagNames(p.Tags))
			}
			if p.Emergency {
				fmt.Fprintln(w, "Emergency:  yes")
			}
			if saved, ok := s.Phrases.Get(p.ID); ok {
				fmt.Fprintf(w, "Saved:      %s\n", saved.SavedAt.Local().Format("2006-01-02 15:04"))
				if saved.Note != "" {
					fmt.Fprintf(w, "Note:       %s\n", saved.Note)
				}
			}
			if p.CulturalNote != "" {
				fmt.Fprintf(w, "\n%s\n", renderNote(p.CulturalNote))
			}
			return nil
		},
	}
}

func basicsCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:         "basics",
		Usage:        "list vocabulary categories or the words in a category",
		ArgsUsage:    "[CATEGORY]",
		Flags:        filterFlags(),
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			w := c.App.Writer
			if c.Args().Len() == 0 {
				tbl := newTable(w, "ID", "Name", "Words", "Description")
				for _, wc := range e.pb.WordCategories() {
					tbl.AddRow(wc.ID, wc.Name, len(wc.Words), wc.Description)
				}
				tbl.Print()
				return nil
			}
			if err := requireArgs(c, 1); err != nil {
				return err
			}

			id := c.Args().First()
			wc, err := e.pb.WordCategory(id)
			if err != nil {
				return err
			}
			words, err := e.pb.CategoryWords(id, c.String("query"), parseTags(c.StringSlice("tag")))
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "%s %s\n", wc.Icon, wc.Name)
			fmt.Fprintf(w, "Tags: %s\n\n", tagNames(search.AvailableTags(wc.Words, search.WordTags)))
			if len(words) == 0 {
				fmt.Fprintln(w, "No words found.")
				return nil
			}
			tbl := newTable(w, "Chinese", "Pinyin", "English", "Tags")
			for _, word := range words {
				tbl.AddRow(word.Chinese, word.Pinyin, word.English, tagNames(word.Tags))
			}
			tbl.Print()
			return nil
		},
	}
}
