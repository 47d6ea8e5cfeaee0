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
)

func searchCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:         "search",
		Usage:        "search all phrases",
		ArgsUsage:    "QUERY",
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if c.Args().Len() == 0 {
				return fmt.Errorf("%w: search: missing query", ErrFlagParse)
			}
			query := strings.Join(c.Args().Slice(), " ")

			r := e.pb.Search(query)
			if !r.Active {
				return fmt.Errorf("%w: search: missing query", ErrFlagParse)
			}

			s, err := e.openStore(c)
			if err != nil {
				return err
			}
			s.Searches.Add(query)

			w := c.App.Writer
			if r.Empty() {
				fmt.Fprintf(w, "No phrases found for %q.\n", r.Query)
				return nil
			}
			fmt.Fprintf(w, "%d result(s) for %q\n\n", len(r.Phrases), r.Query)
			printPhrases(w, r.Phrases)
			return nil
		},
	}
}

func recentCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "recent",
		Usage: "list or edit recent searches",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "remove",
				Usage: "remove the recent search `TERM`",
			},
			&cli.BoolFlag{
				Name:               "clear",
				Usage:              "clear all recent searches",
				DisableDefaultText: true,
			},
		},
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			s, err := e.openStore(c)
			if err != nil {
				return err
			}

			switch {
			case c.Bool("clear"):
				s.Searches.ClearAll()
			case c.IsSet("remove"):
				s.Searches.Remove(c.String("remove"))
			}

			w := c.App.Writer
			terms := s.Searches.List()
			if len(terms) == 0 {
				fmt.Fprintln(w, "No recent searches.")
				return nil
			}
			for i, t := range terms {
				fmt.Fprintf(w, "%2d. %s\n", i+1, t)
			}
			return nil
		},
	}
}
