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
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-phrasebook/flashcard"
)

const drillHelp = "[enter] flip  n next  p prev  s save  x shuffle  a speak  q quit"

func drillCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "drill",
		Usage: "practice with flashcards",
		Description: strings.Join([]string{
			"Shows shuffled flashcards read from standard input commands:",
			drillHelp,
			"With --count the first COUNT cards are printed front and back instead.",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "mode",
				Usage: "drill `MODE` (phrases, words)",
				Value: string(flashcard.Phrases),
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "print `COUNT` cards and exit",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "shuffle with random `SEED`",
			},
		},
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			mode, err := flashcard.ParseMode(c.String("mode"))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrFlagParse, err)
			}
			var rng *rand.Rand
			if c.IsSet("seed") {
				seed := c.Uint64("seed")
				rng = rand.New(rand.NewPCG(seed, seed))
			}
			deck, err := flashcard.NewDeck(e.pb.Dataset(), mode, rng)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrPhrasebook, err)
			}

			if n := c.Int("count"); n > 0 {
				printCards(c.App.Writer, deck, n)
				return nil
			}
			return runDrill(c, e, deck)
		},
	}
}

func printCards(w io.Writer, deck *flashcard.Deck, n int) {
	n = min(n, deck.Len())
	for i := range n {
		card, _ := deck.Current()
		fmt.Fprintf(w, "%d/%d %s\n    %s\n    %s\n", i+1, deck.Len(), card.Chinese, card.Pinyin, card.English)
		deck.Next()
	}
}

func printCard(w io.Writer, deck *flashcard.Deck) {
	card, ok := deck.Current()
	if !ok {
		fmt.Fprintln(w, "No cards.")
		return
	}
	fmt.Fprintf(w, "%d/%d [%s] %s\n", deck.Index()+1, deck.Len(), card.Category, card.Chinese)
	if deck.Flipped() {
		fmt.Fprintf(w, "    %s\n    %s\n", card.Pinyin, card.English)
	}
}

func runDrill(c *cli.Context, e *env, deck *flashcard.Deck) error {
	w := c.App.Writer
	fmt.Fprintln(w, drillHelp)
	printCard(w, deck)

	scanner := bufio.NewScanner(c.App.Reader)
	for scanner.Scan() {
		switch strings.TrimSpace(scanner.Text()) {
		case "", "f":
			deck.Flip()
		case "n":
			deck.Next()
		case "p":
			deck.Prev()
		case "x":
			deck.Shuffle()
		case "s":
			s, err := e.openStore(c)
			if err != nil {
				return err
			}
			if deck.ToggleSaved(s) {
				fmt.Fprintln(w, "Saved.")
			} else {
				fmt.Fprintln(w, "Removed.")
			}
			continue
		case "a":
			card, ok := deck.Current()
			if !ok {
				continue
			}
			if err := speak(c, e, card.Chinese, false); err != nil {
				return err
			}
			continue
		case "q":
			return nil
		default:
			fmt.Fprintln(w, drillHelp)
			continue
		}
		printCard(w, deck)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: reading input: %w", ErrPhrasebook, err)
	}
	return nil
}
