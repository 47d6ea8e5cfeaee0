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
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-phrasebook/speech"
)

func speakCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "speak",
		Usage:     "speak a phrase or saved word aloud",
		ArgsUsage: "ID",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:               "slow",
				Usage:              "speak slowly",
				DisableDefaultText: true,
			},
		},
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			id := c.Args().First()

			text := ""
			if p, err := e.pb.Phrase(id); err == nil {
				text = p.Chinese
			} else {
				s, openErr := e.openStore(c)
				if openErr != nil {
					return openErr
				}
				w, ok := s.Words.Get(id)
				if !ok {
					return err
				}
				text = w.Chinese
			}

			return speak(c, e, text, c.Bool("slow"))
		},
	}
}

// speak speaks text. Missing speech support is reported but is not an error.
func speak(c *cli.Context, e *env, text string, slow bool) error {
	u := speech.NewUtterance(text, slow)
	u.Events.OnStart = func() {
		e.logger.Debug("speaking", "text", text, "rate", u.Rate)
	}
	err := e.speaker.Speak(c.Context, u)
	if errors.Is(err, speech.ErrUnavailable) {
		e.logger.Debug("speech unavailable", "error", err)
		fmt.Fprintln(c.App.ErrWriter, "Speech is not available.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: speaking: %w", ErrPhrasebook, err)
	}
	return nil
}
