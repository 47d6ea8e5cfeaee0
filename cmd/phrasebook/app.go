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
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-phrasebook"
	"github.com/ianlewis/go-phrasebook/dataset"
	"github.com/ianlewis/go-phrasebook/speech"
	"github.com/ianlewis/go-phrasebook/storage"
	"github.com/ianlewis/go-phrasebook/store"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError

	// ExitCodeNotFound is the exit code used when a phrase, word or
	// situation does not exist or is not saved.
	ExitCodeNotFound
)

// ErrPhrasebook is a parent error for all command errors.
var ErrPhrasebook = errors.New("phrasebook")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrPhrasebook)

// ErrUnsupported indicates a feature is unsupported.
var ErrUnsupported = fmt.Errorf("%w: unsupported", ErrPhrasebook)

// ErrNotSaved indicates that a phrase or word is not saved.
var ErrNotSaved = fmt.Errorf("%w: not saved", ErrPhrasebook)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	case errors.Is(err, phrasebook.ErrNotFound), errors.Is(err, ErrNotSaved):
		return ExitCodeNotFound
	default:
		return ExitCodeUnknownError
	}
}

// env holds the state shared by commands for a single run.
type env struct {
	pb      *phrasebook.Phrasebook
	speaker speech.Speaker
	logger  *slog.Logger

	backend storage.Backend
	store   *store.Store
}

// appOption configures the app's env. Used by tests.
type appOption func(*env)

func withDataset(ds *dataset.Dataset) appOption {
	return func(e *env) {
		e.pb = phrasebook.New(ds)
	}
}

func withSpeaker(s speech.Speaker) appOption {
	return func(e *env) {
		e.speaker = s
	}
}

// openStore opens the storage backend and loads the store on first use.
func (e *env) openStore(c *cli.Context) (*store.Store, error) {
	if e.store != nil {
		return e.store, nil
	}
	b, err := openBackend(c.String("backend"), c.String("data-dir"))
	if err != nil {
		return nil, err
	}
	e.logger.Debug("opened storage", "backend", c.String("backend"), "data-dir", c.String("data-dir"))
	e.backend = b
	e.store = store.New(b, store.WithLogger(e.logger))
	return e.store, nil
}

func (e *env) close() error {
	if closer, ok := e.backend.(storage.BackendCloser); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("%w: closing storage: %w", ErrPhrasebook, err)
		}
	}
	return nil
}

func usageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

// requireArgs returns an error unless the command has exactly n arguments.
func requireArgs(c *cli.Context, n int) error {
	if got := c.Args().Len(); got != n {
		return fmt.Errorf("%w: %s: expected %d argument(s), got %d", ErrFlagParse, c.Command.Name, n, got)
	}
	return nil
}

func newPhrasebookApp(opts ...appOption) *cli.App {
	e := &env{
		speaker: &speech.Command{},
	}
	for _, o := range opts {
		o(e)
	}
	if e.pb == nil {
		e.pb = phrasebook.New(dataset.Default())
	}

	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Mandarin Chinese travel phrasebook.",
		Description: strings.Join([]string{
			"Browse, search, save and practice Chinese phrases.",
			"http://github.com/ianlewis/go-phrasebook",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "store saved phrases in `DIR`",
				Aliases: []string{"d"},
				EnvVars: []string{"PHRASEBOOK_DATA_DIR"},
				Value:   dataLocation(),
			},
			&cli.StringFlag{
				Name:    "backend",
				Usage:   "storage `BACKEND` (" + strings.Join(backends, ", ") + ")",
				EnvVars: []string{"PHRASEBOOK_BACKEND"},
				Value:   backendBolt,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log `LEVEL` (debug, info, warn, error)",
				EnvVars: []string{"PHRASEBOOK_LOG_LEVEL"},
				Value:   "warn",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		OnUsageError:    usageError,
		Before: func(c *cli.Context) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
				return fmt.Errorf("%w: log-level: %w", ErrFlagParse, err)
			}
			e.logger = slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))
			return nil
		},
		After: func(*cli.Context) error {
			return e.close()
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			situationsCommand(e),
			showCommand(e),
			phraseCommand(e),
			basicsCommand(e),
			searchCommand(e),
			recentCommand(e),
			saveCommand(e),
			saveWordCommand(e),
			removeCommand(e),
			savedCommand(e),
			favoriteCommand(e),
			noteCommand(e),
			useCommand(e),
			speakCommand(e),
			drillCommand(e),
		},
	}
}
