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

package speech

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strconv"
	"sync"

	"golang.org/x/text/language"
)

// DefaultCommand is the synthesizer used when Command.Path is empty.
const DefaultCommand = "espeak-ng"

// baseWPM is the synthesizer's words per minute at rate 1.0.
const baseWPM = 175

// Command is a Speaker that runs an external speech synthesizer accepting
// espeak-ng compatible arguments.
type Command struct {
	// Path is the synthesizer executable. Empty means DefaultCommand.
	Path string

	// Args are passed to the synthesizer before the generated arguments.
	Args []string

	// Env holds extra environment variables for the synthesizer.
	Env []string

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    int
}

// Available returns true if the synthesizer executable can be found.
func (c *Command) Available() bool {
	_, err := exec.LookPath(c.path())
	return err == nil
}

// Speak runs the synthesizer for u and waits for it to exit.
func (c *Command) Speak(ctx context.Context, u Utterance) error {
	path, err := exec.LookPath(c.path())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	seq := c.seq
	c.cancel = cancel
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.seq == seq {
			c.cancel = nil
		}
		c.mu.Unlock()
	}()

	cmd := exec.CommandContext(ctx, path, c.args(u)...)
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	if err := cmd.Start(); err != nil {
		err = fmt.Errorf("starting %s: %w", path, err)
		u.Events.error(err)
		return err
	}
	u.Events.start()

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			err = fmt.Errorf("%w: %w", ErrInterrupted, context.Cause(ctx))
		} else {
			err = fmt.Errorf("running %s: %w", path, err)
		}
		u.Events.error(err)
		return err
	}
	u.Events.end()
	return nil
}

// Stop interrupts the utterance in progress.
func (c *Command) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	return nil
}

func (c *Command) path() string {
	if c.Path == "" {
		return DefaultCommand
	}
	return c.Path
}

func (c *Command) args(u Utterance) []string {
	args := append([]string(nil), c.Args...)
	return append(args,
		"-v", Voice(u.locale()),
		"-s", strconv.Itoa(WordsPerMinute(u.rate())),
		"--", u.Text,
	)
}

// Voice returns the synthesizer voice name for a BCP 47 locale. Chinese
// locales map to the Mandarin voice except Cantonese locales. Locales that
// cannot be parsed are returned unchanged.
func Voice(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	base, _ := tag.Base()
	switch base.String() {
	case "zh", "cmn":
		if region, conf := tag.Region(); conf == language.Exact && (region.String() == "HK" || region.String() == "MO") {
			return "yue"
		}
		return "cmn"
	default:
		return base.String()
	}
}

// WordsPerMinute converts a relative speaking rate to words per minute.
func WordsPerMinute(rate float64) int {
	return int(math.Round(baseWPM * rate))
}

var (
	_ Speaker = (*Command)(nil)
	_ Speaker = Nop{}
)

