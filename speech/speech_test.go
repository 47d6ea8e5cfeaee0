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
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// TestHelperProcess is not a real test. It stands in for the synthesizer
// when run by helperCommand.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	if i := slices.Index(args, "--"); i >= 0 {
		args = args[i+1:]
	}
	if out := os.Getenv("HELPER_ARGS_FILE"); out != "" {
		if err := os.WriteFile(out, []byte(strings.Join(args, "\n")), 0o600); err != nil {
			os.Exit(2)
		}
	}

	switch os.Getenv("HELPER_MODE") {
	case "fail":
		os.Exit(1)
	case "hang":
		time.Sleep(time.Minute)
	}
	os.Exit(0)
}

func helperCommand(t *testing.T, mode string) (*Command, string) {
	t.Helper()

	out := filepath.Join(t.TempDir(), "args")
	return &Command{
		Path: os.Args[0],
		Args: []string{"-test.run=^TestHelperProcess$", "--"},
		Env: []string{
			"GO_WANT_HELPER_PROCESS=1",
			"HELPER_MODE=" + mode,
			"HELPER_ARGS_FILE=" + out,
		},
	}, out
}

// recorder records utterance events.
type recorder struct {
	started chan struct{}
	events  []string
}

func newRecorder() *recorder {
	return &recorder{started: make(chan struct{}, 1)}
}

func (r *recorder) Events() Events {
	return Events{
		OnStart: func() {
			r.events = append(r.events, "start")
			r.started <- struct{}{}
		},
		OnEnd: func() {
			r.events = append(r.events, "end")
		},
		OnError: func(error) {
			r.events = append(r.events, "error")
		},
	}
}

func TestNewUtterance(t *testing.T) {
	t.Parallel()

	want := Utterance{Text: "你好", Locale: "zh-CN", Rate: 0.9}
	if diff := cmp.Diff(want, NewUtterance("你好", false)); diff != "" {
		t.Errorf("NewUtterance (-want, +got):\n%s", diff)
	}
	if got, want := NewUtterance("你好", true).Rate, 0.6; got != want {
		t.Errorf("slow Rate: got %v, want %v", got, want)
	}
}

func TestNop(t *testing.T) {
	t.Parallel()

	var s Speaker = Nop{}
	if err := s.Speak(context.Background(), NewUtterance("你好", false)); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Speak: got %v, want %v", err, ErrUnavailable)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

func TestVoice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale   string
		expected string
	}{
		{"zh-CN", "cmn"},
		{"zh-TW", "cmn"},
		{"zh", "cmn"},
		{"zh-HK", "yue"},
		{"en-US", "en"},
		{"not a locale", "not a locale"},
	}

	for _, test := range tests {
		t.Run(test.locale, func(t *testing.T) {
			t.Parallel()

			if got, want := Voice(test.locale), test.expected; got != want {
				t.Errorf("Voice(%q): got %q, want %q", test.locale, got, want)
			}
		})
	}
}

func TestWordsPerMinute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rate     float64
		expected int
	}{
		{1, 175},
		{2, 350},
		{NormalRate, 158},
		{SlowRate, 105},
	}

	for _, test := range tests {
		if got, want := WordsPerMinute(test.rate), test.expected; got != want {
			t.Errorf("WordsPerMinute(%v): got %d, want %d", test.rate, got, want)
		}
	}
}

func TestCommand_Speak(t *testing.T) {
	t.Parallel()

	c, out := helperCommand(t, "ok")
	r := newRecorder()

	u := NewUtterance("你好", true)
	u.Events = r.Events()
	if err := c.Speak(context.Background(), u); err != nil {
		t.Fatalf("Speak: %v", err)
	}

	if diff := cmp.Diff([]string{"start", "end"}, r.events); diff != "" {
		t.Errorf("events (-want, +got):\n%s", diff)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := []string{"-v", "cmn", "-s", "105", "--", "你好"}
	if diff := cmp.Diff(want, strings.Split(string(b), "\n")); diff != "" {
		t.Errorf("args (-want, +got):\n%s", diff)
	}
}

func TestCommand_Speak_defaults(t *testing.T) {
	t.Parallel()

	c, out := helperCommand(t, "ok")
	if err := c.Speak(context.Background(), Utterance{Text: "-v"}); err != nil {
		t.Fatalf("Speak: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := []string{"-v", "cmn", "-s", "158", "--", "-v"}
	if diff := cmp.Diff(want, strings.Split(string(b), "\n")); diff != "" {
		t.Errorf("args (-want, +got):\n%s", diff)
	}
}

func TestCommand_Speak_failure(t *testing.T) {
	t.Parallel()

	c, _ := helperCommand(t, "fail")
	r := newRecorder()

	u := NewUtterance("你好", false)
	u.Events = r.Events()
	err := c.Speak(context.Background(), u)
	if err == nil {
		t.Fatalf("Speak: expected error")
	}
	if errors.Is(err, ErrInterrupted) {
		t.Errorf("Speak: unexpected %v", err)
	}
	if diff := cmp.Diff([]string{"start", "error"}, r.events); diff != "" {
		t.Errorf("events (-want, +got):\n%s", diff)
	}
}

func TestCommand_Speak_unavailable(t *testing.T) {
	t.Parallel()

	c := &Command{Path: filepath.Join(t.TempDir(), "no-such-synthesizer")}
	if c.Available() {
		t.Errorf("Available: got true, want false")
	}
	if err := c.Speak(context.Background(), NewUtterance("你好", false)); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Speak: got %v, want %v", err, ErrUnavailable)
	}
}

func TestCommand_Stop(t *testing.T) {
	t.Parallel()

	c, _ := helperCommand(t, "hang")
	r := newRecorder()

	u := NewUtterance("你好", false)
	u.Events = r.Events()

	errc := make(chan error, 1)
	go func() {
		errc <- c.Speak(context.Background(), u)
	}()

	select {
	case <-r.started:
	case <-time.After(10 * time.Second):
		t.Fatalf("timed out waiting for speech to start")
	}
	if err := c.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	select {
	case err := <-errc:
		if !errors.Is(err, ErrInterrupted) {
			t.Errorf("Speak: got %v, want %v", err, ErrInterrupted)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("timed out waiting for speech to stop")
	}

	// Stopping with nothing in progress is fine.
	if err := c.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}
