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

// Package speech implements text-to-speech playback of phrases.
//
// Speech is an optional capability. Callers should treat ErrUnavailable as a
// normal condition and carry on without audio.
package speech

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable indicates that speech synthesis is not available.
	ErrUnavailable = errors.New("speech unavailable")

	// ErrInterrupted indicates that an utterance was cancelled by Stop or a
	// newer utterance.
	ErrInterrupted = errors.New("speech interrupted")
)

// DefaultLocale is the locale used for utterances that do not set one.
const DefaultLocale = "zh-CN"

// Speaking rates relative to the synthesizer's normal rate.
const (
	NormalRate = 0.9
	SlowRate   = 0.6
)

// Events receives notifications about the progress of an utterance. Any of
// the functions may be nil.
type Events struct {
	OnStart func()
	OnEnd   func()
	OnError func(error)
}

func (e Events) start() {
	if e.OnStart != nil {
		e.OnStart()
	}
}

func (e Events) end() {
	if e.OnEnd != nil {
		e.OnEnd()
	}
}

func (e Events) error(err error) {
	if e.OnError != nil {
		e.OnError(err)
	}
}

// Utterance is text to be spoken.
type Utterance struct {
	Text string

	// Locale is a BCP 47 language tag. Empty means DefaultLocale.
	Locale string

	// Rate is the speaking rate. Zero means NormalRate.
	Rate float64

	Events Events
}

// NewUtterance returns an utterance of text in the default locale at the
// normal or slow rate.
func NewUtterance(text string, slow bool) Utterance {
	u := Utterance{
		Text:   text,
		Locale: DefaultLocale,
		Rate:   NormalRate,
	}
	if slow {
		u.Rate = SlowRate
	}
	return u
}

func (u Utterance) locale() string {
	if u.Locale == "" {
		return DefaultLocale
	}
	return u.Locale
}

func (u Utterance) rate() float64 {
	if u.Rate <= 0 {
		return NormalRate
	}
	return u.Rate
}

// Speaker speaks utterances.
type Speaker interface {
	// Speak speaks u and blocks until it finishes. Any utterance already in
	// progress is interrupted first.
	Speak(ctx context.Context, u Utterance) error

	// Stop interrupts the utterance in progress, if any.
	Stop() error
}

// Nop is a Speaker for environments without speech synthesis.
type Nop struct{}

// Speak returns ErrUnavailable.
func (Nop) Speak(context.Context, Utterance) error { return ErrUnavailable }

// Stop does nothing.
func (Nop) Stop() error { return nil }
