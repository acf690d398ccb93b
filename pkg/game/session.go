// Copyright © 2026 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package game plays single rounds against the computer. A Session picks
// the computer's move and commits to it before the player's move is known,
// and reveals everything needed to check that commitment once the player
// has moved.
package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/rps/pkg/commitment"
	"laptudirm.com/x/rps/pkg/moves"
	"laptudirm.com/x/rps/pkg/rules"
)

var (
	// ErrUnknownMove is returned by Play when the player's move is not in
	// the catalog. The Session is left untouched and Play can be retried.
	ErrUnknownMove = errors.New("unknown move")

	// ErrSessionOver is returned by Play once the Session has been revealed.
	ErrSessionOver = errors.New("session already revealed")
)

// State is the stage of a Session.
type State int

const (
	Initialized State = iota
	MoveSubmitted
	Revealed
)

func (state State) String() string {
	switch state {
	case Initialized:
		return "initialized"
	case MoveSubmitted:
		return "move-submitted"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// Picker returns a number in [0, n). It picks the computer's move, which
// doesn't need to be cryptographically random: fairness comes from the
// commitment, not from the move being unpredictable.
type Picker func(n int) int

// Option configures a Session.
type Option func(*Session)

// WithPicker makes the Session pick the computer's move with picker.
func WithPicker(picker Picker) Option {
	return func(session *Session) {
		session.picker = picker
	}
}

// WithScheme makes the Session generate its key with scheme.
func WithScheme(scheme commitment.Scheme) Option {
	return func(session *Session) {
		session.scheme = scheme
	}
}

// Session is a single round against the computer. It is single use and
// not safe for concurrent use.
type Session struct {
	catalog   *moves.Catalog
	partition rules.Partition

	picker Picker
	scheme commitment.Scheme

	state    State
	opponent string
	key      commitment.Key
	digest   commitment.Digest
}

// New starts a Session with the given catalog: the computer's move is
// picked and committed to right away.
func New(catalog *moves.Catalog, options ...Option) (*Session, error) {
	session := Session{
		catalog:   catalog,
		partition: rules.New(catalog),
		picker:    rand.Intn,
	}

	for _, option := range options {
		option(&session)
	}

	i := session.picker(catalog.Len())
	if i < 0 || i >= catalog.Len() {
		return nil, fmt.Errorf("new session: picked move %d out of %d", i, catalog.Len())
	}
	session.opponent = catalog.Label(i)

	var err error
	if session.key, err = session.scheme.GenerateKey(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	session.digest = commitment.Commit(session.key, session.opponent)
	session.state = Initialized

	logrus.WithFields(logrus.Fields{
		"moves":  catalog.Len(),
		"digest": session.digest,
	}).Debug("Committed to the computer's move")

	return &session, nil
}

// Catalog returns the moves the Session is played with.
func (session *Session) Catalog() *moves.Catalog {
	return session.catalog
}

// State returns the current State of the Session.
func (session *Session) State() State {
	return session.state
}

// Digest returns the commitment to the computer's move. It can be shown to
// the player before they move; the move and key can't be.
func (session *Session) Digest() commitment.Digest {
	return session.digest
}

// Play submits the player's move and reveals the computer's move along
// with the key it was committed with.
func (session *Session) Play(move string) (Reveal, error) {
	if session.state == Revealed {
		return Reveal{}, ErrSessionOver
	}

	if !session.catalog.Contains(move) {
		return Reveal{}, fmt.Errorf("%w: %q", ErrUnknownMove, move)
	}

	// The key and move are about to be shown, so they had better still
	// match what was committed to. A failure leaves the Session untouched.
	if err := commitment.Check(session.key, session.opponent, session.digest); err != nil {
		logrus.WithField("digest", session.digest).Error("Computer's move no longer matches its commitment")
		return Reveal{}, err
	}

	session.transition(MoveSubmitted)
	outcome := session.partition.Outcome(move, session.opponent)

	session.transition(Revealed)
	return Reveal{
		PlayerMove:   move,
		OpponentMove: session.opponent,
		Outcome:      outcome,
		Key:          session.key,
		Digest:       session.digest,
	}, nil
}

func (session *Session) transition(state State) {
	logrus.WithFields(logrus.Fields{
		"from": session.state,
		"to":   state,
	}).Trace("Session state changed")
	session.state = state
}

// Reveal is the result of a round, with everything a player needs to check
// the computer's commitment on their own.
type Reveal struct {
	PlayerMove   string
	OpponentMove string
	Outcome      rules.Outcome

	Key    commitment.Key
	Digest commitment.Digest
}

// Verify recomputes the commitment from the revealed key and move.
func (reveal Reveal) Verify() error {
	return commitment.Check(reveal.Key, reveal.OpponentMove, reveal.Digest)
}
