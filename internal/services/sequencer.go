// sequencer.go
//
// Support analytics data service for app chat analysis logs
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of supportdash.
// supportdash is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// supportdash is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with supportdash.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSequencerClients bounds how many client and view pairs a Sequencer tracks.
const DefaultSequencerClients = 10000

// MaxRequestToken is the largest request token accepted, the largest integer a
// JavaScript client can represent exactly. Issued tokens saturate here.
const MaxRequestToken uint64 = 1<<53 - 1

// Sequencer tracks the newest request token seen per client and view, so a response
// that finishes after a newer request from the same client can be dropped instead of
// overwriting the newer result. The least recently used pairs are forgotten once the
// bound is reached; a forgotten client's in-flight responses are treated as current.
type Sequencer struct {
	mu     sync.Mutex
	latest *lru.Cache[seqKey, uint64]
}

type seqKey struct {
	client string
	view   string
}

// SequencerOption configures a Sequencer.
type SequencerOption func(*sequencerOptions)

type sequencerOptions struct {
	maxClients int
}

// WithMaxClients bounds the number of client and view pairs tracked.
func WithMaxClients(n int) SequencerOption {
	return func(o *sequencerOptions) {
		if n > 0 {
			o.maxClients = n
		}
	}
}

// NewSequencer creates an empty sequencer.
func NewSequencer(opts ...SequencerOption) *Sequencer {
	o := sequencerOptions{maxClients: DefaultSequencerClients}
	for _, opt := range opts {
		opt(&o)
	}
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[seqKey, uint64](o.maxClients)
	return &Sequencer{latest: cache}
}

// Next issues a token newer than any seen for client and view, and records it.
func (s *Sequencer) Next(client, view string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := seqKey{client, view}
	token, _ := s.latest.Get(k)
	if token < MaxRequestToken {
		token++
	}
	s.latest.Add(k, token)
	return token
}

// Observe records a client supplied token. Older tokens do not lower the mark.
func (s *Sequencer) Observe(client, view string, token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := seqKey{client, view}
	token = min(token, MaxRequestToken)
	if latest, _ := s.latest.Get(k); token > latest {
		s.latest.Add(k, token)
	}
}

// Current reports whether token is still the newest for client and view.
func (s *Sequencer) Current(client, view string, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	latest, _ := s.latest.Peek(seqKey{client, view})
	return token >= latest
}

// Len is the number of client and view pairs tracked.
func (s *Sequencer) Len() int {
	return s.latest.Len()
}
