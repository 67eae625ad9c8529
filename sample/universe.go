/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"sync"
)

// DefaultSeed is the root seed a universe is restarted to when no
// explicit seed is given. Programs that never choose a seed are still
// deterministic.
const DefaultSeed uint64 = 0

// Universe is the probability space context: it holds the root seed
// and assigns every random variable constructed in it a unique,
// strictly increasing identity. The stream of a variable is a pure
// function of (seed, identity), so a universe restarted to the same
// seed reproduces the streams of an identical construction order
// exactly.
//
// The identity counter is guarded, so variables may be constructed
// from multiple goroutines and still receive unique identities.
// Determinism across runs, however, additionally requires that the
// construction order itself is deterministic, which concurrent
// construction does not provide by itself.
type Universe struct {
	mu   sync.Mutex
	seed uint64
	next uint64
}

// NewUniverse returns a fresh universe rooted at the given seed. Its
// first variable receives identity 0.
func NewUniverse(seed uint64) *Universe {
	return &Universe{seed: seed}
}

// allocate assigns the next identity. The seed is captured under the
// same lock so a concurrent Restart cannot split a variable between an
// old seed and a new identity.
func (u *Universe) allocate() (id, seed uint64) {
	u.mu.Lock()
	defer u.mu.Unlock()

	id = u.next
	u.next++

	return id, u.seed
}

// Restart resets the universe: the identity counter returns to zero
// and the root seed is replaced by seed. Variables constructed before
// the restart keep the streams they derived at construction time;
// variables constructed after it draw from the restarted space.
func (u *Universe) Restart(seed uint64) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.seed = seed
	u.next = 0
}

// Snapshot captures the state of a universe so it can be restored
// later. Snapshots are plain values and may be kept across the whole
// life of a process.
type Snapshot struct {
	Seed uint64
	Next uint64
}

// Save returns a snapshot of the universe's current state.
func (u *Universe) Save() Snapshot {
	u.mu.Lock()
	defer u.mu.Unlock()

	return Snapshot{Seed: u.seed, Next: u.next}
}

// Restore brings the universe back to a previously saved state. A
// variable constructed after Restore receives the same identity, and
// therefore the same stream, as the variable constructed in its place
// after the corresponding Save.
func (u *Universe) Restore(s Snapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.seed = s.Seed
	u.next = s.Next
}

var defaultUniverse = NewUniverse(DefaultSeed)

// Default returns the process-wide default universe used by the
// package-level constructors.
func Default() *Universe {
	return defaultUniverse
}

// Restart resets the default universe to DefaultSeed. A program that
// begins with Restart and constructs its variables in a fixed order
// produces bit-identical output on every run.
func Restart() {
	defaultUniverse.Restart(DefaultSeed)
}

// RestartSeed resets the default universe to the given seed.
func RestartSeed(seed uint64) {
	defaultUniverse.Restart(seed)
}

// Save snapshots the default universe.
func Save() Snapshot {
	return defaultUniverse.Save()
}

// Restore brings the default universe back to a saved state.
func Restore(s Snapshot) {
	defaultUniverse.Restore(s)
}
