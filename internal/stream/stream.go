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

// Package stream derives independent, deterministic pseudo-random
// streams from a root seed and a variable identity.
//
// A stream is a pure function of the pair (seed, id): the pair is
// hashed with BLAKE2b-256 and the first 8 bytes of the digest seed a
// SplitMix64 generator. Distinct identities therefore yield
// statistically independent sequences, and the same pair always
// reproduces the identical sequence, on any platform, with no
// dependence on wall-clock time or process entropy.
package stream

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// SplitMix64 constants from Steele, Lea and Flood,
// "Fast splittable pseudorandom number generators".
const (
	gamma = 0x9E3779B97F4A7C15
	mix1  = 0xBF58476D1CE4E5B9
	mix2  = 0x94D049BB133111EB
)

// Source is a deterministic generator of uniform variates for a single
// variable identity. It is stateful: every call to Uint64 or Float64
// advances the sequence. A Source must not be shared across goroutines.
type Source struct {
	state uint64
}

// New returns the stream belonging to identity id under the given root
// seed. The derivation is the reproducibility contract of the library;
// changing it invalidates every pinned sequence.
func New(seed, id uint64) *Source {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], seed)
	binary.LittleEndian.PutUint64(buf[8:], id)
	sum := blake2b.Sum256(buf[:])

	return &Source{state: binary.LittleEndian.Uint64(sum[:8])}
}

// Uint64 returns the next 64 uniform pseudo-random bits.
func (s *Source) Uint64() uint64 {
	s.state += gamma
	z := s.state
	z = (z ^ (z >> 30)) * mix1
	z = (z ^ (z >> 27)) * mix2
	return z ^ (z >> 31)
}

// Float64 returns the next uniform variate in the half-open interval
// [0,1), using the top 53 bits of Uint64 so every returned value is an
// exactly representable multiple of 2^-53.
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}
