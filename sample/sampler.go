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
	"github.com/pkg/errors"

	"github.com/probspace-project/gorv/data"
	"github.com/probspace-project/gorv/internal/stream"
)

// ErrConfiguration is returned, wrapped with context, by every
// constructor that rejects its parameters: out-of-range distribution
// parameters and non-positive sample space widths. It is never
// deferred to evaluation time and parameters are never clamped.
var ErrConfiguration = errors.New("invalid configuration")

// RandomVariable is implemented by all distributions. A random
// variable is a pure transform from its own uniform stream to the
// distribution's values; all state it mutates is the position in that
// stream.
//
// Evaluate draws o.Size() fresh uniform variates and transforms them
// elementwise. Repeat calls against the same sample space consume
// fresh draws and therefore yield different values; reproducing a
// sequence requires restarting the universe and reconstructing the
// variable. A single variable must not be evaluated concurrently.
//
// Sample is the scalar form: exactly one draw, returned unwrapped. It
// is equivalent to Evaluate(Scalar()).Scalar().
type RandomVariable interface {
	Evaluate(o Omega) data.Vector
	Sample() float64
}

// variable carries the stream state shared by all distributions. The
// identity is assigned, and the stream derived, the moment the
// distribution is constructed, not when it is first sampled.
type variable struct {
	id  uint64
	src *stream.Source
}

func newVariable(u *Universe) variable {
	id, seed := u.allocate()

	return variable{id: id, src: stream.New(seed, id)}
}

// uniforms draws o.Size() variates in [0,1) from the variable's own
// stream, one per requested sample.
func (v *variable) uniforms(o Omega) []float64 {
	if v.src == nil {
		// Only reachable through a hand-built zero value; a
		// programming error, not a recoverable state.
		panic("sample: random variable has no derived stream")
	}

	us := make([]float64, o.Size())
	for i := range us {
		us[i] = v.src.Float64()
	}

	return us
}
