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
)

// Bernoulli samples random values from the Bernoulli distribution with
// success probability p. Evaluate encodes success as 1 and failure as
// 0; Flip and Flips expose the boolean form.
type Bernoulli struct {
	variable
	p float64
}

// Bernoulli constructs a Bernoulli variable with success probability p
// in universe u. The probability must lie in [0, 1].
func (u *Universe) Bernoulli(p float64) (*Bernoulli, error) {
	if !(p >= 0 && p <= 1) {
		return nil, errors.WithMessagef(ErrConfiguration,
			"bernoulli probability must lie in [0, 1], got %v", p)
	}

	return &Bernoulli{variable: newVariable(u), p: p}, nil
}

// NewBernoulli constructs a Bernoulli variable in the default
// universe. The conventional parameter is p = 0.5.
func NewBernoulli(p float64) (*Bernoulli, error) {
	return Default().Bernoulli(p)
}

// Evaluate draws o.Size() samples, each 1 when u < p for a fresh
// uniform u and 0 otherwise. The comparison uses the exact stored
// parameter, so p = 0 never succeeds and, since draws lie in [0,1),
// p = 1 always does.
func (s *Bernoulli) Evaluate(o Omega) data.Vector {
	us := s.uniforms(o)
	for i, u := range us {
		if u < s.p {
			us[i] = 1
		} else {
			us[i] = 0
		}
	}

	return data.NewVector(us)
}

// Sample draws a single value, 1 or 0.
func (s *Bernoulli) Sample() float64 {
	return s.Evaluate(Scalar()).Scalar()
}

// Flip draws a single boolean.
func (s *Bernoulli) Flip() bool {
	return s.Sample() == 1
}

// Flips draws o.Size() booleans.
func (s *Bernoulli) Flips(o Omega) []bool {
	values := s.Evaluate(o)
	flips := make([]bool, len(values))
	for i, x := range values {
		flips[i] = x == 1
	}

	return flips
}
