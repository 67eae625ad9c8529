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
	"math"

	"github.com/pkg/errors"

	"github.com/probspace-project/gorv/data"
)

// Exponential samples random values from the exponential distribution
// with the given rate.
type Exponential struct {
	variable
	rate float64
}

// Exponential constructs an exponential variable in universe u. The
// rate must be strictly positive.
func (u *Universe) Exponential(rate float64) (*Exponential, error) {
	if !(rate > 0) {
		return nil, errors.WithMessagef(ErrConfiguration,
			"exponential rate must be positive, got %v", rate)
	}

	return &Exponential{variable: newVariable(u), rate: rate}, nil
}

// NewExponential constructs an exponential variable in the default
// universe. The conventional parameter is rate = 1.
func NewExponential(rate float64) (*Exponential, error) {
	return Default().Exponential(rate)
}

// Evaluate draws o.Size() samples via inversion: -ln(1-u)/rate for a
// fresh uniform u. Draws lie in [0,1), so u = 0 maps to exactly 0 and
// the log never receives 0; no sample is infinite.
func (s *Exponential) Evaluate(o Omega) data.Vector {
	us := s.uniforms(o)
	for i, u := range us {
		us[i] = -math.Log1p(-u) / s.rate
	}

	return data.NewVector(us)
}

// Sample draws a single value.
func (s *Exponential) Sample() float64 {
	return s.Evaluate(Scalar()).Scalar()
}
