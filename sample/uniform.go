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

// Uniform samples random values from the continuous uniform
// distribution on the interval [a, b].
type Uniform struct {
	variable
	a float64
	b float64
}

// Uniform constructs a uniform variable on [a, b] in universe u.
// The bounds must satisfy a < b.
func (u *Universe) Uniform(a, b float64) (*Uniform, error) {
	if !(a < b) {
		return nil, errors.WithMessagef(ErrConfiguration,
			"uniform bounds must satisfy a < b, got [%v, %v]", a, b)
	}

	return &Uniform{variable: newVariable(u), a: a, b: b}, nil
}

// NewUniform constructs a uniform variable on [a, b] in the default
// universe. The conventional parameters are a = 0, b = 1.
func NewUniform(a, b float64) (*Uniform, error) {
	return Default().Uniform(a, b)
}

// Evaluate draws o.Size() samples, each a + u*(b-a) for a fresh
// uniform u.
func (s *Uniform) Evaluate(o Omega) data.Vector {
	us := s.uniforms(o)
	for i, u := range us {
		us[i] = s.a + u*(s.b-s.a)
	}

	return data.NewVector(us)
}

// Sample draws a single value.
func (s *Uniform) Sample() float64 {
	return s.Evaluate(Scalar()).Scalar()
}
