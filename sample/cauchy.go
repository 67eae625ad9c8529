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

// Cauchy samples random values from the Cauchy distribution with the
// given location and scale.
type Cauchy struct {
	variable
	location float64
	scale    float64
}

// Cauchy constructs a Cauchy variable in universe u. The scale must be
// strictly positive.
func (u *Universe) Cauchy(location, scale float64) (*Cauchy, error) {
	if !(scale > 0) {
		return nil, errors.WithMessagef(ErrConfiguration,
			"cauchy scale must be positive, got %v", scale)
	}

	return &Cauchy{variable: newVariable(u), location: location, scale: scale}, nil
}

// NewCauchy constructs a Cauchy variable in the default universe. The
// conventional parameters are location = 0, scale = 1.
func NewCauchy(location, scale float64) (*Cauchy, error) {
	return Default().Cauchy(location, scale)
}

// Evaluate draws o.Size() samples via inversion:
// location + scale*tan(pi*(u-0.5)) for a fresh uniform u. Draws lie in
// [0,1) and pi/2 is not exactly representable, so the tangent stays
// finite over the whole boundary.
func (s *Cauchy) Evaluate(o Omega) data.Vector {
	us := s.uniforms(o)
	for i, u := range us {
		us[i] = s.location + s.scale*math.Tan(math.Pi*(u-0.5))
	}

	return data.NewVector(us)
}

// Sample draws a single value.
func (s *Cauchy) Sample() float64 {
	return s.Evaluate(Scalar()).Scalar()
}
