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
	"gonum.org/v1/gonum/mathext"

	"github.com/probspace-project/gorv/data"
)

// Normal samples random values from the Normal (Gaussian) distribution
// with the given mean and variance. Note that the second parameter is
// the variance, not the standard deviation; it is stored verbatim for
// inspectability and its square root is taken at sampling time.
type Normal struct {
	variable
	mean     float64
	variance float64
}

// Normal constructs a normal variable in universe u. The variance must
// be strictly positive.
func (u *Universe) Normal(mean, variance float64) (*Normal, error) {
	if !(variance > 0) {
		return nil, errors.WithMessagef(ErrConfiguration,
			"normal variance must be positive, got %v", variance)
	}

	return &Normal{variable: newVariable(u), mean: mean, variance: variance}, nil
}

// NewNormal constructs a normal variable in the default universe. The
// conventional parameters are mean = 0, variance = 1.
func NewNormal(mean, variance float64) (*Normal, error) {
	return Default().Normal(mean, variance)
}

// Evaluate draws o.Size() samples via the inverse CDF of the standard
// normal distribution: mean + sqrt(variance) * Phi^-1(u) for a fresh
// uniform u.
func (s *Normal) Evaluate(o Omega) data.Vector {
	us := s.uniforms(o)
	sigma := math.Sqrt(s.variance)
	for i, u := range us {
		us[i] = s.mean + sigma*mathext.NormalQuantile(u)
	}

	return data.NewVector(us)
}

// Sample draws a single value.
func (s *Normal) Sample() float64 {
	return s.Evaluate(Scalar()).Scalar()
}
