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
)

// Omega is a sample space: an index set of width n over which any
// random variable can be evaluated. It carries no distribution state
// and never touches a variable's stream; it only tells Evaluate how
// many draws to produce.
//
// The zero value is the scalar sample space, whose results are
// unwrapped with Vector.Scalar.
type Omega struct {
	n int
}

// NewOmega returns a sample space of width n. The width must be at
// least 1; evaluating a variable against the result yields a vector of
// exactly n values.
func NewOmega(n int) (Omega, error) {
	if n < 1 {
		return Omega{}, errors.WithMessagef(ErrConfiguration,
			"sample space width must be a positive integer, got %d", n)
	}

	return Omega{n: n}, nil
}

// Scalar returns the scalar sample space: a single draw whose result
// is meant to be unwrapped into a plain value rather than kept as a
// width-1 vector.
func Scalar() Omega {
	return Omega{}
}

// Size returns the number of draws an evaluation against o produces.
func (o Omega) Size() int {
	if o.n == 0 {
		return 1
	}

	return o.n
}

// IsScalar reports whether o is the scalar sample space.
func (o Omega) IsScalar() bool {
	return o.n == 0
}
