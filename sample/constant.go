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
	"github.com/probspace-project/gorv/data"
)

// Constant is the degenerate random variable equal to the same value
// over the whole sample space. It consumes no identity and no
// randomness, so declaring one leaves every other variable's stream
// untouched.
type Constant struct {
	value float64
}

// NewConstant returns the constant variable with the given value.
func NewConstant(value float64) *Constant {
	return &Constant{value: value}
}

// Evaluate returns a vector of o.Size() copies of the constant.
func (s *Constant) Evaluate(o Omega) data.Vector {
	return data.NewConstantVector(o.Size(), s.value)
}

// Sample returns the constant.
func (s *Constant) Sample() float64 {
	return s.value
}
