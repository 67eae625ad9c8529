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

package sample_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/probspace-project/gorv/sample"
)

func TestExponentialValidation(t *testing.T) {
	var tests = []struct {
		name  string
		rate  float64
		valid bool
	}{
		{name: "unit rate", rate: 1, valid: true},
		{name: "slow", rate: 0.01, valid: true},
		{name: "zero rate", rate: 0, valid: false},
		{name: "negative rate", rate: -2, valid: false},
	}

	u := sample.NewUniverse(0)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := u.Exponential(test.rate)
			if test.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, sample.ErrConfiguration)
			}
		})
	}
}

func TestExponentialMean(t *testing.T) {
	u := sample.NewUniverse(2)
	x, err := u.Exponential(0.5)
	assert.NoError(t, err)

	omega, err := sample.NewOmega(100000)
	assert.NoError(t, err)

	vec := x.Evaluate(omega)
	assert.InEpsilon(t, 2.0, vec.Mean(), 0.02)

	// inversion over draws in [0,1) keeps every sample finite and
	// non-negative
	assert.True(t, vec.Min() >= 0)
	assert.False(t, math.IsInf(vec.Max(), 1))
}
