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

// Package data provides the numeric carriers handed to downstream
// consumers of sampled values, together with the summary statistics
// needed to inspect them.
package data

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Sampler is the minimal surface needed to fill a vector with random
// draws. It is satisfied by every distribution in the sample package.
type Sampler interface {
	Sample() float64
}

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance with n elements drawn
// from the provided sampler. Each call to the sampler consumes fresh
// draws from its stream.
func NewRandomVector(n int, sampler Sampler) Vector {
	vec := make([]float64, n)
	for i := 0; i < n; i++ {
		vec[i] = sampler.Sample()
	}

	return NewVector(vec)
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(n int, c float64) Vector {
	vec := make([]float64, n)
	for i := 0; i < n; i++ {
		vec[i] = c
	}

	return NewVector(vec)
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make([]float64, len(v))
	copy(newVec, v)

	return NewVector(newVec)
}

// Dim returns the number of elements of vector v.
func (v Vector) Dim() int {
	return len(v)
}

// Scalar unwraps a width-1 vector into its single value. It is the
// scalar side of the scalar/array duality: evaluating a random variable
// against a scalar sample space yields a vector of dimension 1, and
// Scalar recovers the plain number. Calling it on a vector of any other
// dimension is a programming error and panics.
func (v Vector) Scalar() float64 {
	if len(v) != 1 {
		panic("data: Scalar called on a vector of dimension != 1")
	}

	return v[0]
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	return v.Apply(func(e float64) float64 {
		return x * e
	})
}

// Neg negates every element of vector v.
// The result is returned in a new Vector.
func (v Vector) Neg() Vector {
	return v.MulScalar(-1)
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	newVec := make(Vector, len(v))
	for i, e := range v {
		newVec[i] = f(e)
	}

	return newVec
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
// It returns an error if the vectors differ in dimension.
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, errors.Errorf("cannot add vectors of dimensions %d and %d", len(v), len(other))
	}
	sum := make(Vector, len(v))
	for i, e := range v {
		sum[i] = e + other[i]
	}

	return sum, nil
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
// It returns an error if the vectors differ in dimension.
func (v Vector) Sub(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, errors.Errorf("cannot subtract vectors of dimensions %d and %d", len(v), len(other))
	}
	diff := make(Vector, len(v))
	for i, e := range v {
		diff[i] = e - other[i]
	}

	return diff, nil
}

// Mul multiplies vectors v and other element-wise.
// The result is returned in a new Vector.
// It returns an error if the vectors differ in dimension.
func (v Vector) Mul(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, errors.Errorf("cannot multiply vectors of dimensions %d and %d", len(v), len(other))
	}
	prod := make(Vector, len(v))
	for i, e := range v {
		prod[i] = e * other[i]
	}

	return prod, nil
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if the vectors differ in dimension.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, errors.Errorf("cannot multiply vectors of dimensions %d and %d", len(v), len(other))
	}
	prod := 0.0
	for i, e := range v {
		prod += e * other[i]
	}

	return prod, nil
}

// Mean returns the arithmetic mean of the elements of v.
func (v Vector) Mean() float64 {
	return stat.Mean(v, nil)
}

// Variance returns the unbiased sample variance of the elements of v.
func (v Vector) Variance() float64 {
	return stat.Variance(v, nil)
}

// StdDev returns the sample standard deviation of the elements of v.
func (v Vector) StdDev() float64 {
	return stat.StdDev(v, nil)
}

// Median returns the empirical median of the elements of v.
func (v Vector) Median() float64 {
	sorted := v.Copy()
	sort.Float64s(sorted)

	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// Min returns the smallest element of v.
func (v Vector) Min() float64 {
	min := math.Inf(1)
	for _, e := range v {
		if e < min {
			min = e
		}
	}

	return min
}

// Max returns the largest element of v.
func (v Vector) Max() float64 {
	max := math.Inf(-1)
	for _, e := range v {
		if e > max {
			max = e
		}
	}

	return max
}
