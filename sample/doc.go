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

// Package sample implements reproducible random variables over a
// shared, indexable probability space.
//
// Package sample provides the RandomVariable interface along with
// implementations of it for the Bernoulli, Uniform, Normal,
// Exponential and Cauchy distributions. Every variable owns an
// independent pseudo-random stream derived from a root seed and the
// variable's construction-order identity, so that re-running a program
// after Restart reproduces bit-identical output, and independently
// declared variables never draw from overlapping randomness.
//
// A Universe holds the root seed and the identity counter. Most
// programs use the package-level default universe:
//
//	sample.Restart()
//	u, _ := sample.NewUniform(0, 1)
//	omega, _ := sample.NewOmega(1000)
//	values := u.Evaluate(omega)
//
// Tests and libraries that must not interfere with each other can
// instead construct private universes with NewUniverse.
package sample
