/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package testutils

import (
	"math/rand/v2"
	"slices"
)

// RandomInts returns n values drawn uniformly from [lo, hi].
func RandomInts(rng *rand.Rand, n int, lo int, hi int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = lo + rng.IntN(hi-lo+1)
	}
	return out
}

// RandomFloats returns n values drawn uniformly from [lo, hi).
func RandomFloats(rng *rand.Rand, n int, lo float64, hi float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}

// SortedCopy returns an ascending copy of values.
func SortedCopy[T int | float64](values []T) []T {
	out := slices.Clone(values)
	slices.Sort(out)
	return out
}
