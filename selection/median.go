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

package selection

import (
	"math"
	"slices"

	"github.com/vinroger/quick-median/common"
)

// Median returns the median of values. For an even number of values it is the
// mean of the two middle order statistics, so the result may be fractional
// even for integer input.
//
// Median reorders values in place. Use MedianOf to keep the caller's order.
func Median[T common.Number](values []T) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, ErrEmptyInput
	}
	if common.ContainsNaN(values) {
		return 0, ErrNaN
	}

	k := n / 2
	floydRivest(values, 0, n-1, k)
	if n%2 == 1 {
		return float64(values[k]), nil
	}
	// the first pass left values[:k] <= values[k]; selecting k-1 over the full
	// range only exchanges elements equal to values[k] across position k
	floydRivest(values, 0, n-1, k-1)
	return (float64(values[k-1]) + float64(values[k])) / 2, nil
}

// MedianOf is like Median but works on a copy, leaving values unchanged.
func MedianOf[T common.Number](values []T) (float64, error) {
	return Median(slices.Clone(values))
}

// Quantile returns the lower order statistic at the given normalized rank,
// that is the element at index floor(rank*(n-1)) of the sorted input.
// Quantile reorders values in place.
func Quantile[T common.Number](values []T, rank float64) (T, error) {
	if math.IsNaN(rank) || rank < 0 || rank > 1 {
		return *new(T), ErrInvalidRank
	}
	n := len(values)
	if n == 0 {
		return *new(T), ErrEmptyInput
	}
	if common.ContainsNaN(values) {
		return *new(T), ErrNaN
	}
	k := int(rank * float64(n-1))
	floydRivest(values, 0, n-1, k)
	return values[k], nil
}
