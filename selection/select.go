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

// Package selection finds order statistics of numeric slices in linear
// expected time using the Floyd-Rivest SELECT algorithm.
//
// All functions rearrange their input in place. Only the partial order around
// the selected index is guaranteed afterwards; the slice is not sorted.
package selection

import (
	"errors"
	"fmt"
	"math"

	"github.com/vinroger/quick-median/common"
)

const (
	// windows larger than this are narrowed by sampling before partitioning
	samplingThreshold = 600
	sampleExponent    = 2.0 / 3.0
	spreadFactor      = 0.5
)

var (
	ErrEmptyInput      = errors.New("operation is undefined for an empty input")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidRange    = errors.New("lower bound must not exceed upper bound")
	ErrNaN             = errors.New("operation is undefined for NaN")
	ErrInvalidRank     = errors.New("normalized rank must be between 0 and 1 inclusive")
)

// Select rearranges x[lo..hi] (inclusive bounds) so that x[k] holds the value
// it would hold if x[lo..hi] were sorted ascending. Afterwards every element in
// x[lo:k] is <= x[k] and every element in x[k+1:hi+1] is >= x[k]. Elements
// outside [lo, hi] are not touched.
//
// The bounds are validated before x is modified. NaN values are not rejected
// here; use Median or Quantile when the input may contain them.
func Select[T common.Number](x []T, lo int, hi int, k int) error {
	if err := checkRange(len(x), lo, hi, k); err != nil {
		return err
	}
	floydRivest(x, lo, hi, k)
	return nil
}

// SelectKth selects over the whole slice and returns the k-th smallest value
// (0-based).
func SelectKth[T common.Number](x []T, k int) (T, error) {
	if err := Select(x, 0, len(x)-1, k); err != nil {
		return *new(T), err
	}
	return x[k], nil
}

func checkRange(n int, lo int, hi int, k int) error {
	if n == 0 {
		return fmt.Errorf("%w: empty slice", ErrIndexOutOfRange)
	}
	if lo > hi {
		return fmt.Errorf("%w: lo=%d hi=%d", ErrInvalidRange, lo, hi)
	}
	if lo < 0 || hi >= n {
		return fmt.Errorf("%w: range [%d, %d] outside [0, %d]", ErrIndexOutOfRange, lo, hi, n-1)
	}
	if k < lo || k > hi {
		return fmt.Errorf("%w: k=%d outside [%d, %d]", ErrIndexOutOfRange, k, lo, hi)
	}
	return nil
}

// floydRivest is the unchecked selection loop. Callers guarantee
// 0 <= left <= k <= right < len(x).
func floydRivest[T common.Number](x []T, left int, right int, k int) {
	for right > left {
		if right-left > samplingThreshold {
			lo, hi := samplingWindow(left, right, k)
			floydRivest(x, lo, hi, k)
		}

		t := x[k]
		i := left
		j := right

		swap(x, left, k)
		if x[right] > t {
			swap(x, right, left)
		}

		for i < j {
			swap(x, i, j)
			i++
			j--
			for x[i] < t {
				i++
			}
			for x[j] > t {
				j--
			}
		}

		if x[left] == t {
			swap(x, left, j)
		} else {
			j++
			swap(x, j, right)
		}

		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = j - 1
		}
	}
}

// samplingWindow estimates a sub-range of [left, right] that contains the
// k-th order statistic with high probability. The result is always clamped to
// [left, right] so a poor estimate only costs time.
func samplingWindow(left int, right int, k int) (int, int) {
	n := float64(right - left + 1)
	i := float64(k - left + 1)
	z := math.Log(n)
	s := spreadFactor * math.Exp(sampleExponent*z)
	sd := spreadFactor * math.Sqrt(z*s*(n-s)/n)
	switch {
	case i < n/2:
		sd = -sd
	case i == n/2:
		sd = 0
	}
	lo := max(left, int(math.Floor(float64(k)-i*s/n+sd)))
	hi := min(right, int(math.Floor(float64(k)+(n-i)*s/n+sd)))
	return lo, hi
}

func swap[T common.Number](x []T, i int, j int) {
	x[i], x[j] = x[j], x[i]
}
