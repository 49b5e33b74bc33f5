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

package internal

import (
	"slices"

	"github.com/vinroger/quick-median/common"
)

// QuickSelectMedian computes the median of a non-empty slice with two
// QuickSelect passes. It reorders values.
func QuickSelectMedian[T common.Number](values []T) float64 {
	n := len(values)
	k := n / 2
	QuickSelect(values, 0, n-1, k)
	if n%2 == 1 {
		return float64(values[k])
	}
	// values[:k] are all <= values[k], so the lower middle is their maximum
	QuickSelect(values, 0, k-1, k-1)
	return (float64(values[k-1]) + float64(values[k])) / 2
}

// SortMedian computes the median of a non-empty slice by sorting it. It is the
// reference the selection based medians are checked against.
func SortMedian[T common.Number](values []T) float64 {
	slices.Sort(values)
	n := len(values)
	mid := n / 2
	if n%2 == 0 {
		return (float64(values[mid-1]) + float64(values[mid])) / 2
	}
	return float64(values[mid])
}
