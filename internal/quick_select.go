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
	"cmp"
	"math/rand/v2"
)

// QuickSelect places the k-th smallest element of arr[lo..hi] at index k using
// Hoare partitioning around a random pivot, and returns it. The slice is only
// partially ordered afterwards.
func QuickSelect[T cmp.Ordered](arr []T, lo int, hi int, k int) T {
	for hi > lo {
		p := lo + rand.IntN(hi-lo+1)
		arr[lo], arr[p] = arr[p], arr[lo]
		j := partition(arr, lo, hi)
		if j == k {
			return arr[k]
		}
		if j > k {
			hi = j - 1
		} else {
			lo = j + 1
		}
	}
	return arr[k]
}

// partition uses arr[lo] as the pivot and returns its final index j with
// arr[lo..j-1] <= arr[j] <= arr[j+1..hi].
func partition[T cmp.Ordered](arr []T, lo int, hi int) int {
	i := lo
	j := hi + 1
	v := arr[lo]
	for {
		for i++; arr[i] < v; i++ {
			if i == hi {
				break
			}
		}
		for j--; v < arr[j]; j-- {
			if j == lo {
				break
			}
		}
		if i >= j {
			break
		}
		arr[i], arr[j] = arr[j], arr[i]
	}
	arr[lo], arr[j] = arr[j], arr[lo]
	return j
}
