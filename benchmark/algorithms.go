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

package benchmark

import (
	"errors"
	"fmt"

	"github.com/vinroger/quick-median/internal"
	"github.com/vinroger/quick-median/selection"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// MedianFunc computes the median of a non-empty array, reordering it freely.
type MedianFunc func(values []int) float64

// Algorithm is a named median implementation under benchmark.
type Algorithm struct {
	Name string
	Func MedianFunc
}

func floydRivestMedian(values []int) float64 {
	m, err := selection.Median(values)
	if err != nil {
		// the runner never passes an empty array
		panic(err)
	}
	return m
}

var algorithms = []Algorithm{
	{Name: "quick-median", Func: floydRivestMedian},
	{Name: "quickselect-median", Func: internal.QuickSelectMedian[int]},
	{Name: "sort-median", Func: internal.SortMedian[int]},
}

// Algorithms returns every registered algorithm in benchmark order.
func Algorithms() []Algorithm {
	return append([]Algorithm(nil), algorithms...)
}

func LookupAlgorithm(name string) (Algorithm, error) {
	for _, a := range algorithms {
		if a.Name == name {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
