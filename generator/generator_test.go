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

package generator

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateShapes(t *testing.T) {
	testCases := []struct {
		name     string
		dist     Distribution
		n        int
		expected []int
	}{
		{name: "sorted", dist: Sorted, n: 5, expected: []int{1, 2, 3, 4, 5}},
		{name: "rotated", dist: Rotated, n: 5, expected: []int{2, 3, 4, 5, 1}},
		{name: "rotated single", dist: Rotated, n: 1, expected: []int{1}},
		{name: "organpipe even", dist: Organpipe, n: 6, expected: []int{1, 2, 3, 3, 2, 1}},
		{name: "organpipe odd", dist: Organpipe, n: 5, expected: []int{1, 2, 2, 1, 0}},
		{name: "m3killer", dist: M3killer, n: 8, expected: []int{1, 2, 3, 4, 1, 5, 3, 7}},
		{name: "m3killer 12", dist: M3killer, n: 12, expected: []int{1, 2, 3, 4, 5, 6, 1, 7, 3, 9, 5, 11}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Generate(tc.dist, tc.n, NewRand(1, tc.dist, tc.n))
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestGenerateRandom(t *testing.T) {
	n := 1000
	got, err := Generate(Random, n, NewRand(7, Random, n))
	assert.NoError(t, err)
	assert.Len(t, got, n)
	for _, v := range got {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, n)
	}
}

func TestGenerateOnezero(t *testing.T) {
	for _, n := range []int{1, 10, 11, 1000} {
		got, err := Generate(Onezero, n, NewRand(7, Onezero, n))
		assert.NoError(t, err)
		ones := 0
		for _, v := range got {
			assert.Contains(t, []int{0, 1}, v)
			ones += v
		}
		assert.Equal(t, (n+1)/2, ones, "n=%d", n)
	}
}

func TestGenerateTwofaced(t *testing.T) {
	n := 1000
	got, err := Generate(Twofaced, n, NewRand(3, Twofaced, n))
	assert.NoError(t, err)

	m3, err := m3killer(n)
	assert.NoError(t, err)

	// shuffling only permutes values
	assert.ElementsMatch(t, m3, got)

	// 4*floor(log2(1000)) = 36 leading values of each half stay in place
	assert.Equal(t, m3[:36], got[:36])
	assert.Equal(t, m3[n/2:n/2+35], got[n/2:n/2+35])
	assert.Equal(t, m3[n-1], got[n-1])
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(M3killer, 10, NewRand(1, M3killer, 10))
	assert.ErrorIs(t, err, ErrSizeNotMultipleOfFour)

	_, err = Generate(Twofaced, 10, NewRand(1, Twofaced, 10))
	assert.ErrorIs(t, err, ErrSizeNotMultipleOfFour)

	_, err = Generate(Sorted, 0, NewRand(1, Sorted, 0))
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Generate("Gaussian", 10, NewRand(1, "Gaussian", 10))
	assert.ErrorIs(t, err, ErrUnknownDistribution)
}

func TestParseDistribution(t *testing.T) {
	for _, d := range Distributions {
		got, err := ParseDistribution(string(d))
		assert.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := ParseDistribution("random")
	assert.ErrorIs(t, err, ErrUnknownDistribution)
}

func TestSeedIsReproducible(t *testing.T) {
	assert.Equal(t, Seed(9001, Random, 100), Seed(9001, Random, 100))
	assert.NotEqual(t, Seed(9001, Random, 100), Seed(9001, Random, 1000))
	assert.NotEqual(t, Seed(9001, Random, 100), Seed(9001, Onezero, 100))
	assert.NotEqual(t, Seed(9001, Random, 100), Seed(9002, Random, 100))

	a, err := Generate(Random, 500, NewRand(9001, Random, 500))
	assert.NoError(t, err)
	b, err := Generate(Random, 500, NewRand(9001, Random, 500))
	assert.NoError(t, err)
	assert.True(t, slices.Equal(a, b))
}

func TestFingerprint(t *testing.T) {
	a, err := Generate(Random, 1000, NewRand(9001, Random, 1000))
	assert.NoError(t, err)
	b, err := Generate(Random, 1000, NewRand(9001, Random, 1000))
	assert.NoError(t, err)
	assert.Equal(t, Fingerprint(a), Fingerprint(b))

	c, err := Generate(Random, 1000, NewRand(9002, Random, 1000))
	assert.NoError(t, err)
	assert.NotEqual(t, Fingerprint(a), Fingerprint(c))

	// order matters, not only the multiset of values
	assert.NotEqual(t, Fingerprint([]int{1, 2, 3}), Fingerprint([]int{3, 2, 1}))
	assert.NotEqual(t, Fingerprint([]int{0}), Fingerprint([]int{0, 0}))
	assert.Equal(t, Fingerprint(nil), Fingerprint([]int{}))
}
