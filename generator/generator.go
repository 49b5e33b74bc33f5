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

// Package generator builds the synthetic inputs used to benchmark median
// implementations, including sequences that drive naive quickselect towards
// its quadratic worst case.
package generator

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"

	"github.com/vinroger/quick-median/internal"
)

type Distribution string

const (
	Random    Distribution = "Random"
	Onezero   Distribution = "Onezero"
	Sorted    Distribution = "Sorted"
	Rotated   Distribution = "Rotated"
	Organpipe Distribution = "Organpipe"
	M3killer  Distribution = "M3killer"
	Twofaced  Distribution = "Twofaced"
)

// Distributions lists every supported distribution in benchmark order.
var Distributions = []Distribution{Random, Onezero, Sorted, Rotated, Organpipe, M3killer, Twofaced}

var (
	ErrSizeNotMultipleOfFour = errors.New("n must be divisible by 4 for m3killer sequence")
	ErrInvalidSize           = errors.New("n must be positive")
	ErrUnknownDistribution   = errors.New("unknown distribution")
)

type generateFn func(rng *rand.Rand, n int) ([]int, error)

var generators = map[Distribution]generateFn{
	Random:    random,
	Onezero:   onezero,
	Sorted:    func(_ *rand.Rand, n int) ([]int, error) { return sorted(n), nil },
	Rotated:   func(_ *rand.Rand, n int) ([]int, error) { return rotated(n), nil },
	Organpipe: func(_ *rand.Rand, n int) ([]int, error) { return organpipe(n), nil },
	M3killer:  func(_ *rand.Rand, n int) ([]int, error) { return m3killer(n) },
	Twofaced:  twofaced,
}

// ParseDistribution returns the distribution with the given name.
func ParseDistribution(name string) (Distribution, error) {
	d := Distribution(name)
	if _, ok := generators[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDistribution, name)
	}
	return d, nil
}

// Seed derives a per-case seed from a base seed so every (distribution, size)
// pair gets an independent but reproducible stream.
func Seed(base uint64, d Distribution, n int) uint64 {
	key := make([]byte, 0, len(d)+21)
	key = append(key, d...)
	key = append(key, '/')
	key = strconv.AppendInt(key, int64(n), 10)
	return murmur3.SeedSum64(base, key)
}

// NewRand returns the random source Generate should use for a case.
func NewRand(base uint64, d Distribution, n int) *rand.Rand {
	seed := Seed(base, d, n)
	return rand.New(rand.NewPCG(seed, ^seed))
}

// Fingerprint hashes the contents of a generated array so results from
// different runs can be checked to have measured identical inputs.
func Fingerprint(values []int) uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// Generate builds an array of n values drawn from d.
func Generate(d Distribution, n int, rng *rand.Rand) ([]int, error) {
	gen, ok := generators[d]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDistribution, d)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	return gen(rng, n)
}

// random draws n uniform values in [0, n).
func random(rng *rand.Rand, n int) ([]int, error) {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.IntN(n)
	}
	return out, nil
}

// onezero is ceil(n/2) ones and the rest zeros, shuffled.
func onezero(rng *rand.Rand, n int) ([]int, error) {
	out := make([]int, n)
	for i := 0; i < (n+1)/2; i++ {
		out[i] = 1
	}
	shuffle(rng, out)
	return out, nil
}

func sorted(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// rotated is 2..n followed by 1.
func rotated(n int) []int {
	s := sorted(n)
	return append(s[1:], s[0])
}

// organpipe ascends 1..n/2 and then descends from n/2.
func organpipe(n int) []int {
	half := n / 2
	out := make([]int, 0, n)
	for i := 0; i < half; i++ {
		out = append(out, i+1)
	}
	for i := 0; i < n-half; i++ {
		out = append(out, half-i)
	}
	return out
}

// m3killer is Musser's sequence that makes median-of-three quickselect
// quadratic: 1..n/2 followed by interleaved odd values from both halves.
func m3killer(n int) ([]int, error) {
	if n%4 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrSizeNotMultipleOfFour, n)
	}
	k := n / 2
	out := make([]int, n)
	for i := 0; i < k; i++ {
		out[i] = i + 1
	}
	idx := k
	for i := 0; i < k/2; i++ {
		out[idx] = i*2 + 1
		out[idx+1] = k + i*2 + 1
		idx += 2
	}
	return out, nil
}

// twofaced keeps the m3killer prefix of each half and shuffles the rest.
func twofaced(rng *rand.Rand, n int) ([]int, error) {
	out, err := m3killer(n)
	if err != nil {
		return nil, err
	}
	log2n := internal.FloorLog2(n)
	shuffleRange(rng, out, 4*log2n, n/2-1)
	shuffleRange(rng, out, n/2+4*log2n-1, n-2)
	return out, nil
}

func shuffle(rng *rand.Rand, s []int) {
	rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// shuffleRange shuffles s[start..end] inclusive; empty ranges are a no-op.
func shuffleRange(rng *rand.Rand, s []int, start int, end int) {
	start = max(start, 0)
	end = min(end, len(s)-1)
	if start >= end {
		return
	}
	shuffle(rng, s[start:end+1])
}
