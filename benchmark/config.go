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
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/vinroger/quick-median/generator"
)

const (
	DefaultWarmupIterations    = 10
	DefaultBenchmarkIterations = 50
	DefaultCooldownMS          = 500
	DefaultResultsPath         = "./benchmark/benchmark_results.json"
	DefaultSeed                = uint64(9001)
)

// DefaultSizes are the array sizes benchmarked when none are configured.
var DefaultSizes = []int{10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000}

var (
	ErrInvalidIterations = errors.New("iterations must not be negative")
	ErrInvalidCooldown   = errors.New("cooldown must not be negative")
	ErrNoSizes           = errors.New("at least one array size is required")
	ErrInvalidArraySize  = errors.New("array sizes must be positive")
	ErrNoResultsPath     = errors.New("results path must not be empty")
)

// Config controls a benchmark run. Zero-length lists select every known
// distribution or algorithm.
type Config struct {
	Sizes               []int    `toml:"sizes,omitempty"`
	Distributions       []string `toml:"distributions,omitempty"`
	Algorithms          []string `toml:"algorithms,omitempty"`
	WarmupIterations    int      `toml:"warmup_iterations"`
	BenchmarkIterations int      `toml:"benchmark_iterations"`
	CooldownMS          int      `toml:"cooldown_ms"`
	ResultsPath         string   `toml:"results_path,omitempty"`
	MetricsAddr         string   `toml:"metrics_address,omitempty"`
	Seed                uint64   `toml:"seed"`
	Verbose             bool     `toml:"verbose,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Sizes:               append([]int(nil), DefaultSizes...),
		WarmupIterations:    DefaultWarmupIterations,
		BenchmarkIterations: DefaultBenchmarkIterations,
		CooldownMS:          DefaultCooldownMS,
		ResultsPath:         DefaultResultsPath,
		Seed:                DefaultSeed,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Unknown keys are
// rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load configuration: %w", err)
	}
	err = toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields().Decode(&cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration and resolves the distribution and
// algorithm names.
func (c Config) Validate() ([]generator.Distribution, []Algorithm, error) {
	if len(c.Sizes) == 0 {
		return nil, nil, ErrNoSizes
	}
	for _, n := range c.Sizes {
		if n < 1 {
			return nil, nil, fmt.Errorf("%w: %d", ErrInvalidArraySize, n)
		}
	}
	if c.WarmupIterations < 0 || c.BenchmarkIterations < 0 {
		return nil, nil, ErrInvalidIterations
	}
	if c.CooldownMS < 0 {
		return nil, nil, ErrInvalidCooldown
	}
	if strings.TrimSpace(c.ResultsPath) == "" {
		return nil, nil, ErrNoResultsPath
	}

	dists := generator.Distributions
	if len(c.Distributions) > 0 {
		dists = make([]generator.Distribution, 0, len(c.Distributions))
		for _, name := range c.Distributions {
			d, err := generator.ParseDistribution(name)
			if err != nil {
				return nil, nil, err
			}
			dists = append(dists, d)
		}
	}

	algos := Algorithms()
	if len(c.Algorithms) > 0 {
		algos = make([]Algorithm, 0, len(c.Algorithms))
		for _, name := range c.Algorithms {
			a, err := LookupAlgorithm(name)
			if err != nil {
				return nil, nil, err
			}
			algos = append(algos, a)
		}
	}
	return dists, algos, nil
}
