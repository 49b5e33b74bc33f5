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

package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vinroger/quick-median/benchmark"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	assert.NoError(t, err)
	assert.Equal(t, benchmark.DefaultConfig(), cfg)
}

func TestLoadConfigFlags(t *testing.T) {
	cfg, err := loadConfig(flag.NewFlagSet("test", flag.ContinueOnError), []string{
		"-sizes", "10, 1e3,1e6",
		"-distributions", "Random,Sorted",
		"-algorithms", "quick-median",
		"-iterations", "5",
		"-cooldown-ms", "0",
		"-results", "out.json.zst",
		"-verbose",
	})
	assert.NoError(t, err)
	assert.Equal(t, []int{10, 1000, 1000000}, cfg.Sizes)
	assert.Equal(t, []string{"Random", "Sorted"}, cfg.Distributions)
	assert.Equal(t, []string{"quick-median"}, cfg.Algorithms)
	assert.Equal(t, 5, cfg.BenchmarkIterations)
	assert.Equal(t, benchmark.DefaultWarmupIterations, cfg.WarmupIterations)
	assert.Equal(t, 0, cfg.CooldownMS)
	assert.Equal(t, "out.json.zst", cfg.ResultsPath)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.toml")
	assert.NoError(t, os.WriteFile(path, []byte("sizes = [100]\nwarmup_iterations = 2\nseed = 5\n"), 0o644))

	cfg, err := loadConfig(flag.NewFlagSet("test", flag.ContinueOnError), []string{
		"-config", path,
		"-seed", "6",
	})
	assert.NoError(t, err)
	assert.Equal(t, []int{100}, cfg.Sizes)
	assert.Equal(t, 2, cfg.WarmupIterations)
	assert.Equal(t, uint64(6), cfg.Seed)
}

func TestLoadConfigBadSize(t *testing.T) {
	for _, sizes := range []string{"ten", "10.7", "100,1e-1", "1e400", "NaN"} {
		_, err := loadConfig(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-sizes", sizes})
		assert.Error(t, err, sizes)
	}
}

func TestParseSizes(t *testing.T) {
	sizes, err := parseSizes("10, 1e3,2.0e1,")
	assert.NoError(t, err)
	assert.Equal(t, []int{10, 1000, 20}, sizes)

	_, err = parseSizes("10.7")
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	assert.Nil(t, splitList(""))
}
