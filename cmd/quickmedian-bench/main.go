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

// Command quickmedian-bench compares median implementations across array
// sizes and synthetic distributions and writes the timings as JSON.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vinroger/quick-median/benchmark"
)

func newLogger(verbose bool) *zap.Logger {
	c := zap.NewDevelopmentConfig()
	c.DisableStacktrace = true
	c.EncoderConfig.EncodeCaller = func(
		caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		p := caller.TrimmedPath()
		if len(p) > 30 {
			p = "..." + p[len(p)-27:]
		}
		enc.AppendString(fmt.Sprintf("%30s", p))
	}
	if !verbose {
		c.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	l, err := c.Build()
	if err != nil {
		panic(err)
	}
	return l
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", f, err)
		}
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid size %q: must be a whole number", f)
		}
		sizes = append(sizes, int(v))
	}
	return sizes, nil
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// loadConfig reads the optional config file and applies the flags that were
// set explicitly on the command line.
func loadConfig(fs *flag.FlagSet, args []string) (benchmark.Config, error) {
	var (
		configFile    string
		sizes         string
		distributions string
		algorithms    string
		warmup        int
		iterations    int
		cooldownMS    int
		resultsPath   string
		metricsAddr   string
		seed          uint64
		verbose       bool
	)
	fs.StringVar(&configFile, "config", "", "TOML configuration file")
	fs.StringVar(&sizes, "sizes", "", "comma separated array sizes, e.g. 10,1e3,1e6")
	fs.StringVar(&distributions, "distributions", "", "comma separated distributions")
	fs.StringVar(&algorithms, "algorithms", "", "comma separated algorithms")
	fs.IntVar(&warmup, "warmup", benchmark.DefaultWarmupIterations, "warm-up calls per case")
	fs.IntVar(&iterations, "iterations", benchmark.DefaultBenchmarkIterations, "timed calls per case")
	fs.IntVar(&cooldownMS, "cooldown-ms", benchmark.DefaultCooldownMS, "pause after each algorithm run")
	fs.StringVar(&resultsPath, "results", benchmark.DefaultResultsPath, "results file (.json or .json.zst)")
	fs.StringVar(&metricsAddr, "metrics", "", "serve Prometheus metrics on this address")
	fs.Uint64Var(&seed, "seed", benchmark.DefaultSeed, "base seed of the generators")
	fs.BoolVar(&verbose, "verbose", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return benchmark.Config{}, err
	}

	cfg := benchmark.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = benchmark.LoadConfig(configFile); err != nil {
			return cfg, err
		}
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sizes":
			var v []int
			if v, err = parseSizes(sizes); err == nil {
				cfg.Sizes = v
			}
		case "distributions":
			cfg.Distributions = splitList(distributions)
		case "algorithms":
			cfg.Algorithms = splitList(algorithms)
		case "warmup":
			cfg.WarmupIterations = warmup
		case "iterations":
			cfg.BenchmarkIterations = iterations
		case "cooldown-ms":
			cfg.CooldownMS = cooldownMS
		case "results":
			cfg.ResultsPath = resultsPath
		case "metrics":
			cfg.MetricsAddr = metricsAddr
		case "seed":
			cfg.Seed = seed
		case "verbose":
			cfg.Verbose = verbose
		}
	})
	return cfg, err
}

func runMonitor(log *zap.Logger, addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	err := http.ListenAndServe(addr, mux)
	log.Error("failed to serve metrics", zap.Error(err))
}

func main() {
	fs := flag.NewFlagSet("quickmedian-bench", flag.ExitOnError)
	cfg, err := loadConfig(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := newLogger(cfg.Verbose)
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	metrics, err := benchmark.NewMetrics(reg)
	if err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}
	if cfg.MetricsAddr != "" {
		go runMonitor(log, cfg.MetricsAddr, reg)
	}

	runner, err := benchmark.NewRunner(cfg, log, metrics)
	if err != nil {
		log.Fatal("unexpected configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = runner.RunAndSave(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("benchmark interrupted")
		return
	}
	if err != nil {
		log.Fatal("benchmark failed", zap.Error(err))
	}
}
