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

// Package benchmark compares median implementations across array sizes and
// synthetic distributions and persists the timings as JSON.
package benchmark

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"go.uber.org/zap"

	"github.com/vinroger/quick-median/generator"
)

const (
	// per-call latencies are recorded in nanoseconds, up to ten minutes
	histogramMinValue = 1
	histogramMaxValue = int64(10 * time.Minute)
	histogramSigFigs  = 3
)

// Runner executes the cases of a Config one after another.
type Runner struct {
	cfg     Config
	dists   []generator.Distribution
	algos   []Algorithm
	log     *zap.Logger
	metrics *Metrics
}

// NewRunner validates cfg. log and metrics may be nil.
func NewRunner(cfg Config, log *zap.Logger, metrics *Metrics) (*Runner, error) {
	dists, algos, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		cfg:     cfg,
		dists:   dists,
		algos:   algos,
		log:     log,
		metrics: metrics,
	}, nil
}

// Run benchmarks every (size, distribution, algorithm) triple. Cases whose
// array cannot be generated are logged and skipped. On cancellation Run
// returns the results gathered so far together with the context error.
func (r *Runner) Run(ctx context.Context) (Results, error) {
	results := Results{}
	for _, size := range r.cfg.Sizes {
		r.log.Info("benchmarking array size", zap.Int("size", size))
		for _, dist := range r.dists {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			arr, err := generator.Generate(dist, size, generator.NewRand(r.cfg.Seed, dist, size))
			if err != nil {
				r.log.Info("skipping case",
					zap.String("distribution", string(dist)), zap.Int("size", size), zap.Error(err))
				r.metrics.caseSkipped()
				continue
			}
			if err := r.runCase(ctx, results, dist, arr); err != nil {
				return results, err
			}
		}
	}
	return results, nil
}

func (r *Runner) runCase(ctx context.Context, results Results, dist generator.Distribution, arr []int) error {
	inputHash := generator.Fingerprint(arr)
	log := r.log.With(zap.String("distribution", string(dist)), zap.Int("size", len(arr)),
		zap.String("inputHash", fmt.Sprintf("%016x", inputHash)))
	work := make([]int, len(arr))

	summary := make([]zap.Field, 0, len(r.algos))
	for _, algo := range r.algos {
		log.Debug("warming up", zap.String("algorithm", algo.Name))
		for i := 0; i < r.cfg.WarmupIterations; i++ {
			copy(work, arr)
			algo.Func(work)
		}

		log.Debug("running benchmark", zap.String("algorithm", algo.Name))
		res, err := r.measure(algo, dist, arr, work)
		if err != nil {
			return fmt.Errorf("%s on %s/%d: %w", algo.Name, dist, len(arr), err)
		}
		res.InputHash = inputHash
		results.add(algo.Name, res)
		summary = append(summary, zap.Float64(algo.Name, res.Time))

		log.Info("benchmark finished",
			zap.String("algorithm", algo.Name),
			zap.Float64("singleRunMs", res.Time),
			zap.Float64("msPerOp", res.MsPerOp),
			zap.Float64("totalTimeMs", res.TotalTimeMs),
			zap.Float64("opsPerSec", res.OpsPerSec),
			zap.Int64("cpuUs", res.CPUUserUs+res.CPUSystemUs),
			zap.Float64("p99Us", res.P99Us))

		if err := r.cooldown(ctx); err != nil {
			return err
		}
	}
	log.Info("case summary (single run ms)", summary...)
	return nil
}

// measure times BenchmarkIterations calls and one isolated call. Each call
// gets a fresh copy of arr; the copy is not part of the timed region.
func (r *Runner) measure(algo Algorithm, dist generator.Distribution, arr []int, work []int) (Result, error) {
	hg := hdrhistogram.New(histogramMinValue, histogramMaxValue, histogramSigFigs)

	userStart, sysStart, err := cpuTimes()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read cpu usage: %w", err)
	}
	var total time.Duration
	for i := 0; i < r.cfg.BenchmarkIterations; i++ {
		copy(work, arr)
		t0 := time.Now()
		algo.Func(work)
		d := time.Since(t0)

		total += d
		r.metrics.observeCall(algo.Name, string(dist), len(arr), d)
		if err := hg.RecordValue(max(int64(d), histogramMinValue)); err != nil {
			return Result{}, fmt.Errorf("failed to record histogram value: %w", err)
		}
	}
	userEnd, sysEnd, err := cpuTimes()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read cpu usage: %w", err)
	}

	copy(work, arr)
	t0 := time.Now()
	median := algo.Func(work)
	single := time.Since(t0)

	res := Result{
		Size:        len(arr),
		SpecialCase: string(dist),
		Time:        toMillis(single),
		TotalTimeMs: toMillis(total),
		CPUUserUs:   (userEnd - userStart).Microseconds(),
		CPUSystemUs: (sysEnd - sysStart).Microseconds(),
		Median:      median,
	}
	if n := r.cfg.BenchmarkIterations; n > 0 {
		res.MsPerOp = res.TotalTimeMs / float64(n)
		if total > 0 {
			res.OpsPerSec = float64(n) / total.Seconds()
		}
		res.P50Us = toMicros(hg.ValueAtQuantile(50))
		res.P99Us = toMicros(hg.ValueAtQuantile(99))
		res.MaxUs = toMicros(hg.Max())
	}
	return res, nil
}

func (r *Runner) cooldown(ctx context.Context) error {
	if r.cfg.CooldownMS == 0 {
		return ctx.Err()
	}
	t := time.NewTimer(time.Duration(r.cfg.CooldownMS) * time.Millisecond)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// RunAndSave runs the benchmark and writes the results to the configured
// path, also when the run was interrupted.
func (r *Runner) RunAndSave(ctx context.Context) (Results, error) {
	results, runErr := r.Run(ctx)
	if len(results) == 0 && runErr != nil {
		return results, runErr
	}
	if err := WriteResults(r.cfg.ResultsPath, results); err != nil {
		return results, errors.Join(runErr, err)
	}
	r.log.Info("results saved", zap.String("path", r.cfg.ResultsPath))
	return results, runErr
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func toMicros(ns int64) float64 {
	return float64(ns) / float64(time.Microsecond)
}
