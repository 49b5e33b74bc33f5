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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Result is the outcome of benchmarking one algorithm on one generated array.
// Times are in milliseconds unless the field name says otherwise.
type Result struct {
	Size        int     `json:"size"`
	SpecialCase string  `json:"specialCase"`
	InputHash   uint64  `json:"inputHash"`
	Time        float64 `json:"time"`
	MsPerOp     float64 `json:"msPerOp"`
	OpsPerSec   float64 `json:"opsPerSec"`
	TotalTimeMs float64 `json:"totalTimeMs"`
	CPUUserUs   int64   `json:"cpuUserUs"`
	CPUSystemUs int64   `json:"cpuSystemUs"`
	P50Us       float64 `json:"p50Us"`
	P99Us       float64 `json:"p99Us"`
	MaxUs       float64 `json:"maxUs"`
	Median      float64 `json:"median"`
}

// Results groups results by algorithm name.
type Results map[string][]Result

func (r Results) add(algorithm string, res Result) {
	r[algorithm] = append(r[algorithm], res)
}

// WriteResults stores results as indented JSON at path, creating parent
// directories. A ".zst" suffix selects zstd compression.
func WriteResults(path string, results Results) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create results directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	var w io.Writer = f
	if strings.HasSuffix(path, ".zst") {
		zw, zerr := zstd.NewWriter(f)
		if zerr != nil {
			return zerr
		}
		defer func() {
			if cerr := zw.Close(); err == nil && cerr != nil {
				err = cerr
			}
		}()
		w = zw
	}
	return encodeResults(w, results)
}

// ReadResults loads a file written by WriteResults.
func ReadResults(path string) (Results, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		r = dec
	}
	results := Results{}
	if err := json.NewDecoder(r).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}
	return results, nil
}

func encodeResults(w io.Writer, results Results) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}
