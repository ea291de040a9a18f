package main

import (
	"fmt"
	"math"
	"time"
)

type Benchmark struct {
	Trials     int
	Iterations int
}

type TrialResult struct {
	Elapsed time.Duration
	Rate    float64
}

// String renders the result in the reported format: elapsed milliseconds and
// queries per second, both rounded to the nearest integer.
func (r TrialResult) String() string {
	millis := int64(math.Round(r.Elapsed.Seconds() * 1000))
	return fmt.Sprintf("time %v ms rate %v", millis, int64(math.Round(r.Rate)))
}

// RunTrial executes the fixed query Iterations times and measures the total
// elapsed wall-clock time of the loop.
func (b *Benchmark) RunTrial(engine *Engine) (TrialResult, error) {
	start := time.Now()
	for i := 0; i < b.Iterations; i++ {
		if _, err := engine.UserVersion(); err != nil {
			return TrialResult{}, fmt.Errorf("query #%v failed: %w", i+1, err)
		}
	}
	elapsed := time.Since(start)
	result := TrialResult{Elapsed: elapsed}
	if elapsed > 0 {
		result.Rate = float64(b.Iterations) / elapsed.Seconds()
	}
	return result, nil
}

// Run executes all trials sequentially, invoking report after each one. The
// first failed trial aborts the whole run.
func (b *Benchmark) Run(engine *Engine, report func(TrialResult)) ([]TrialResult, error) {
	results := make([]TrialResult, 0, b.Trials)
	for trial := 0; trial < b.Trials; trial++ {
		result, err := b.RunTrial(engine)
		if err != nil {
			return nil, fmt.Errorf("trial #%v/%v failed: %w", trial+1, b.Trials, err)
		}
		results = append(results, result)
		if report != nil {
			report(result)
		}
	}
	return results, nil
}
