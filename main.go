package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args); err != nil {
		Logger.Fatalf("benchmark failed: %v", err)
	}
}

func run(args []string) error {
	config := LoadConfig(args)
	Logger.Infof("start benchmark: trials=%v iterations=%v dsn=%v", config.Trials, config.Iterations, config.Dsn)

	info := HostStat()
	Logger.Infof("host stat: %+v", info)

	engine, err := OpenEngine(config.Dsn)
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	benchmark := Benchmark{Trials: config.Trials, Iterations: config.Iterations}
	results, err := benchmark.Run(engine, func(result TrialResult) {
		fmt.Println(result)
	})
	if err != nil {
		return err
	}

	if config.Results == "" {
		return nil
	}
	storage := Storage{Path: config.Results}
	db, err := storage.Connect()
	if err != nil {
		return fmt.Errorf("failed to open results database %v: %w", config.Results, err)
	}
	defer db.Close()
	err = storage.InitResultsDb(db, map[string]any{
		"trials":     config.Trials,
		"iterations": config.Iterations,
		"arch":       info.Arch,
		"hostname":   info.Hostname,
		"platform":   info.Platform,
		"ram":        info.RAM,
		"cpu":        info.CPUCount,
		"freq":       info.CPUFreq,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize results database %v: %w", config.Results, err)
	}
	err = storage.UpdateResultsDb(db, config.Iterations, results)
	if err != nil {
		return fmt.Errorf("failed to save results to %v: %w", config.Results, err)
	}
	Logger.Infof("saved %v trial results to %v", len(results), config.Results)
	return nil
}
