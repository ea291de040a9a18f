package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Trials     int
	Iterations int
	Dsn        string
	Results    string
}

func StringEnv(key string, def string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	return value
}

func IntEnv(key string, def int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

// LoadConfig reads configuration from an optional .env file, the environment
// and positional arguments (trial count, then iteration count). Arguments
// take precedence over the environment.
func LoadConfig(args []string) Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		Logger.Warnf("failed to load .env file: %v", err)
	}
	config := Config{
		Trials:     IntEnv("BENCHMARK_TRIALS", 50),
		Iterations: IntEnv("BENCHMARK_ITERATIONS", 1000000),
		Dsn:        StringEnv("BENCHMARK_DSN", ":memory:"),
		Results:    StringEnv("BENCHMARK_RESULTS", ""),
	}
	if len(args) > 1 {
		if trials, err := strconv.Atoi(args[1]); err == nil {
			config.Trials = trials
		} else {
			Logger.Warnf("ignoring malformed trials argument %q: %v", args[1], err)
		}
	}
	if len(args) > 2 {
		if iterations, err := strconv.Atoi(args[2]); err == nil {
			config.Iterations = iterations
		} else {
			Logger.Warnf("ignoring malformed iterations argument %q: %v", args[2], err)
		}
	}
	return config
}
