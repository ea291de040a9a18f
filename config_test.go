package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	config := LoadConfig([]string{"pragma-benchmark"})
	require.Equal(t, 50, config.Trials)
	require.Equal(t, 1000000, config.Iterations)
	require.Equal(t, ":memory:", config.Dsn)
	require.Equal(t, "", config.Results)
}

func TestConfigEnvOverrides(t *testing.T) {
	t.Setenv("BENCHMARK_TRIALS", "3")
	t.Setenv("BENCHMARK_ITERATIONS", "10")
	config := LoadConfig([]string{"pragma-benchmark"})
	require.Equal(t, 3, config.Trials)
	require.Equal(t, 10, config.Iterations)
}

func TestConfigArgsOverrides(t *testing.T) {
	t.Setenv("BENCHMARK_TRIALS", "3")
	config := LoadConfig([]string{"pragma-benchmark", "7", "2000"})
	require.Equal(t, 7, config.Trials)
	require.Equal(t, 2000, config.Iterations)
}

func TestConfigMalformedArgs(t *testing.T) {
	config := LoadConfig([]string{"pragma-benchmark", "seven"})
	require.Equal(t, 50, config.Trials)
}

func TestIntEnv(t *testing.T) {
	t.Setenv("BENCHMARK_TEST_INT", "not-a-number")
	require.Equal(t, 13, IntEnv("BENCHMARK_TEST_INT", 13))
	t.Setenv("BENCHMARK_TEST_INT", "42")
	require.Equal(t, 42, IntEnv("BENCHMARK_TEST_INT", 13))
}
