package config

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/numlab/internal/errors"
)

var (
	testAlgos      = []string{"binet", "binet-approx", "cached", "iterative", "matrix", "recursive", "sequence"}
	testEstimators = []string{"lattice", "montecarlo"}
)

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	return ParseConfig("numlab", args, io.Discard, testAlgos, testEstimators)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)

	assert.Equal(t, DefaultN, cfg.N)
	assert.Equal(t, DefaultSamples, cfg.Samples)
	assert.Equal(t, DefaultAlgo, cfg.Algo)
	assert.Equal(t, DefaultPiMethod, cfg.PiMethod)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.True(t, cfg.Demo, "demo is the default mode with no calculation flags")
	assert.False(t, cfg.PiMode)
	assert.False(t, cfg.Quiet)
}

func TestParseConfig_CalculationFlagsDisableDemo(t *testing.T) {
	for _, args := range [][]string{
		{"-n", "100"},
		{"-algo", "matrix"},
		{"-estimate-pi"},
		{"-samples", "5000"},
		{"-tui"},
	} {
		cfg, err := parse(t, args...)
		require.NoError(t, err, "args %v", args)
		assert.False(t, cfg.Demo, "args %v should disable demo mode", args)
	}
}

func TestParseConfig_PiFlagsEnablePiMode(t *testing.T) {
	cfg, err := parse(t, "-samples", "5000")
	require.NoError(t, err)
	assert.True(t, cfg.PiMode)
	assert.Equal(t, 5000, cfg.Samples)

	cfg, err = parse(t, "-pi", "lattice")
	require.NoError(t, err)
	assert.True(t, cfg.PiMode)
	assert.Equal(t, "lattice", cfg.PiMethod)

	cfg, err = parse(t, "-n", "100")
	require.NoError(t, err)
	assert.False(t, cfg.PiMode, "-n alone must not enable pi mode")
}

func TestParseConfig_Aliases(t *testing.T) {
	cfg, err := parse(t, "-n", "50", "-v", "-q", "-c", "-o", "result.txt")
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Quiet)
	assert.True(t, cfg.ShowValue)
	assert.Equal(t, "result.txt", cfg.OutputFile)

	cfg, err = parse(t, "-n", "50", "-verbose", "-quiet", "-calculate", "-output", "result.txt")
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Quiet)
	assert.True(t, cfg.ShowValue)
	assert.Equal(t, "result.txt", cfg.OutputFile)
}

func TestParseConfig_InvalidAlgorithm(t *testing.T) {
	_, err := parse(t, "-algo", "quantum")
	require.Error(t, err)
	var cfgErr apperrors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestParseConfig_InvalidEstimator(t *testing.T) {
	_, err := parse(t, "-pi", "chudnovsky")
	require.Error(t, err)
	var cfgErr apperrors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestParseConfig_InvalidTimeout(t *testing.T) {
	_, err := parse(t, "-timeout", "0s")
	require.Error(t, err)
	var cfgErr apperrors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestParseConfig_NegativeRecursionLimit(t *testing.T) {
	_, err := parse(t, "-recursion-limit", "-1")
	require.Error(t, err)
}

func TestEnvOverrides_AppliedWhenFlagAbsent(t *testing.T) {
	t.Setenv("NUMLAB_N", "123")
	t.Setenv("NUMLAB_TIMEOUT", "5s")
	t.Setenv("NUMLAB_ALGO", "matrix")
	t.Setenv("NUMLAB_VERBOSE", "yes")

	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, 123, cfg.N)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "matrix", cfg.Algo)
	assert.True(t, cfg.Verbose)
}

func TestEnvOverrides_FlagsTakePriority(t *testing.T) {
	t.Setenv("NUMLAB_N", "123")
	t.Setenv("NUMLAB_ALGO", "matrix")

	cfg, err := parse(t, "-n", "77", "-algo", "iterative")
	require.NoError(t, err)
	assert.Equal(t, 77, cfg.N)
	assert.Equal(t, "iterative", cfg.Algo)
}

func TestEnvOverrides_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("NUMLAB_N", "not-a-number")
	t.Setenv("NUMLAB_QUIET", "maybe")

	cfg, err := parse(t, "-n", "0")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.N)
	assert.False(t, cfg.Quiet)
}

func TestParseBoolEnv(t *testing.T) {
	cases := []struct {
		val        string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"false", true, false},
		{"0", true, false},
		{"No", true, false},
		{"garbage", true, true},
		{"garbage", false, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseBoolEnv(tc.val, tc.defaultVal), "parseBoolEnv(%q, %v)", tc.val, tc.defaultVal)
	}
}

func TestValidate_Direct(t *testing.T) {
	valid := AppConfig{
		N:        10,
		Algo:     "all",
		PiMethod: "montecarlo",
		Timeout:  time.Minute,
	}
	assert.NoError(t, valid.Validate(testAlgos, testEstimators))

	named := valid
	named.Algo = "matrix"
	assert.NoError(t, named.Validate(testAlgos, testEstimators))
}
