package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/stencilkit/field"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with a private config file and returns stdout.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--config", filepath.Join(dir, "stencilkit.yaml")))
	err := cmd.Execute()

	return stdout.String(), err
}

func TestLoadConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "stencilkit.yaml")

	cfg, created, err := loadConfig(newViper(), path)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, *defaultConfig(), *cfg)
	require.Equal(t, 2, cfg.Field.Halo)
	require.Equal(t, "ZYX", cfg.Field.AxisOrder)
	require.Equal(t, "results.csv", cfg.Results.File)

	again, created, err := loadConfig(newViper(), path)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, *cfg, *again)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stencilkit.yaml")
	yml := "field:\n  nx: 40\n  pattern: square\nbench:\n  alpha: 0.5\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))
	t.Setenv("STENCILKIT_FIELD_NY", "24")

	cfg, created, err := loadConfig(newViper(), path)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, 40, cfg.Field.NX)
	require.Equal(t, 24, cfg.Field.NY)
	require.Equal(t, 16, cfg.Field.NZ)
	require.Equal(t, "square", cfg.Field.Pattern)
	require.Equal(t, 0.5, cfg.Bench.Alpha)
	require.Equal(t, 7, cfg.Bench.Repeat)
}

func TestFieldOptionsRejectUnknownNames(t *testing.T) {
	cfg := defaultConfig()
	cfg.Field.Pattern = "zigzag"
	_, err := cfg.newField()
	require.ErrorIs(t, err, field.ErrUnknownPattern)

	cfg = defaultConfig()
	cfg.Field.AxisOrder = "XXZ"
	_, err = cfg.newField()
	require.ErrorIs(t, err, field.ErrUnknownAxisOrder)
}

func TestSetupLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	require.Equal(t, logrus.DebugLevel, setupLogger(LogConfig{Level: "error", Verbose: true}, &buf).GetLevel())
	require.Equal(t, logrus.WarnLevel, setupLogger(LogConfig{Level: "WARN"}, &buf).GetLevel())
	require.Equal(t, logrus.InfoLevel, setupLogger(LogConfig{Level: "bogus"}, &buf).GetLevel())
}

func TestShowCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "show", "--nz", "1", "--ny", "4", "--nx", "4", "--halo", "0", "--pattern", "square")
	require.NoError(t, err)
	require.Equal(t, "++++\n+@@+\n+@@+\n++++\n", out)
}

func TestShowCommandBadHalo(t *testing.T) {
	_, err := run(t, t.TempDir(), "show", "--ny", "6", "--nx", "6", "--halo", "3")
	require.ErrorIs(t, err, field.ErrBadHalo)
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	h5 := filepath.Join(dir, "field.h5")
	out, err := run(t, dir, "init", "--out", h5, "--nz", "2", "--ny", "6", "--nx", "8", "--order", "XZY", "--dtype", "float32")
	require.NoError(t, err)
	require.Contains(t, out, "/in_field [8 2 6]")
	_, err = os.Stat(h5)
	require.NoError(t, err)
}

func TestBenchAndResults(t *testing.T) {
	dir := t.TempDir()
	log := filepath.Join(dir, "results.csv")
	common := []string{"--nz", "1", "--ny", "12", "--nx", "12", "--repeat", "2", "--iters", "1", "--results", log}

	out, err := run(t, dir, append([]string{"bench", "--test", "fast"}, common...)...)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "fast: "))
	_, err = run(t, dir, append([]string{"bench", "--test", "slow"}, common...)...)
	require.NoError(t, err)

	raw, err := os.ReadFile(log)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "timestamp,hostname,test,timeit_avg,timeit_std", lines[0])

	out, err = run(t, dir, "results", "read", "--test", "slow", "--results", log)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(out, "\n"))
	require.Contains(t, out, "  slow  ")

	out, err = run(t, dir, "results", "compare", "fast", "slow", "--results", log)
	require.NoError(t, err)
	require.Contains(t, out, "fast is ")
	require.Contains(t, out, " faster than slow")

	_, err = run(t, dir, "results", "compare", "fast", "missing", "--results", log)
	require.Error(t, err)
}

func TestPlotCommand(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "slice.png")
	_, err := run(t, dir, "plot", "--output", png, "--nz", "2", "--ny", "8", "--nx", "8",
		"--order", "YZX", "--layout", "F", "--slice", "1", "--auto-range")
	require.NoError(t, err)
	st, err := os.Stat(png)
	require.NoError(t, err)
	require.Positive(t, st.Size())

	_, err = run(t, dir, "plot", "--output", png, "--nz", "2", "--ny", "8", "--nx", "8", "--slice", "2")
	require.Error(t, err)
}

func TestBenchRejectsBadCounts(t *testing.T) {
	dir := t.TempDir()
	log := filepath.Join(dir, "results.csv")
	for _, flag := range []string{"--repeat", "--number", "--iters"} {
		_, err := run(t, dir, "bench", "--nz", "1", "--ny", "12", "--nx", "12", flag, "0", "--results", log)
		require.ErrorIs(t, err, ErrInvalidConfig, flag)
	}
	_, err := os.Stat(log)
	require.True(t, os.IsNotExist(err))

	t.Setenv("STENCILKIT_BENCH_REPEAT", "-3")
	_, err = run(t, dir, "bench", "--nz", "1", "--ny", "12", "--nx", "12", "--no-save")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
