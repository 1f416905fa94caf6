package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func smallConfig() Config {
	cfg := defaultConfig()
	cfg.Keys = 200
	cfg.MaxLen = 24
	cfg.Repeat = 3
	cfg.Seed = 11
	return cfg
}

func newTestRecorder(t *testing.T) *recorder {
	t.Helper()
	rec, err := newRecorder()
	require.NoError(t, err)
	t.Cleanup(func() { _ = rec.Shutdown(context.Background()) })
	return rec
}

func TestRunBench_HashCounts(t *testing.T) {
	cfg := smallConfig()
	cfg.KeyKind = keyKindUUID
	rec := newTestRecorder(t)

	results, err := runBench(context.Background(), cfg, discardLogger(), rec)
	require.NoError(t, err)
	require.Len(t, results, 3)

	byName := make(map[string]result, len(results))
	for _, r := range results {
		byName[r.Scenario] = r
		assert.Equal(t, int64(cfg.Keys*cfg.Repeat), r.Inserts, r.Scenario)
		assert.Positive(t, r.Elapsed, r.Scenario)
	}

	// 不缓存：每次插入都算一次。
	assert.Equal(t, int64(cfg.Keys*cfg.Repeat), byName["no-cache"].Hashes)
	// 预先哈希的键，克隆复制哈希码，插入阶段不再计算。
	assert.Zero(t, byName["cache-key"].Hashes)
	// 共享槽位：每个键只在第一轮算一次。
	assert.Equal(t, int64(cfg.Keys), byName["share-state"].Hashes)
}

func TestRunBench_DuplicateKeys(t *testing.T) {
	cfg := smallConfig()
	cfg.MaxLen = 2 // 长度只有 0 或 1，必然大量重复
	cfg.Scenarios = []string{"share-state", "no-cache"}

	results, err := runBench(context.Background(), cfg, discardLogger(), newTestRecorder(t))
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestRunBench_Workers(t *testing.T) {
	cfg := smallConfig()
	cfg.Workers = 4

	results, err := runBench(context.Background(), cfg, discardLogger(), newTestRecorder(t))
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, int64(cfg.Workers*cfg.Keys*cfg.Repeat), r.Inserts, r.Scenario)
	}
}

func TestRunBench_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runBench(ctx, smallConfig(), discardLogger(), newTestRecorder(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunBench_UnknownScenario(t *testing.T) {
	cfg := smallConfig()
	cfg.Scenarios = []string{"missing"}
	_, err := runBench(context.Background(), cfg, discardLogger(), newTestRecorder(t))
	require.ErrorIs(t, err, ErrUnknownScenario)
}

func TestResult_NsPerInsert(t *testing.T) {
	assert.Zero(t, result{}.NsPerInsert())
	assert.InDelta(t, 2.5, result{Inserts: 4, Elapsed: 10}.NsPerInsert(), 1e-9)
}

func TestScenarioNames(t *testing.T) {
	for _, name := range scenarioNames() {
		s, ok := lookupScenario(name)
		require.True(t, ok)
		assert.NotEmpty(t, s.desc)
	}
	_, ok := lookupScenario("nope")
	assert.False(t, ok)
}
