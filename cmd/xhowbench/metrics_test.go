package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Collect(t *testing.T) {
	ctx := context.Background()
	rec := newTestRecorder(t)

	rec.round(ctx, "cache-key", 2*time.Millisecond)
	rec.round(ctx, "cache-key", 4*time.Millisecond)
	rec.scenarioDone(ctx, result{Scenario: "cache-key", Inserts: 10, Hashes: 0})
	rec.scenarioDone(ctx, result{Scenario: "no-cache", Inserts: 10, Hashes: 10})

	lines, err := rec.collect(ctx)
	require.NoError(t, err)

	got := make(map[string]string)
	for _, l := range lines {
		got[l.Name+"/"+l.Scenario] = l.Value
	}
	assert.Equal(t, "10", got["xhowbench.inserts/cache-key"])
	assert.Equal(t, "0", got["xhowbench.hashes/cache-key"])
	assert.Equal(t, "10", got["xhowbench.hashes/no-cache"])
	assert.Equal(t, "count=2 mean=3ms min=2ms max=4ms", got["xhowbench.round.duration/cache-key"])

	var buf bytes.Buffer
	writeMetrics(&buf, lines)
	assert.Contains(t, buf.String(), "xhowbench.inserts\tno-cache\t10\n")
}
