package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/loop"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:        time.Second,
		Seed:            7,
		ActionsPerFrame: 2,
		Width:           10,
		Height:          20,
		TotalUpdates:    600,
		Lines:           12,
		GamesOver:       3,
		BestScore:       150,
		Systems: []loop.SystemStats{
			{Name: "GravitySystem", ExecutionCount: 600, AvgDuration: time.Microsecond},
		},
	}
	r.MemStatsStart.HeapAlloc = 100
	r.MemStatsEnd.HeapAlloc = 40

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Blockfall Benchmark Report")
	assert.Contains(t, out, "- **Arena:** 10x20")
	assert.Contains(t, out, "- **Lines Cleared:** 12")
	assert.Contains(t, out, "- **Games Over:** 3")
	assert.Contains(t, out, "| GravitySystem | 600 | 1µs |")
	assert.Contains(t, out, "delta: -60")
}
