package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRollingAverage(t *testing.T) {
	m := NewMetrics()
	m.Record("op", 10, 100*time.Nanosecond)
	m.Record("op", 10, 300*time.Nanosecond)

	assert.InDelta(t, 20.0, m.NsPerOp("op"), 1e-9)

	rounds, ops, total := m.Totals("op")
	assert.Equal(t, int64(2), rounds)
	assert.Equal(t, int64(20), ops)
	assert.Equal(t, 400*time.Nanosecond, total)
}

func TestMetricsWindowWraps(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < int(AVG_COUNT); i++ {
		m.Record("op", 1, 1000*time.Nanosecond)
	}
	for i := 0; i < int(AVG_COUNT); i++ {
		m.Record("op", 1, 10*time.Nanosecond)
	}
	assert.InDelta(t, 10.0, m.NsPerOp("op"), 1e-9)
}

func TestMetricsIgnoresEmptyRounds(t *testing.T) {
	m := NewMetrics()
	m.Record("op", 0, time.Second)
	assert.Zero(t, m.NsPerOp("op"))

	m.Record("op", 1, time.Microsecond)
	m.Reset()
	assert.Zero(t, m.NsPerOp("op"))
}

func TestParseLogLevel(t *testing.T) {
	l, err := ParseLogLevel("debug")
	assert.NoError(t, err)
	assert.Equal(t, DebugLevel, l)

	_, err = ParseLogLevel("loud")
	assert.Error(t, err)
}
