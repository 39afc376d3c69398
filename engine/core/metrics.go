package core

import (
	"sync"
	"time"
)

const AVG_COUNT uint8 = 30

// MetricsState keeps a rolling window of per-operation timings for a
// single benchmark case.
type MetricsState struct {
	avgCounter uint8
	samples    [AVG_COUNT]float64
	filled     uint8
	nsAvg      float64
	rounds     int64
	totalOps   int64
	total      time.Duration
}

// Metrics is a registry of MetricsState keyed by case name.
type Metrics struct {
	mutex  sync.RWMutex
	states map[string]*MetricsState
}

func NewMetrics() *Metrics {
	return &Metrics{
		states: make(map[string]*MetricsState),
	}
}

// Record adds one timed round of ops calls that took elapsed in total.
func (m *Metrics) Record(name string, ops int64, elapsed time.Duration) {
	if ops <= 0 {
		return
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	s, ok := m.states[name]
	if !ok {
		s = &MetricsState{}
		m.states[name] = s
	}

	s.samples[s.avgCounter] = float64(elapsed.Nanoseconds()) / float64(ops)
	s.avgCounter++
	s.avgCounter %= AVG_COUNT
	if s.filled < AVG_COUNT {
		s.filled++
	}

	sum := 0.0
	for i := uint8(0); i < s.filled; i++ {
		sum += s.samples[i]
	}
	s.nsAvg = sum / float64(s.filled)

	s.rounds++
	s.totalOps += ops
	s.total += elapsed
}

// NsPerOp returns the rolling average of nanoseconds per call for name.
func (m *Metrics) NsPerOp(name string) float64 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if s, ok := m.states[name]; ok {
		return s.nsAvg
	}
	return 0
}

// Totals returns the number of rounds, calls and the accumulated time for name.
func (m *Metrics) Totals(name string) (int64, int64, time.Duration) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if s, ok := m.states[name]; ok {
		return s.rounds, s.totalOps, s.total
	}
	return 0, 0, 0
}

// Reset drops every recorded sample.
func (m *Metrics) Reset() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.states = make(map[string]*MetricsState)
}
