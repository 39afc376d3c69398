package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spaghettifunk/gamemath/engine/containers"
	"github.com/spaghettifunk/gamemath/engine/core"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageRunning:
		return "running"
	case EngineStageShuttingDown:
		return "shutting down"
	default:
		return "unknown"
	}
}

var ErrWrongStage = errors.New("engine is not in the expected stage")

// Engine times the cases of a Suite. Each case is set up once, warmed
// up, then timed for a number of rounds of Iterations calls each.
type Engine struct {
	mutex        sync.Mutex
	currentStage Stage
	suite        *Suite
	config       *ApplicationConfig
	clock        *core.Clock
	metrics      *core.Metrics
	pending      *containers.RingQueue[Case]
	runID        uuid.UUID
	cancel       context.CancelFunc
}

func New(suite *Suite, config *ApplicationConfig) (*Engine, error) {
	if suite == nil {
		return nil, fmt.Errorf("%w: suite", core.ErrNilArgument)
	}
	if config == nil {
		config = DefaultApplicationConfig()
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		suite:        suite,
		config:       config,
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		runID:        uuid.New(),
	}, nil
}

func (e *Engine) Stage() Stage {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.currentStage
}

func (e *Engine) RunID() uuid.UUID {
	return e.runID
}

func (e *Engine) setStage(stage Stage) {
	e.mutex.Lock()
	e.currentStage = stage
	e.mutex.Unlock()
}

// Initialize validates the configuration and queues every case that
// passes the filter.
func (e *Engine) Initialize() error {
	if e.Stage() != EngineStageUninitialized {
		return fmt.Errorf("%w: initialize from %s", ErrWrongStage, e.Stage())
	}
	e.setStage(EngineStageInitializing)

	if err := e.config.Validate(); err != nil {
		e.setStage(EngineStageUninitialized)
		return err
	}
	core.SetLogLevel(e.config.Level())

	// The queue needs at least one slot even when nothing matches.
	pending, err := containers.NewRingQueue[Case](max(e.suite.Len(), 1))
	if err != nil {
		e.setStage(EngineStageUninitialized)
		return err
	}
	for _, c := range e.suite.Cases() {
		if !e.config.Matches(c.Name) {
			core.LogDebug("run %s: skipping %s", e.runID, c.Name)
			continue
		}
		if err := pending.Enqueue(c); err != nil {
			e.setStage(EngineStageUninitialized)
			return err
		}
	}
	e.pending = pending

	core.LogInfo("run %s: %d of %d cases queued", e.runID, pending.Len(), e.suite.Len())
	e.setStage(EngineStageInitialized)
	return nil
}

// Run drains the queue of pending cases. It stops early, returning the
// partial report and the context error, when ctx is cancelled or
// Shutdown is called.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	e.mutex.Lock()
	if e.currentStage != EngineStageInitialized {
		stage := e.currentStage
		e.mutex.Unlock()
		return nil, fmt.Errorf("%w: run from %s", ErrWrongStage, stage)
	}
	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.currentStage = EngineStageRunning
	e.mutex.Unlock()

	defer e.setStage(EngineStageShuttingDown)
	defer cancel()

	report := &Report{
		RunID:      e.runID,
		Name:       e.config.Name,
		Iterations: e.config.Iterations,
		Rounds:     e.config.Rounds,
		Started:    time.Now(),
	}
	// Partial reports carry their elapsed time too.
	defer func() { report.Elapsed = time.Since(report.Started) }()
	for !e.pending.IsEmpty() {
		if err := ctx.Err(); err != nil {
			core.LogWarn("run %s: stopped with %d cases left", e.runID, e.pending.Len())
			return report, err
		}
		c, err := e.pending.Dequeue()
		if err != nil {
			return report, err
		}
		if err := e.runCase(ctx, c); err != nil {
			return report, err
		}

		rounds, ops, total := e.metrics.Totals(c.Name)
		result := Result{
			Name:    c.Name,
			Rounds:  rounds,
			Ops:     ops,
			Total:   total,
			NsPerOp: e.metrics.NsPerOp(c.Name),
		}
		core.LogDebug("run %s: %s %.2f ns/op", e.runID, result.Name, result.NsPerOp)
		report.Results = append(report.Results, result)
	}
	return report, nil
}

func (e *Engine) runCase(ctx context.Context, c Case) error {
	op := c.Setup()
	if op == nil {
		return fmt.Errorf("%w: case %q returned no operation", core.ErrNilArgument, c.Name)
	}
	for i := 0; i < e.config.WarmUp; i++ {
		op()
	}

	iterations := e.config.Iterations
	for round := 0; round < e.config.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.clock.Start()
		for i := 0; i < iterations; i++ {
			op()
		}
		e.clock.Update()
		e.clock.Stop()
		e.metrics.Record(c.Name, int64(iterations), e.clock.Elapsed())
	}
	return nil
}

// Shutdown stops a running engine after the current round. It is safe
// to call from another goroutine and more than once.
func (e *Engine) Shutdown() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.cancel != nil {
		e.cancel()
	}
	if e.currentStage != EngineStageShuttingDown {
		core.LogInfo("run %s: shutting down from %s", e.runID, e.currentStage)
	}
	e.currentStage = EngineStageShuttingDown
	return nil
}
