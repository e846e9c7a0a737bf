package game

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/hometable/internal/randutil"
	"github.com/lox/hometable/poker"
)

// Evaluator ranks card sets at showdown. It must not panic; input it cannot
// rank yields an Evaluation without winners.
type Evaluator interface {
	Evaluate(hands map[string][]poker.Card, board []poker.Card) poker.Evaluation
}

// Engine drives hands at a table. It holds no table state of its own; the
// caller keeps the current TableState and passes it back in.
type Engine struct {
	logger    *log.Logger
	clock     quartz.Clock
	rng       *rand.Rand
	evaluator Evaluator
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *log.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// WithClock sets the clock used to stamp actions and summaries.
func WithClock(clock quartz.Clock) EngineOption {
	return func(e *Engine) { e.clock = clock }
}

// WithRNG sets the random source used for shuffling and picking the first dealer.
func WithRNG(rng *rand.Rand) EngineOption {
	return func(e *Engine) { e.rng = rng }
}

// WithEvaluator replaces the showdown evaluator.
func WithEvaluator(ev Evaluator) EngineOption {
	return func(e *Engine) { e.evaluator = ev }
}

// NewEngine creates an engine. Without options it ranks hands with
// poker.RankEvaluator, uses the real clock and a time-seeded RNG.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger:    log.New(io.Discard),
		clock:     quartz.NewReal(),
		evaluator: poker.RankEvaluator{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = randutil.New(e.clock.Now().UnixNano())
	}
	return e
}
