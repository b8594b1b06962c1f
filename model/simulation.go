package model

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Reason describes why a simulation run stopped
type Reason int

const (
	ReasonExtinct Reason = iota
	ReasonCycle
	ReasonLimitReached
	ReasonInterrupted
)

func (r Reason) String() string {
	switch r {
	case ReasonExtinct:
		return "extinct"
	case ReasonCycle:
		return "cycle"
	case ReasonLimitReached:
		return "limit reached"
	case ReasonInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// GenerationCap is an optional upper bound on the number of generations to run.
// The zero value is unbounded.
type GenerationCap struct {
	max     int
	bounded bool
}

// Unbounded returns a cap that never stops the run
func Unbounded() GenerationCap {
	return GenerationCap{}
}

// CapAt returns a cap allowing generations 1 through n
func CapAt(n int) GenerationCap {
	return GenerationCap{max: n, bounded: true}
}

// Limit returns the cap and whether one is set
func (c GenerationCap) Limit() (int, bool) {
	return c.max, c.bounded
}

func (c GenerationCap) allows(gen int) bool {
	return !c.bounded || gen <= c.max
}

func (c GenerationCap) isLast(gen int) bool {
	return c.bounded && gen == c.max
}

// Observer is handed every generation before it is advanced
type Observer interface {
	Observe(generation int, board *Board) error
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(generation int, board *Board) error

func (f ObserverFunc) Observe(generation int, board *Board) error {
	return f(generation, board)
}

// Simulation drives a board generation by generation until the population dies out,
// a previously seen board recurs, or the cap is reached.
type Simulation struct {
	Cap      GenerationCap
	Pace     time.Duration // delay between generations, zero for none
	Observer Observer
	Logger   *zap.Logger
}

// Result summarizes a finished run
type Result struct {
	Reason Reason
	// Generation is the last generation reached. For a cycle it is the generation whose
	// board matched an earlier one.
	Generation int
	// MatchedGeneration is the first generation the repeated board was seen at
	MatchedGeneration int
	Board             *Board
	History           *History
}

// Run simulates from board (generation 1). Observer errors abort the run.
func (s *Simulation) Run(ctx context.Context, board *Board) (Result, error) {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		history = NewHistory()
		gen     = 1
	)
	history.RecordIfAbsent(board.Key(), gen)

	result := func(reason Reason) Result {
		return Result{Reason: reason, Generation: gen, Board: board, History: history}
	}

	for !board.IsEmpty() && s.Cap.allows(gen) {
		if ctx.Err() != nil {
			return result(ReasonInterrupted), nil
		}
		if s.Observer != nil {
			if err := s.Observer.Observe(gen, board); err != nil {
				return Result{}, errors.Wrapf(err, "[Run] observer failed at generation %d", gen)
			}
		}

		next := board.Advance()
		key := next.Key()
		logger.Debug("advanced generation",
			zap.Int("generation", gen+1),
			zap.Int("population", next.Population()),
		)

		if history.Contains(key) && !s.Cap.isLast(gen) {
			first, err := history.FirstSeenAt(key)
			if err != nil {
				return Result{}, err
			}
			logger.Info("cycle detected",
				zap.Int("generation", gen+1),
				zap.Int("matched_generation", first),
			)
			return Result{
				Reason:            ReasonCycle,
				Generation:        gen + 1,
				MatchedGeneration: first,
				Board:             next,
				History:           history,
			}, nil
		}

		gen++
		history.RecordIfAbsent(key, gen)
		board = next

		if !s.Cap.allows(gen) {
			break
		}
		if err := s.wait(ctx); err != nil {
			return result(ReasonInterrupted), nil
		}
	}

	if !s.Cap.allows(gen) {
		logger.Info("generation limit reached", zap.Int("generation", gen))
		return result(ReasonLimitReached), nil
	}
	logger.Info("population extinct", zap.Int("generation", gen))
	return result(ReasonExtinct), nil
}

func (s *Simulation) wait(ctx context.Context) error {
	if s.Pace <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.Pace)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
