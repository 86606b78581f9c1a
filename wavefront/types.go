// Package wavefront defines tunable options, sentinel errors, and the
// result type for the bidirectional wavefront solver.
package wavefront

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PaperFox56/Labyrinth-Pathfinder/grid"
)

// Sentinel errors for solver execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("wavefront: grid is nil")

	// ErrStartCount is returned when the grid does not contain exactly one start cell.
	ErrStartCount = errors.New("wavefront: grid must contain exactly one start cell")

	// ErrFinishCount is returned when the grid does not contain exactly one finish cell.
	ErrFinishCount = errors.New("wavefront: grid must contain exactly one finish cell")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wavefront: invalid option supplied")

	// ErrStepLimit is returned when propagation exceeds the WithMaxSteps cap.
	ErrStepLimit = errors.New("wavefront: step limit exceeded")
)

// StepFunc observes one propagation step. It receives the step counter
// (0 for the initial seed, then 1, 2, ... for each completed sweep) and
// a copy of the signed distance field: 0 = unvisited or wall, +k =
// reached by the start front, -k = reached by the finish front.
// The copy is owned by the callee; the solver never reads it back.
type StepFunc func(step int, field [][]int)

// Option configures FindShortestPath via functional arguments.
// If an Option is invalid (e.g. negative step cap), it is recorded
// internally and surfaced as ErrOptionViolation when the solver runs.
type Option func(*Options)

// Options holds parameters and callbacks customizing a solve.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per step.
	Ctx context.Context

	// MaxSteps, if > 0, aborts propagation with ErrStepLimit beyond
	// this many steps. A value of 0 explicitly disables the cap.
	// Propagation terminates on its own for every grid, so the cap is
	// purely a guard for callers with latency budgets.
	MaxSteps int

	// OnStep, if non-nil, receives one field snapshot per propagation
	// step, in step order, starting with the initial seed at step 0.
	OnStep StepFunc

	// Workers sets how many goroutines share the per-step cell update.
	// 0 or 1 means serial. The update is order-independent (all reads
	// come from the previous step's materialized snapshot), so any
	// worker count produces the same field.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no step cap (MaxSteps == 0)
//   - no snapshot observer
//   - serial propagation (Workers == 1).
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: 0,
		OnStep:   nil,
		Workers:  1,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps caps the number of propagation steps.
//
//	n > 0:  abort with ErrStepLimit after n steps
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.MaxSteps = 0
		default:
			o.MaxSteps = n
		}
	}
}

// WithOnStep registers a per-step snapshot observer.
func WithOnStep(fn StepFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithWorkers splits the per-step cell update across n goroutines.
//
//	n > 1:  parallel update with n workers
//	n == 0 or 1: serial
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n <= 1:
			o.Workers = 1
		default:
			o.Workers = n
		}
	}
}

// Result holds the outcome of one solve.
//
// When Found is true, Path runs from the start cell to the finish cell
// inclusive, every consecutive pair is 4-adjacent, and no cell is a
// wall. When Found is false the maze is disconnected and Path is nil.
// Several meet points can qualify on the same step; they all lie on
// shortest paths of identical length, and the solver reconstructs from
// the first one in row-major scan order. Any one shortest path is
// acceptable; only its length is unique.
type Result struct {
	// Path is the start→finish cell sequence, nil when no path exists.
	Path []grid.Coord

	// Found reports whether the two fronts collided.
	Found bool

	// Steps is the value of the step counter when propagation ended.
	Steps int

	// MeetPoints are the cells where the fronts touched, in row-major
	// scan order. Empty when Found is false.
	MeetPoints []grid.Coord

	// PropagationTime covers initialization and all sweep steps;
	// ReconstructionTime covers the two greedy walks.
	PropagationTime    time.Duration
	ReconstructionTime time.Duration
}

// Length returns the number of cells on the path (0 when not found).
func (r Result) Length() int { return len(r.Path) }
