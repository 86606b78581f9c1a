package wavefront

import (
	"fmt"
	"sync"
	"time"

	"github.com/PaperFox56/Labyrinth-Pathfinder/grid"
)

// solver encapsulates the mutable state of one propagation run.
type solver struct {
	field      *field
	opts       Options
	lowerBound int

	step                   int
	prevMaxPos, prevMinNeg int
	meets                  []grid.Coord
}

// FindShortestPath searches for a shortest start→finish path in g,
// applying any number of functional Options.
//
// It returns ErrGridNil for a nil grid, ErrStartCount / ErrFinishCount
// when the exactly-one-start/finish invariant is violated (checked
// before any propagation), ErrOptionViolation for bad options,
// ErrStepLimit when WithMaxSteps is exceeded, or the context's error on
// cancellation. A disconnected maze is a normal outcome: the returned
// Result has Found == false and the error is nil. The solver never
// returns a partially built path.
func FindShortestPath(g *grid.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGridNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	propStart := time.Now()
	f, lowerBound, err := initialize(g)
	if err != nil {
		return Result{}, err
	}
	s := &solver{field: f, opts: o, lowerBound: lowerBound, step: 1}
	if o.OnStep != nil {
		o.OnStep(0, f.snapshot())
	}

	collided, err := s.loop()
	propagation := time.Since(propStart)
	if err != nil {
		return Result{}, err
	}
	if !collided {
		return Result{
			Found:           false,
			Steps:           s.step,
			PropagationTime: propagation,
		}, nil
	}

	reconStart := time.Now()
	path := s.field.reconstruct(s.meets[0])

	return Result{
		Path:               path,
		Found:              true,
		Steps:              s.step,
		MeetPoints:         s.meets,
		PropagationTime:    propagation,
		ReconstructionTime: time.Since(reconStart),
	}, nil
}

// loop runs propagation steps until collision (true), stall (false),
// cancellation, or the step cap. Each step is one synchronous
// whole-grid sweep over the previous step's snapshot.
func (s *solver) loop() (collided bool, err error) {
	for {
		// cancellation check (once per step)
		select {
		case <-s.opts.Ctx.Done():
			return false, s.opts.Ctx.Err()
		default:
		}
		if s.opts.MaxSteps > 0 && s.step > s.opts.MaxSteps {
			return false, fmt.Errorf("%w: %d steps", ErrStepLimit, s.opts.MaxSteps)
		}

		v := s.field.neighborViews()

		// Collision check first: if the fronts already touch, the field
		// must not advance any further this step. Steps below the
		// Manhattan lower bound cannot produce a valid collision and
		// skip the scan.
		if s.step >= s.lowerBound {
			if s.meets = s.field.collisions(v); len(s.meets) > 0 {
				return true, nil
			}
		}

		s.propagate(v)
		if s.opts.OnStep != nil {
			s.opts.OnStep(s.step, s.field.snapshot())
		}

		// Stall check: a front that cannot grow will never grow again.
		// Either both extrema froze, or one front is boxed in while the
		// other keeps advancing and the depth gap exceeds 1 — in both
		// cases the fronts can no longer meet.
		maxPos, minNeg := s.field.extrema()
		if gap := maxPos + minNeg; gap > 1 || gap < -1 ||
			(maxPos == s.prevMaxPos && minNeg == s.prevMinNeg) {
			return false, nil
		}
		s.prevMaxPos, s.prevMinNeg = maxPos, minNeg
		s.step++
	}
}

// propagate runs one field update, row-striped across workers when
// requested. Writes are disjoint per cell and all reads come from the
// materialized views, so the split needs no synchronization beyond the
// final join.
func (s *solver) propagate(v views) {
	workers := s.opts.Workers
	if workers <= 1 || s.field.rows < workers {
		s.field.propagate(v, 0, len(s.field.cells))
		return
	}
	var wg sync.WaitGroup
	rowsPerWorker := (s.field.rows + workers - 1) / workers
	for lo := 0; lo < s.field.rows; lo += rowsPerWorker {
		hi := lo + rowsPerWorker
		if hi > s.field.rows {
			hi = s.field.rows
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			s.field.propagate(v, lo*s.field.cols, hi*s.field.cols)
		}(lo, hi)
	}
	wg.Wait()
}
