// Package sim drives the tick loop: cars first, then passengers and dispatch,
// then a snapshot for the reporter.
package sim

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"zonevator/src/config"
	"zonevator/src/dispatcher"
	"zonevator/src/elev"
	"zonevator/src/report"
)

var ErrTickLimit = errors.New("tick limit reached with rides outstanding")

// Tick advances s by one time unit.
func Tick(s *State, cfg config.Config) error {
	s.Tick++
	now := s.Tick

	results, err := stepElevators(s, cfg.ElevParams(), cfg.Parallel)
	if err != nil {
		return fmt.Errorf("tick %d: %w", now, err)
	}
	// The index is shared by the whole fleet, so it is only touched here,
	// after every car has finished its step.
	for i, res := range results {
		e := s.Fleet.Elevators[i]
		for _, trip := range res.Released {
			if !s.Fleet.Index.Release(trip, e.ID) {
				return fmt.Errorf("tick %d: %w: elevator %d boarded unindexed trip %v", now, ErrInvariant, e.ID, trip)
			}
		}
	}

	for _, p := range s.Population.Passengers {
		p.Update(now)
		if !p.NeedsDispatch(now) {
			continue
		}
		if _, err := dispatcher.Dispatch(now, s.Fleet.Elevators, s.Fleet.Index, p); err != nil {
			return fmt.Errorf("tick %d: %w", now, err)
		}
	}

	if cfg.Paranoid {
		if err := CheckInvariants(s); err != nil {
			return fmt.Errorf("tick %d: %w", now, err)
		}
	}
	return nil
}

func stepElevators(s *State, params elev.Params, parallel bool) ([]elev.StepResult, error) {
	now := s.Tick
	pop := s.Population.Population
	results := make([]elev.StepResult, len(s.Fleet.Elevators))
	if !parallel {
		for i, e := range s.Fleet.Elevators {
			res, err := e.Step(now, pop, s.Fleet.rngs[i], params)
			if err != nil {
				return nil, err
			}
			results[i] = res
		}
		return results, nil
	}

	// A car only touches its own riders and requesters, so cars can step
	// concurrently. Dispatch runs afterwards on a single goroutine.
	var g errgroup.Group
	for i, e := range s.Fleet.Elevators {
		g.Go(func() error {
			res, err := e.Step(now, pop, s.Fleet.rngs[i], params)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Run ticks until every passenger has used up their rides, feeding rep a
// snapshot per tick and the summary at the end. With cfg.MaxTicks set, a run
// that has not finished by then is summarised and returns ErrTickLimit.
func Run(s *State, cfg config.Config, rep report.Reporter) error {
	slog.Info("Simulation started",
		"elevators", len(s.Fleet.Elevators),
		"passengers", s.Population.Len(),
		"floors", cfg.Floors,
		"zoning", cfg.Zoning,
		"parallel", cfg.Parallel)

	for s.Population.RidesRemaining() {
		if cfg.MaxTicks > 0 && s.Tick >= cfg.MaxTicks {
			if err := rep.Final(Summarize(s)); err != nil {
				return err
			}
			return fmt.Errorf("%w: %d ticks", ErrTickLimit, s.Tick)
		}
		if err := Tick(s, cfg); err != nil {
			return err
		}
		snapshot, err := report.NewSnapshot(s.Tick, s.Fleet.Elevators, s.Population.Population, cfg.PeakFraction)
		if err != nil {
			return err
		}
		if err := rep.Tick(snapshot); err != nil {
			return err
		}
	}

	summary := Summarize(s)
	slog.Info("Simulation finished", "ticks", s.Tick, "meanWait", summary.MeanWait())
	return rep.Final(summary)
}

func Summarize(s *State) report.Summary {
	return report.NewSummary(s.Tick, s.Fleet.Elevators, s.Population.Population)
}
