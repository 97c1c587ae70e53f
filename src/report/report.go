// Package report turns simulation state into read-only snapshots and
// delivers them to whoever is watching the run.
package report

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/tiendc/go-deepcopy"

	"zonevator/src/elev"
	"zonevator/src/passenger"
	"zonevator/src/types"
)

// PassengerView is a rider or requester as seen from outside the car.
type PassengerView struct {
	ID   int
	From int
	To   int
}

// ElevatorView is a detached copy of a car. Passengers and Require hold ids;
// Riders and Queue resolve them against the population.
type ElevatorView struct {
	ID          int
	Capacity    int
	Floor       int
	TargetFloor int
	Dir         types.MotorDirection
	Passengers  []int
	Require     []int

	Riders []PassengerView `copy:"-"`
	Queue  []PassengerView `copy:"-"`
}

type Snapshot struct {
	Tick      int
	Peak      bool // pending requests above the peak fraction of the population
	Pending   int
	Elevators []ElevatorView
}

type ElevatorStats struct {
	ID       int
	IdleTime int
	RunTime  int
}

type PassengerStats struct {
	ID              int
	TotalWait       int
	RidesLeft       int
	UnassignedTicks int
}

type Summary struct {
	Ticks      int
	Elevators  []ElevatorStats
	Passengers []PassengerStats
}

// Reporter receives one snapshot per tick and a summary at the end.
// An error from either stops the run.
type Reporter interface {
	Tick(snapshot Snapshot) error
	Final(summary Summary) error
}

// NewSnapshot deep-copies the fleet so the snapshot never aliases live state.
func NewSnapshot(tick int, fleet []*elev.Elevator, pop *passenger.Population, peakFraction float64) (Snapshot, error) {
	views := make([]ElevatorView, len(fleet))
	for i, e := range fleet {
		if err := deepcopy.Copy(&views[i], e); err != nil {
			return Snapshot{}, fmt.Errorf("copy elevator %d: %w", e.ID, err)
		}
		views[i].Riders = viewsOf(views[i].Passengers, pop)
		views[i].Queue = viewsOf(views[i].Require, pop)
	}
	pending := lo.SumBy(fleet, func(e *elev.Elevator) int { return e.Pending() })
	return Snapshot{
		Tick:      tick,
		Peak:      float64(pending) > peakFraction*float64(pop.Len()),
		Pending:   pending,
		Elevators: views,
	}, nil
}

func viewsOf(ids []int, pop *passenger.Population) []PassengerView {
	return lo.Map(ids, func(id int, _ int) PassengerView {
		p := pop.Get(id)
		return PassengerView{ID: id, From: p.CurrentFloor, To: p.TargetFloor}
	})
}

func NewSummary(ticks int, fleet []*elev.Elevator, pop *passenger.Population) Summary {
	return Summary{
		Ticks: ticks,
		Elevators: lo.Map(fleet, func(e *elev.Elevator, _ int) ElevatorStats {
			return ElevatorStats{ID: e.ID, IdleTime: e.IdleTime, RunTime: e.RunTime}
		}),
		Passengers: lo.Map(pop.Passengers, func(p *passenger.Passenger, _ int) PassengerStats {
			return PassengerStats{ID: p.ID, TotalWait: p.TotalWait, RidesLeft: p.RidesLeft, UnassignedTicks: p.UnassignedTicks}
		}),
	}
}

// MeanWait is the average TotalWait over all passengers.
func (s Summary) MeanWait() float64 {
	if len(s.Passengers) == 0 {
		return 0
	}
	total := lo.SumBy(s.Passengers, func(p PassengerStats) int { return p.TotalWait })
	return float64(total) / float64(len(s.Passengers))
}
