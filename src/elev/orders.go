package elev

import (
	"log/slog"
	"math/rand/v2"

	"github.com/samber/lo"

	"zonevator/src/passenger"
	"zonevator/src/types"
)

// AddRequest queues a pickup for p and points the car at p's floor.
func (e *Elevator) AddRequest(p *passenger.Passenger) {
	e.Require = append(e.Require, p.ID)
	e.TargetFloor = p.CurrentFloor
	slog.Debug("Queued pickup", "elevator", e.ID, "passenger", p.ID, "trip", p.Trip(), "pending", len(e.Require))
}

// BoardNow takes p aboard without a request, for a car already at p's floor.
// An idle car adopts p's destination as its target. It reports false when full.
func (e *Elevator) BoardNow(now int, p *passenger.Passenger) bool {
	if e.IsFull() {
		return false
	}
	e.Passengers = append(e.Passengers, p.ID)
	p.Board(now, e.Floor)
	if e.Dir == types.MD_Idle {
		e.setTarget(p.TargetFloor)
	}
	slog.Debug("Boarded on the spot", "elevator", e.ID, "passenger", p.ID, "floor", e.Floor, "target", p.TargetFloor)
	return true
}

func (e *Elevator) boardRequests(now int, pop *passenger.Population, params Params) (boarded []int, released []types.Trip) {
	for _, id := range e.Require {
		p := pop.Get(id)
		if p.CurrentFloor != e.Floor || p.Status != types.PS_Waiting || p.RidesLeft <= 0 {
			continue
		}
		if e.IsFull() {
			break
		}
		released = append(released, p.Trip())
		e.Passengers = append(e.Passengers, id)
		p.Board(now, e.Floor)
		e.Busy.Add(params.DwellTicks - 1)
		boarded = append(boarded, id)
		slog.Debug("Passenger boarded", "elevator", e.ID, "passenger", id, "floor", e.Floor, "target", p.TargetFloor, "waited", p.TotalWait)
	}
	if len(boarded) > 0 {
		e.Require = lo.Without(e.Require, boarded...)
	}
	return boarded, released
}

func (e *Elevator) alightRiders(pop *passenger.Population, rng *rand.Rand, params Params) (alighted []int) {
	for _, id := range e.Passengers {
		p := pop.Get(id)
		if p.TargetFloor != e.Floor {
			continue
		}
		p.Alight(e.Floor, rng, params.Itinerary)
		e.Busy.Add(params.DwellTicks - 1)
		alighted = append(alighted, id)
		slog.Debug("Passenger alighted", "elevator", e.ID, "passenger", id, "floor", e.Floor, "ridesLeft", p.RidesLeft)
	}
	if len(alighted) > 0 {
		e.Passengers = lo.Without(e.Passengers, alighted...)
	}
	return alighted
}
