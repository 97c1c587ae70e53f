package dispatcher

import (
	"log/slog"
	"math"

	"zonevator/src/elev"
	"zonevator/src/passenger"
)

// Assign picks the eligible car closest to the passenger's floor. Ties go to
// the car that comes first in fleet order. It returns nil if no car qualifies.
func Assign(fleet []*elev.Elevator, idx *RequestIndex, p *passenger.Passenger) *elev.Elevator {
	trip := p.Trip()
	lowestCost := math.MaxInt
	var assignee *elev.Elevator
	for _, elevator := range fleet {
		if !eligible(elevator, trip, idx) {
			continue
		}
		if c := cost(elevator, trip); c < lowestCost {
			lowestCost = c
			assignee = elevator
		}
	}
	return assignee
}

// Dispatch assigns p and hands it over: a car already on p's floor takes it
// aboard at once, any other car queues a request and the index records it.
// A passenger nobody can take stays waiting and is tried again next tick.
func Dispatch(now int, fleet []*elev.Elevator, idx *RequestIndex, p *passenger.Passenger) (*elev.Elevator, error) {
	assignee := Assign(fleet, idx, p)
	if assignee == nil {
		p.UnassignedTicks++
		slog.Debug("No elevator for passenger", "passenger", p.ID, "trip", p.Trip(), "unassignedTicks", p.UnassignedTicks)
		return nil, nil
	}

	if assignee.Floor == p.CurrentFloor {
		if !assignee.BoardNow(now, p) {
			p.UnassignedTicks++
			return nil, nil
		}
		return assignee, nil
	}

	if err := idx.Hold(p.Trip(), assignee.ID); err != nil {
		return nil, err
	}
	assignee.AddRequest(p)
	p.HasRequested = true
	p.UnassignedTicks = 0
	slog.Debug("Assigned passenger", "passenger", p.ID, "trip", p.Trip(), "elevator", assignee.ID, "distance", cost(assignee, p.Trip()))
	return assignee, nil
}
