package elev

import (
	"errors"
	"fmt"

	"zonevator/src/passenger"
	"zonevator/src/timer"
	"zonevator/src/types"
)

var (
	ErrZoneViolation    = errors.New("passenger trip outside elevator zone")
	ErrUnknownPassenger = errors.New("unknown passenger")
)

// Elevator is one car. Riders and pending pickups are kept as passenger ids,
// in boarding and request order.
type Elevator struct {
	ID       int
	Capacity int
	Allowed  FloorSet

	Floor       int
	TargetFloor int
	Dir         types.MotorDirection
	Busy        timer.Countdown // ticks before the car may act again

	Passengers []int
	Require    []int

	IdleTime int
	RunTime  int
}

// Params are the building and timing constants every car steps with.
type Params struct {
	NumFloors   int
	TravelTicks int // ticks per floor travelled
	DwellTicks  int // ticks per boarding or alighting
	Itinerary   passenger.Itinerary
}

// New parks an idle car at the ground floor.
func New(id, capacity int, allowed FloorSet) *Elevator {
	return &Elevator{
		ID:          id,
		Capacity:    capacity,
		Allowed:     allowed,
		Floor:       1,
		TargetFloor: 1,
		Dir:         types.MD_Idle,
	}
}

func (e *Elevator) CanReach(floor int) bool {
	return e.Allowed.Contains(floor)
}

// CanServe reports whether both ends of trip are in the car's zone.
func (e *Elevator) CanServe(trip types.Trip) bool {
	return e.CanReach(trip.From) && e.CanReach(trip.To)
}

func (e *Elevator) IsFull() bool {
	return len(e.Passengers) >= e.Capacity
}

func (e *Elevator) Pending() int {
	return len(e.Require)
}

// checkZoning asserts that every referenced passenger travels inside the zone.
// Dispatch never hands out such work, so a failure here is a bug.
func (e *Elevator) checkZoning(pop *passenger.Population) error {
	for _, ids := range [][]int{e.Passengers, e.Require} {
		for _, id := range ids {
			p := pop.Get(id)
			if p == nil {
				return fmt.Errorf("elevator %d: passenger %d: %w", e.ID, id, ErrUnknownPassenger)
			}
			if !e.CanServe(p.Trip()) {
				return fmt.Errorf("elevator %d (floors %s): passenger %d trip %v: %w",
					e.ID, e.Allowed, id, p.Trip(), ErrZoneViolation)
			}
		}
	}
	return nil
}
