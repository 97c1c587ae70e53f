package dispatcher

import (
	"zonevator/src/elev"
	"zonevator/src/types"
	"zonevator/src/utils"
)

// cost of sending the car to pick up trip: floors between car and lobby.
func cost(elevator *elev.Elevator, trip types.Trip) int {
	return utils.Abs(elevator.Floor - trip.From)
}

// eligible filters cars that may take trip at all:
//   - the car has room
//   - both floors are in its zone
//   - no other car already has the same trip queued
//   - the trip extends the car's current run (or the car is idle)
func eligible(elevator *elev.Elevator, trip types.Trip, idx *RequestIndex) bool {
	if elevator.IsFull() || !elevator.CanServe(trip) {
		return false
	}
	if idx.Conflicts(trip, elevator.ID) {
		return false
	}
	return onTheWay(elevator, trip)
}

// onTheWay accepts trips in the car's direction that start at or ahead of it
// and end no further than its current target.
func onTheWay(elevator *elev.Elevator, trip types.Trip) bool {
	switch elevator.Dir {
	case types.MD_Idle:
		return true
	case types.MD_Up:
		return trip.Dir() == types.MD_Up && trip.From >= elevator.Floor && trip.To <= elevator.TargetFloor
	case types.MD_Down:
		return trip.Dir() == types.MD_Down && trip.From <= elevator.Floor && trip.To >= elevator.TargetFloor
	}
	return false
}
