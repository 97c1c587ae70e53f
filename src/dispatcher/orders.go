package dispatcher

import (
	"fmt"

	"zonevator/src/types"
)

// Hold records one more pending request for trip at elevatorID.
func (idx *RequestIndex) Hold(trip types.Trip, elevatorID int) error {
	h, ok := idx.holders[trip]
	if ok && h.ElevatorID != elevatorID {
		return fmt.Errorf("trip %v held by elevator %d, offered to %d: %w", trip, h.ElevatorID, elevatorID, ErrDuplicateRoute)
	}
	idx.holders[trip] = holder{ElevatorID: elevatorID, Count: h.Count + 1}
	return nil
}

// Release drops one pending request for trip at elevatorID, typically because
// its passenger boarded. It reports false if no such request was held.
func (idx *RequestIndex) Release(trip types.Trip, elevatorID int) bool {
	h, ok := idx.holders[trip]
	if !ok || h.ElevatorID != elevatorID {
		return false
	}
	if h.Count <= 1 {
		delete(idx.holders, trip)
		return true
	}
	h.Count--
	idx.holders[trip] = h
	return true
}

// HeldBy returns the car serving trip, if any.
func (idx *RequestIndex) HeldBy(trip types.Trip) (int, bool) {
	h, ok := idx.holders[trip]
	return h.ElevatorID, ok
}

// Conflicts reports whether a car other than elevatorID already serves trip.
func (idx *RequestIndex) Conflicts(trip types.Trip, elevatorID int) bool {
	h, ok := idx.holders[trip]
	return ok && h.ElevatorID != elevatorID
}

// Pending is the number of queued requests across the fleet.
func (idx *RequestIndex) Pending() int {
	n := 0
	for _, h := range idx.holders {
		n += h.Count
	}
	return n
}

func (idx *RequestIndex) Len() int {
	return len(idx.holders)
}
