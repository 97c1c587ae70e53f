package sim

import (
	"errors"
	"fmt"

	"zonevator/src/types"
)

var ErrInvariant = errors.New("invariant violated")

// CheckInvariants verifies the fleet-wide rules dispatch is meant to keep:
//   - no car carries more than its capacity
//   - every referenced trip lies inside the car's zone
//   - a passenger is referenced by at most one list of one car
//   - no two cars have the same trip queued
//   - the request index agrees with the queues
func CheckInvariants(s *State) error {
	var problems []error
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...))
	}

	owner := make(map[int]int)
	route := make(map[types.Trip]int)
	queued := 0
	for _, e := range s.Fleet.Elevators {
		if len(e.Passengers) > e.Capacity {
			fail("elevator %d carries %d passengers, capacity %d", e.ID, len(e.Passengers), e.Capacity)
		}
		for _, ids := range [][]int{e.Passengers, e.Require} {
			for _, id := range ids {
				p := s.Population.Get(id)
				if p == nil {
					fail("elevator %d references unknown passenger %d", e.ID, id)
					continue
				}
				if !e.CanServe(p.Trip()) {
					fail("elevator %d serves passenger %d outside its zone (%v)", e.ID, id, p.Trip())
				}
				if other, ok := owner[id]; ok {
					fail("passenger %d referenced by elevator %d and elevator %d", id, other, e.ID)
				}
				owner[id] = e.ID
			}
		}
		for _, id := range e.Require {
			p := s.Population.Get(id)
			if p == nil {
				continue
			}
			queued++
			if other, ok := route[p.Trip()]; ok && other != e.ID {
				fail("trip %v queued at elevator %d and elevator %d", p.Trip(), other, e.ID)
			}
			route[p.Trip()] = e.ID
			if held, ok := s.Fleet.Index.HeldBy(p.Trip()); !ok || held != e.ID {
				fail("trip %v queued at elevator %d missing from the request index", p.Trip(), e.ID)
			}
		}
	}
	if pending := s.Fleet.Index.Pending(); pending != queued {
		fail("request index holds %d requests, queues hold %d", pending, queued)
	}
	return errors.Join(problems...)
}
