package passenger

import (
	"fmt"

	"github.com/samber/lo"
)

// Population is every passenger of a run, indexed by id.
type Population struct {
	Passengers []*Passenger
}

// NewPopulation checks that ids match positions so lookups by id are O(1).
func NewPopulation(passengers []*Passenger) (*Population, error) {
	for i, p := range passengers {
		if p == nil {
			return nil, fmt.Errorf("passenger %d is nil", i)
		}
		if p.ID != i {
			return nil, fmt.Errorf("passenger at index %d has id %d", i, p.ID)
		}
		if p.CurrentFloor == p.TargetFloor {
			return nil, fmt.Errorf("passenger %d starts at its destination %d", p.ID, p.TargetFloor)
		}
	}
	return &Population{Passengers: passengers}, nil
}

func (pop *Population) Len() int {
	return len(pop.Passengers)
}

// Get returns the passenger with id, or nil if there is none.
func (pop *Population) Get(id int) *Passenger {
	if id < 0 || id >= len(pop.Passengers) {
		return nil
	}
	return pop.Passengers[id]
}

// RidesRemaining reports whether anyone still has a trip to make.
func (pop *Population) RidesRemaining() bool {
	return lo.ContainsBy(pop.Passengers, func(p *Passenger) bool { return !p.Done() })
}
