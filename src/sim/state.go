package sim

import (
	"math/rand/v2"

	"zonevator/src/dispatcher"
	"zonevator/src/elev"
	"zonevator/src/passenger"
)

// FleetState is every car plus the index of trips they have queued.
// Each car draws from its own random stream so it can step independently.
type FleetState struct {
	Elevators []*elev.Elevator
	Index     *dispatcher.RequestIndex
	rngs      []*rand.Rand
}

type PopulationState struct {
	*passenger.Population
}

// State is everything that changes from one tick to the next.
type State struct {
	Tick       int
	Fleet      FleetState
	Population PopulationState
}

// NewState starts a run at tick 0. Car streams are derived from seed and the
// car id, so a run is reproducible from its seed alone.
func NewState(elevators []*elev.Elevator, pop *passenger.Population, seed uint64) *State {
	rngs := make([]*rand.Rand, len(elevators))
	for i, e := range elevators {
		rngs[i] = rand.New(rand.NewPCG(seed, uint64(e.ID)+1))
	}
	return &State{
		Fleet: FleetState{
			Elevators: elevators,
			Index:     dispatcher.NewRequestIndex(),
			rngs:      rngs,
		},
		Population: PopulationState{pop},
	}
}
