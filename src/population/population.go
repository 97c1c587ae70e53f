// Package population builds the fleet and the commuters for a run.
package population

import (
	"fmt"
	"math/rand/v2"

	"zonevator/src/config"
	"zonevator/src/elev"
	"zonevator/src/passenger"
	"zonevator/src/utils"
)

// NewFleet creates cfg.Elevators idle cars at the ground floor, zoned by cfg.Zoning.
func NewFleet(cfg config.Config) ([]*elev.Elevator, error) {
	plan, err := elev.LookupZonePlan(cfg.Zoning)
	if err != nil {
		return nil, err
	}
	fleet := make([]*elev.Elevator, cfg.Elevators)
	for id := range fleet {
		fleet[id] = elev.New(id, cfg.Capacity, plan(id, cfg.Floors))
	}
	return fleet, nil
}

// NewPopulation draws cfg.Passengers commuters with random start and
// destination floors, ride counts and arrival times.
func NewPopulation(cfg config.Config, rng *rand.Rand) (*passenger.Population, error) {
	if cfg.Floors < 2 {
		return nil, fmt.Errorf("need at least 2 floors, got %d", cfg.Floors)
	}
	passengers := make([]*passenger.Passenger, cfg.Passengers)
	for id := range passengers {
		current := rng.IntN(cfg.Floors) + 1
		target := utils.RandomFloorExcept(rng, cfg.Floors, current)
		arrival := arrivalTime(rng, cfg.ArrivalWindow)
		rides := rng.IntN(cfg.MaxRides) + 1
		passengers[id] = passenger.New(id, current, target, arrival, rides)
	}
	return passenger.NewPopulation(passengers)
}

// arrivalTime models a morning rush: 10% come in the first window,
// 70% in the second and 20% in the third.
func arrivalTime(rng *rand.Rand, window int) int {
	switch pct := rng.IntN(100) + 1; {
	case pct <= 10:
		return rng.IntN(window)
	case pct <= 80:
		return window + rng.IntN(window)
	default:
		return 2*window + rng.IntN(window)
	}
}
