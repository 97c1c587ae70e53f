package elev

import (
	"log/slog"
	"math/rand/v2"

	"zonevator/src/passenger"
	"zonevator/src/types"
	"zonevator/src/utils"
)

// StepResult tells the caller what changed hands during a step.
// Released holds one trip per boarded request so the request index can drop it.
type StepResult struct {
	Boarded  []int
	Alighted []int
	Released []types.Trip
}

// Step advances the car by one tick:
//  1. a busy car only counts down
//  2. an empty car goes idle
//  3. an idle car picks the oldest request, else its first rider's floor
//  4. a moving car travels one floor, reversing at the ends of the shaft
//  5. on reaching its target with riders aboard, it heads for the first rider's floor
//  6. waiting requesters on this floor board while there is room
//  7. riders for this floor get off
func (e *Elevator) Step(now int, pop *passenger.Population, rng *rand.Rand, params Params) (StepResult, error) {
	var res StepResult
	if err := e.checkZoning(pop); err != nil {
		return res, err
	}

	if e.Dir == types.MD_Idle {
		e.IdleTime++
	} else {
		e.RunTime++
	}

	if e.Busy.Busy() {
		e.Busy.Tick()
		return res, nil
	}

	if len(e.Passengers) == 0 && len(e.Require) == 0 {
		e.Dir = types.MD_Idle
	}

	if e.Dir == types.MD_Idle {
		switch {
		case len(e.Require) > 0:
			e.setTarget(pop.Get(e.Require[0]).CurrentFloor)
		case len(e.Passengers) > 0:
			e.setTarget(pop.Get(e.Passengers[0]).TargetFloor)
		}
	}

	if e.Dir != types.MD_Idle {
		e.move(params)
	}

	if e.Floor == e.TargetFloor && len(e.Passengers) > 0 {
		e.setTarget(pop.Get(e.Passengers[0]).TargetFloor)
	}

	res.Boarded, res.Released = e.boardRequests(now, pop, params)
	res.Alighted = e.alightRiders(pop, rng, params)
	return res, nil
}

func (e *Elevator) setTarget(floor int) {
	e.TargetFloor = floor
	e.Dir = utils.DirectionTo(e.Floor, floor)
}

func (e *Elevator) move(params Params) {
	e.Floor += int(e.Dir)
	e.Busy.Set(params.TravelTicks - 1)
	if e.Floor >= params.NumFloors {
		e.Floor = params.NumFloors
		e.Dir = types.MD_Down
		slog.Debug("Reversing at top floor", "elevator", e.ID, "floor", e.Floor)
	}
	if e.Floor <= 1 {
		e.Floor = 1
		e.Dir = types.MD_Up
		slog.Debug("Reversing at ground floor", "elevator", e.ID, "floor", e.Floor)
	}
}
