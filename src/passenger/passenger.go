// Package passenger holds the rider state machine:
// Waiting -> InElevator -> Arrived -> Waiting ... until no rides are left.
package passenger

import (
	"log/slog"
	"math/rand/v2"

	"zonevator/src/timer"
	"zonevator/src/types"
	"zonevator/src/utils"
)

// NoWait marks a passenger that is not currently accumulating wait time.
const NoWait = -1

type Passenger struct {
	ID           int
	CurrentFloor int
	TargetFloor  int
	ArrivalTime  int // first tick the passenger may wait for a car
	RidesLeft    int
	Rest         timer.Countdown
	Status       types.PassengerStatus

	WaitStart int
	TotalWait int

	HasRequested bool
	// UnassignedTicks counts consecutive dispatch attempts that found no car.
	UnassignedTicks int
}

func New(id, currentFloor, targetFloor, arrivalTime, ridesLeft int) *Passenger {
	return &Passenger{
		ID:           id,
		CurrentFloor: currentFloor,
		TargetFloor:  targetFloor,
		ArrivalTime:  arrivalTime,
		RidesLeft:    ridesLeft,
		Status:       types.PS_Waiting,
		WaitStart:    NoWait,
	}
}

func (p *Passenger) Trip() types.Trip {
	return types.Trip{From: p.CurrentFloor, To: p.TargetFloor}
}

func (p *Passenger) Done() bool {
	return p.RidesLeft <= 0
}

// Eligible reports whether the passenger is standing in a lobby wanting a car.
func (p *Passenger) Eligible(now int) bool {
	return p.Status == types.PS_Waiting && p.ArrivalTime <= now && p.RidesLeft > 0
}

// NeedsDispatch is Eligible without a request already queued at some car.
func (p *Passenger) NeedsDispatch(now int) bool {
	return p.Eligible(now) && !p.HasRequested
}

// Update runs the per-tick transitions that do not involve a car:
// finishing a rest period and starting the wait clock.
func (p *Passenger) Update(now int) {
	if p.Status == types.PS_Arrived && !p.Done() {
		if !p.Rest.Tick() {
			p.Status = types.PS_Waiting
			p.HasRequested = false
			slog.Debug("Passenger rested, waiting again", "passenger", p.ID, "floor", p.CurrentFloor, "target", p.TargetFloor)
		}
	}
	if p.Eligible(now) && p.WaitStart == NoWait {
		p.WaitStart = now
	}
}

// Board moves the passenger into a car at floor and folds the current wait into TotalWait.
func (p *Passenger) Board(now, floor int) {
	if p.WaitStart != NoWait {
		p.TotalWait += now - p.WaitStart
		p.WaitStart = NoWait
	}
	p.Status = types.PS_InElevator
	p.CurrentFloor = floor
	p.HasRequested = false
	p.UnassignedTicks = 0
}

// Itinerary decides what a passenger does after getting off.
type Itinerary struct {
	NumFloors int
	RestMin   int
	RestMax   int
}

// Next draws the next destination (different from floor) and the rest length.
func (it Itinerary) Next(rng *rand.Rand, floor int) (target, rest int) {
	target = utils.RandomFloorExcept(rng, it.NumFloors, floor)
	rest = it.RestMin
	if it.RestMax > it.RestMin {
		rest += rng.IntN(it.RestMax - it.RestMin + 1)
	}
	return target, rest
}

// Alight takes the passenger off a car at floor. A passenger with rides left
// gets a new destination and a rest period; on the last ride it just arrives.
func (p *Passenger) Alight(floor int, rng *rand.Rand, it Itinerary) {
	p.CurrentFloor = floor
	p.Status = types.PS_Arrived
	if p.RidesLeft > 1 {
		p.RidesLeft--
		target, rest := it.Next(rng, floor)
		p.TargetFloor = target
		p.Rest.Set(rest)
		return
	}
	p.RidesLeft = 0
	p.Rest.Set(0)
}
