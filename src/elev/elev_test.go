package elev

import (
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"zonevator/src/passenger"
	"zonevator/src/types"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var testParams = Params{
	NumFloors:   10,
	TravelTicks: 1,
	DwellTicks:  2,
	Itinerary:   passenger.Itinerary{NumFloors: 10, RestMin: 5, RestMax: 5},
}

func newPopulation(t *testing.T, passengers ...*passenger.Passenger) *passenger.Population {
	t.Helper()
	pop, err := passenger.NewPopulation(passengers)
	if err != nil {
		t.Fatal(err)
	}
	return pop
}

func step(t *testing.T, e *Elevator, now int, pop *passenger.Population, params Params) StepResult {
	t.Helper()
	res, err := e.Step(now, pop, rand.New(rand.NewPCG(1, uint64(now))), params)
	if err != nil {
		t.Fatalf("tick %d: %v", now, err)
	}
	return res
}

func TestBoundaryReversal(t *testing.T) {
	pop := newPopulation(t, passenger.New(0, 1, 9, 0, 1))

	t.Run("ground floor moving down", func(t *testing.T) {
		e := New(0, 4, FloorRange(10, 1, 10))
		e.Passengers = []int{0}
		pop.Get(0).Status = types.PS_InElevator
		e.Dir = types.MD_Down
		e.TargetFloor = 9
		step(t, e, 1, pop, testParams)
		if e.Floor != 1 || e.Dir != types.MD_Up {
			t.Errorf("Expected floor 1 going Up, got floor %d going %v", e.Floor, e.Dir)
		}
	})

	t.Run("top floor moving up", func(t *testing.T) {
		e := New(0, 4, FloorRange(10, 1, 10))
		e.Passengers = []int{0}
		e.Floor = 10
		e.Dir = types.MD_Up
		e.TargetFloor = 9
		step(t, e, 1, pop, testParams)
		if e.Floor != 10 || e.Dir != types.MD_Down {
			t.Errorf("Expected floor 10 going Down, got floor %d going %v", e.Floor, e.Dir)
		}
	})
}

func TestIdleCarGoesToOldestRequest(t *testing.T) {
	pop := newPopulation(t,
		passenger.New(0, 4, 8, 0, 1),
		passenger.New(1, 2, 9, 0, 1),
	)
	e := New(0, 4, FloorRange(10, 1, 10))
	e.Floor = 6
	e.AddRequest(pop.Get(0))
	e.AddRequest(pop.Get(1))
	e.Dir = types.MD_Idle

	step(t, e, 1, pop, testParams)
	if e.TargetFloor != 4 || e.Dir != types.MD_Down || e.Floor != 5 {
		t.Errorf("Expected car at 5 heading Down to 4, got floor %d target %d dir %v", e.Floor, e.TargetFloor, e.Dir)
	}
	if e.IdleTime != 1 || e.RunTime != 0 {
		t.Errorf("Expected the tick to be counted as idle, got idle %d run %d", e.IdleTime, e.RunTime)
	}

	res := step(t, e, 2, pop, testParams)
	if len(res.Boarded) != 1 || res.Boarded[0] != 0 {
		t.Fatalf("Expected passenger 0 to board, got %v", res.Boarded)
	}
	if len(res.Released) != 1 || res.Released[0] != (types.Trip{From: 4, To: 8}) {
		t.Errorf("Expected trip 4-8 released, got %v", res.Released)
	}
	if len(e.Require) != 1 || e.Require[0] != 1 {
		t.Errorf("Expected passenger 1 still pending, got %v", e.Require)
	}
	if e.Busy.Remaining != testParams.DwellTicks-1 {
		t.Errorf("Expected dwell of %d, got %d", testParams.DwellTicks-1, e.Busy.Remaining)
	}

	// Dwell: the car does not move on the next tick.
	step(t, e, 3, pop, testParams)
	if e.Floor != 4 {
		t.Errorf("Expected car to dwell at 4, got %d", e.Floor)
	}
	if e.RunTime != 2 {
		t.Errorf("Expected busy ticks to count as running, got %d", e.RunTime)
	}
}

func TestBoardingRespectsCapacity(t *testing.T) {
	pop := newPopulation(t,
		passenger.New(0, 3, 8, 0, 1),
		passenger.New(1, 3, 9, 0, 1),
		passenger.New(2, 3, 7, 0, 1),
	)
	e := New(0, 2, FloorRange(10, 1, 10))
	e.Floor = 2
	for _, p := range pop.Passengers {
		e.AddRequest(p)
	}

	res := step(t, e, 1, pop, testParams)
	if e.Floor != 3 {
		t.Fatalf("Expected car at 3, got %d", e.Floor)
	}
	if len(res.Boarded) != 2 || len(e.Passengers) != 2 {
		t.Fatalf("Expected two boardings, got %v aboard %v", res.Boarded, e.Passengers)
	}
	if len(e.Require) != 1 || e.Require[0] != 2 {
		t.Errorf("Expected passenger 2 left pending, got %v", e.Require)
	}
	if pop.Get(2).Status != types.PS_Waiting {
		t.Errorf("Expected passenger 2 still waiting, got %v", pop.Get(2).Status)
	}
	if e.Busy.Remaining != 2*(testParams.DwellTicks-1) {
		t.Errorf("Expected dwell for two boardings, got %d", e.Busy.Remaining)
	}
}

func TestAlightReroutesPassenger(t *testing.T) {
	p := passenger.New(0, 1, 3, 0, 2)
	pop := newPopulation(t, p)
	e := New(0, 4, FloorRange(10, 1, 10))
	if !e.BoardNow(1, p) {
		t.Fatal("Expected room aboard")
	}
	if e.Dir != types.MD_Up || e.TargetFloor != 3 {
		t.Fatalf("Expected idle car to head Up to 3, got %v to %d", e.Dir, e.TargetFloor)
	}

	step(t, e, 2, pop, testParams)
	res := step(t, e, 3, pop, testParams)
	if len(res.Alighted) != 1 {
		t.Fatalf("Expected passenger to alight at 3, got %v (floor %d)", res.Alighted, e.Floor)
	}
	if len(e.Passengers) != 0 {
		t.Errorf("Expected empty car, got %v", e.Passengers)
	}
	if p.Status != types.PS_Arrived || p.RidesLeft != 1 || p.CurrentFloor != 3 || p.TargetFloor == 3 {
		t.Errorf("Unexpected passenger after alighting: %+v", p)
	}
	if p.Rest.Remaining != 5 {
		t.Errorf("Expected rest of 5, got %d", p.Rest.Remaining)
	}

	// After the dwell tick the empty car goes idle.
	step(t, e, 4, pop, testParams)
	step(t, e, 5, pop, testParams)
	if e.Dir != types.MD_Idle || e.Floor != 3 {
		t.Errorf("Expected idle car at 3, got %v at %d", e.Dir, e.Floor)
	}
}

func TestBoardNowWhenFull(t *testing.T) {
	pop := newPopulation(t, passenger.New(0, 1, 3, 0, 1), passenger.New(1, 1, 4, 0, 1))
	e := New(0, 1, FloorRange(10, 1, 10))
	if !e.BoardNow(1, pop.Get(0)) {
		t.Fatal("Expected first boarding to succeed")
	}
	if e.BoardNow(1, pop.Get(1)) {
		t.Error("Expected full car to refuse")
	}
	if pop.Get(1).Status != types.PS_Waiting {
		t.Errorf("Refused passenger must keep waiting, got %v", pop.Get(1).Status)
	}
}

func TestStepRejectsZoneViolation(t *testing.T) {
	pop := newPopulation(t, passenger.New(0, 2, 30, 0, 1))
	e := New(0, 4, FloorRange(40, 1, 20))
	e.Require = []int{0}

	_, err := e.Step(1, pop, rand.New(rand.NewPCG(1, 1)), testParams)
	if !errors.Is(err, ErrZoneViolation) {
		t.Errorf("Expected ErrZoneViolation, got %v", err)
	}

	e.Require = []int{5}
	_, err = e.Step(2, pop, rand.New(rand.NewPCG(1, 1)), testParams)
	if !errors.Is(err, ErrUnknownPassenger) {
		t.Errorf("Expected ErrUnknownPassenger, got %v", err)
	}
}

func TestBusyCarOnlyCountsDown(t *testing.T) {
	pop := newPopulation(t, passenger.New(0, 1, 6, 0, 1))
	pop.Get(0).Status = types.PS_InElevator
	e := New(0, 4, FloorRange(10, 1, 10))
	e.Floor = 3
	e.TargetFloor = 6
	e.Dir = types.MD_Up
	e.Passengers = []int{0}
	e.Busy.Set(2)

	for now := 1; now <= 2; now++ {
		step(t, e, now, pop, testParams)
		if e.Floor != 3 {
			t.Fatalf("tick %d: busy car moved to floor %d", now, e.Floor)
		}
	}
	if e.Busy.Busy() || e.RunTime != 2 {
		t.Errorf("Expected countdown finished after 2 running ticks, got %d remaining, RunTime %d", e.Busy.Remaining, e.RunTime)
	}
	step(t, e, 3, pop, testParams)
	if e.Floor != 4 {
		t.Errorf("Expected car to move once free, got floor %d", e.Floor)
	}
}
