package types

import "fmt"

type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
	MD_Idle MotorDirection = 0
)

func (d MotorDirection) String() string {
	switch d {
	case MD_Up:
		return "Up"
	case MD_Down:
		return "Down"
	case MD_Idle:
		return "Idle"
	}
	return fmt.Sprintf("MotorDirection(%d)", int(d))
}

type PassengerStatus int

const (
	PS_Waiting PassengerStatus = iota
	PS_InElevator
	PS_Arrived
)

func (s PassengerStatus) String() string {
	switch s {
	case PS_Waiting:
		return "Waiting"
	case PS_InElevator:
		return "InElevator"
	case PS_Arrived:
		return "Arrived"
	}
	return fmt.Sprintf("PassengerStatus(%d)", int(s))
}

// Trip is an origin/destination pair. Two pending requests with the same
// Trip are the same piece of work for the fleet.
type Trip struct {
	From int
	To   int
}

// Dir is the direction a passenger travels on this trip.
func (t Trip) Dir() MotorDirection {
	if t.To > t.From {
		return MD_Up
	}
	return MD_Down
}

func (t Trip) String() string {
	return fmt.Sprintf("%d-%d", t.From, t.To)
}
