package dispatcher

import (
	"errors"

	"zonevator/src/types"
)

var ErrDuplicateRoute = errors.New("trip already routed to another elevator")

// holder is the car serving a trip and how many of its requests share it.
type holder struct {
	ElevatorID int
	Count      int
}

// RequestIndex maps every pending trip to the one car that will serve it.
// It replaces a scan of every other car's request list on each dispatch.
type RequestIndex struct {
	holders map[types.Trip]holder
}

func NewRequestIndex() *RequestIndex {
	return &RequestIndex{holders: make(map[types.Trip]holder)}
}
