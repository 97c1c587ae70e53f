package utils

import (
	"math/rand/v2"

	"zonevator/src/types"
)

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DirectionTo is the direction a car at from has to travel to reach to.
// It never returns MD_Idle: a car told to go to its own floor heads down.
func DirectionTo(from, to int) types.MotorDirection {
	if to > from {
		return types.MD_Up
	}
	return types.MD_Down
}

// RandomFloorExcept draws a floor in 1..numFloors different from except.
// numFloors must be at least 2.
func RandomFloorExcept(rng *rand.Rand, numFloors, except int) int {
	for {
		floor := rng.IntN(numFloors) + 1
		if floor != except {
			return floor
		}
	}
}
