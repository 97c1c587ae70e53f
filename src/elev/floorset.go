package elev

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// FloorSet is a fixed set of floors 1..NumFloors. Bit i stands for floor i.
type FloorSet struct {
	NumFloors int
	bits      *bitset.BitSet
}

func NewFloorSet(numFloors int, floors ...int) FloorSet {
	fs := FloorSet{
		NumFloors: numFloors,
		bits:      bitset.New(uint(max(numFloors, 0) + 1)),
	}
	for _, floor := range floors {
		fs.Add(floor)
	}
	return fs
}

// FloorRange is the set of floors lo..hi, clipped to the building.
func FloorRange(numFloors, lo, hi int) FloorSet {
	fs := NewFloorSet(numFloors)
	for floor := max(lo, 1); floor <= min(hi, numFloors); floor++ {
		fs.Add(floor)
	}
	return fs
}

// Add sets floor. Floors outside the building are ignored.
func (fs FloorSet) Add(floor int) {
	if floor < 1 || floor > fs.NumFloors {
		return
	}
	fs.bits.Set(uint(floor))
}

func (fs FloorSet) Contains(floor int) bool {
	if fs.bits == nil || floor < 1 || floor > fs.NumFloors {
		return false
	}
	return fs.bits.Test(uint(floor))
}

func (fs FloorSet) Len() int {
	if fs.bits == nil {
		return 0
	}
	return int(fs.bits.Count())
}

// Floors lists the members in ascending order.
func (fs FloorSet) Floors() []int {
	floors := make([]int, 0, fs.Len())
	if fs.bits == nil {
		return floors
	}
	for i, ok := fs.bits.NextSet(1); ok; i, ok = fs.bits.NextSet(i + 1) {
		floors = append(floors, int(i))
	}
	return floors
}

// String prints runs of consecutive floors, e.g. "1,25-40".
func (fs FloorSet) String() string {
	var sb strings.Builder
	floors := fs.Floors()
	for i := 0; i < len(floors); {
		j := i
		for j+1 < len(floors) && floors[j+1] == floors[j]+1 {
			j++
		}
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		if j > i {
			fmt.Fprintf(&sb, "%d-%d", floors[i], floors[j])
		} else {
			fmt.Fprintf(&sb, "%d", floors[i])
		}
		i = j + 1
	}
	return sb.String()
}
