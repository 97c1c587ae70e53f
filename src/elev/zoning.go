package elev

import (
	"fmt"
	"slices"
	"strings"
)

// ZonePlan gives the static set of floors an elevator may serve.
// Every set it returns contains the ground floor.
type ZonePlan func(id, numFloors int) FloorSet

var zonePlans = map[string]ZonePlan{
	"paired": PairedZones,
	"full":   FullZones,
}

func LookupZonePlan(name string) (ZonePlan, error) {
	plan, ok := zonePlans[name]
	if !ok {
		return nil, fmt.Errorf("unknown zoning plan %q (known: %s)", name, strings.Join(ZonePlanNames(), ", "))
	}
	return plan, nil
}

func ZonePlanNames() []string {
	names := make([]string, 0, len(zonePlans))
	for name := range zonePlans {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func FullZones(id, numFloors int) FloorSet {
	return FloorRange(numFloors, 1, numFloors)
}

// PairedZones groups cars two by two, cycling through five service classes:
//   - all floors
//   - lobby and the high zone
//   - the low zone
//   - lobby and even floors
//   - odd floors below the top floor
//
// The zones overlap at the split floor, which is 5/8 of the building.
func PairedZones(id, numFloors int) FloorSet {
	split := max(numFloors*5/8, 1)
	switch (id / 2) % 5 {
	case 0:
		return FloorRange(numFloors, 1, numFloors)
	case 1:
		fs := FloorRange(numFloors, split, numFloors)
		fs.Add(1)
		return fs
	case 2:
		return FloorRange(numFloors, 1, split)
	case 3:
		fs := NewFloorSet(numFloors, 1)
		for floor := 2; floor <= numFloors; floor += 2 {
			fs.Add(floor)
		}
		return fs
	default:
		fs := NewFloorSet(numFloors, 1)
		for floor := 3; floor < numFloors; floor += 2 {
			fs.Add(floor)
		}
		return fs
	}
}
