package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"zonevator/src/elev"
	"zonevator/src/passenger"
)

// Defaults reproduce the original deployment: a 40 floor tower with ten cars
// in five zone pairs and a hundred commuters.
const (
	NumFloors     = 40
	NumElevators  = 10
	Capacity      = 15
	NumPassengers = 100
	TravelTicks   = 1
	DwellTicks    = 2
	PeakFraction  = 0.15
	MaxRides      = 10
	RestMin       = 10
	RestMax       = 120
	ArrivalWindow = 60
	Zoning        = "paired"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Floors        int     `yaml:"floors" env:"FLOORS"`
	Elevators     int     `yaml:"elevators" env:"ELEVATORS"`
	Capacity      int     `yaml:"capacity" env:"CAPACITY"`
	Passengers    int     `yaml:"passengers" env:"PASSENGERS"`
	TravelTicks   int     `yaml:"travel_ticks" env:"TRAVEL_TICKS"`
	DwellTicks    int     `yaml:"dwell_ticks" env:"DWELL_TICKS"`
	PeakFraction  float64 `yaml:"peak_fraction" env:"PEAK_FRACTION"`
	MaxRides      int     `yaml:"max_rides" env:"MAX_RIDES"`
	RestMin       int     `yaml:"rest_min" env:"REST_MIN"`
	RestMax       int     `yaml:"rest_max" env:"REST_MAX"`
	ArrivalWindow int     `yaml:"arrival_window" env:"ARRIVAL_WINDOW"`
	Zoning        string  `yaml:"zoning" env:"ZONING"`
	Seed          uint64  `yaml:"seed" env:"SEED"`
	Parallel      bool    `yaml:"parallel" env:"PARALLEL"`
	Paranoid      bool    `yaml:"paranoid" env:"PARANOID"`   // check invariants after every tick
	MaxTicks      int     `yaml:"max_ticks" env:"MAX_TICKS"` // 0 runs until every ride is done
}

func Default() Config {
	return Config{
		Floors:        NumFloors,
		Elevators:     NumElevators,
		Capacity:      Capacity,
		Passengers:    NumPassengers,
		TravelTicks:   TravelTicks,
		DwellTicks:    DwellTicks,
		PeakFraction:  PeakFraction,
		MaxRides:      MaxRides,
		RestMin:       RestMin,
		RestMax:       RestMax,
		ArrivalWindow: ArrivalWindow,
		Zoning:        Zoning,
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file
// keep their default value.
func Load(path string) (Config, error) {
	c := Default()
	file, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}
	return c, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}
	check(c.Floors >= 2, "floors must be at least 2, got %d", c.Floors)
	check(c.Elevators >= 1, "elevators must be at least 1, got %d", c.Elevators)
	check(c.Capacity >= 1, "capacity must be at least 1, got %d", c.Capacity)
	check(c.Passengers >= 0, "passengers must not be negative, got %d", c.Passengers)
	check(c.TravelTicks >= 1, "travel_ticks must be at least 1, got %d", c.TravelTicks)
	check(c.DwellTicks >= 1, "dwell_ticks must be at least 1, got %d", c.DwellTicks)
	check(c.PeakFraction >= 0 && c.PeakFraction <= 1, "peak_fraction must be within [0, 1], got %g", c.PeakFraction)
	check(c.MaxRides >= 1, "max_rides must be at least 1, got %d", c.MaxRides)
	check(c.RestMin >= 0 && c.RestMin <= c.RestMax, "rest range %d..%d is empty", c.RestMin, c.RestMax)
	check(c.ArrivalWindow >= 1, "arrival_window must be at least 1, got %d", c.ArrivalWindow)
	check(c.MaxTicks >= 0, "max_ticks must not be negative, got %d", c.MaxTicks)
	if _, err := elev.LookupZonePlan(c.Zoning); err != nil {
		problems = append(problems, err)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(problems...))
	}
	return nil
}

// ElevParams are the per-step constants handed to every car.
func (c Config) ElevParams() elev.Params {
	return elev.Params{
		NumFloors:   c.Floors,
		TravelTicks: c.TravelTicks,
		DwellTicks:  c.DwellTicks,
		Itinerary: passenger.Itinerary{
			NumFloors: c.Floors,
			RestMin:   c.RestMin,
			RestMax:   c.RestMax,
		},
	}
}
