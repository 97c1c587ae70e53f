package report

import (
	"fmt"
	"io"
	"strings"
)

// Console prints the run in plain text. With Verbose unset only the summary
// is written.
type Console struct {
	Out     io.Writer
	Verbose bool
}

func (c *Console) Tick(s Snapshot) error {
	if !c.Verbose {
		return nil
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Time: %d\n", s.Tick)
	if s.Peak {
		fmt.Fprintf(&sb, "Peak period! %d pending requests\n", s.Pending)
	}
	for _, e := range s.Elevators {
		fmt.Fprintf(&sb, "Elevator %d: Floor %d, %v, Passengers: %s\n", e.ID, e.Floor, e.Dir, formatViews(e.Riders))
		fmt.Fprintf(&sb, "Require: %s\n", formatViews(e.Queue))
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(c.Out, sb.String())
	return err
}

func (c *Console) Final(s Summary) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Simulation finished after %d ticks\n", s.Ticks)
	for _, e := range s.Elevators {
		fmt.Fprintf(&sb, "E%d idle for %d ticks, running for %d ticks\n", e.ID, e.IdleTime, e.RunTime)
	}
	for _, p := range s.Passengers {
		fmt.Fprintf(&sb, "Passenger %d waited %d ticks in total\n", p.ID, p.TotalWait)
	}
	fmt.Fprintf(&sb, "Mean wait: %.2f ticks\n", s.MeanWait())
	_, err := io.WriteString(c.Out, sb.String())
	return err
}

func formatViews(views []PassengerView) string {
	parts := make([]string, len(views))
	for i, v := range views {
		parts[i] = fmt.Sprintf("P%d:%d-%d", v.ID, v.From, v.To)
	}
	return strings.Join(parts, " ")
}
