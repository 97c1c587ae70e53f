package timer

import "testing"

func TestCountdown(t *testing.T) {
	var c Countdown
	if c.Busy() || c.Tick() {
		t.Fatalf("zero countdown should not be busy")
	}

	c.Set(2)
	c.Add(1)
	if c.Remaining != 3 {
		t.Fatalf("Expected 3 remaining ticks, got %d", c.Remaining)
	}
	for i := 0; i < 3; i++ {
		if !c.Tick() {
			t.Errorf("tick %d: expected countdown to be running", i)
		}
	}
	if c.Busy() || c.Tick() {
		t.Errorf("Expected countdown to be finished, remaining %d", c.Remaining)
	}

	c.Set(-4)
	if c.Remaining != 0 {
		t.Errorf("Expected negative set to clamp to 0, got %d", c.Remaining)
	}
	c.Add(-1)
	if c.Remaining != 0 {
		t.Errorf("Expected negative add to clamp to 0, got %d", c.Remaining)
	}
}
