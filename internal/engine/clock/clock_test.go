package clock

import (
	"testing"
	"time"
)

func TestSystemTick(t *testing.T) {
	base := time.Unix(1000, 0)
	current := base
	c := &System{now: func() time.Time { return current }}

	if dt := c.Tick(); dt != 0 {
		t.Errorf("first tick should be 0, got %f", dt)
	}

	current = base.Add(16 * time.Millisecond)
	if dt := c.Tick(); dt != 0.016 {
		t.Errorf("expected 0.016s, got %f", dt)
	}

	current = base.Add(1016 * time.Millisecond)
	if dt := c.Tick(); dt != 1.0 {
		t.Errorf("expected 1s, got %f", dt)
	}
}

func TestManualTick(t *testing.T) {
	c := &Manual{Step: 0.5}
	for range 4 {
		if dt := c.Tick(); dt != 0.5 {
			t.Fatalf("expected step 0.5, got %f", dt)
		}
	}
	if c.Elapsed != 2.0 {
		t.Errorf("expected 2s elapsed, got %f", c.Elapsed)
	}
}
