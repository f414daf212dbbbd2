package clock_test

import (
	"testing"
	"time"

	"pickpack/internal/platform/clock"
)

func TestSystemClockIsUTC(t *testing.T) {
	t.Parallel()
	if loc := (clock.SystemClock{}).Now().Location(); loc != time.UTC {
		t.Fatalf("expected UTC, got %v", loc)
	}
}

func TestFixedClockDoesNotMove(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c := clock.Fixed(at)
	if !c.Now().Equal(at) || !c.Now().Equal(c.Now()) {
		t.Fatalf("fixed clock moved: %v", c.Now())
	}
}
