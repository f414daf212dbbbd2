package domain_test

import (
	"errors"
	"testing"
	"time"

	"pickpack/internal/modules/game/domain"
	apperrors "pickpack/internal/platform/errors"
)

var start = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// uniformGrid alternates Electronics and Clothing so even ids match an
// Electronics order and odd ids miss it.
func uniformGrid() []domain.Cell {
	grid := make([]domain.Cell, domain.GridSize)
	for i := range grid {
		item := domain.Electronics
		if i%2 == 1 {
			item = domain.Clothing
		}
		grid[i] = domain.NewCell(i, item)
	}
	return grid
}

func fixedOrders(orders ...domain.Order) func() domain.Order {
	i := 0
	return func() domain.Order {
		o := orders[i%len(orders)]
		i++
		return o
	}
}

func TestCatalogTagsAreOneToOne(t *testing.T) {
	t.Parallel()
	seen := map[domain.VisualTag]domain.Item{}
	for _, item := range domain.Catalog {
		if !item.Valid() {
			t.Fatalf("%s should be valid", item)
		}
		tag := item.Tag()
		if tag == "" {
			t.Fatalf("%s has no tag", item)
		}
		if other, dup := seen[tag]; dup {
			t.Fatalf("tag %s shared by %s and %s", tag, other, item)
		}
		seen[tag] = item
	}
	if domain.Item("Furniture").Valid() || domain.Item("Furniture").Tag() != "" {
		t.Fatalf("unknown items must not be valid or tagged")
	}
}

func TestNewSessionStartsActiveWithFullClock(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("s-1", uniformGrid(), domain.Order{Item: domain.Food, Quantity: 2}, start)
	if s.Phase != domain.PhaseActive || s.Score != 0 || s.TimeRemaining != domain.RoundSeconds {
		t.Fatalf("unexpected new session: %+v", s)
	}
	if !s.HasOrder || s.Order.Collected != 0 {
		t.Fatalf("new session must carry a fresh order: %+v", s.Order)
	}
}

func TestPickFirstMatchScoresTen(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("s-1", uniformGrid(), domain.Order{Item: domain.Electronics, Quantity: 3}, start)
	res, err := s.Pick(0, fixedOrders(domain.Order{Item: domain.Toys, Quantity: 1}))
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if !res.Applied || !res.Matched || res.OrderCompleted {
		t.Fatalf("unexpected result: %+v", res)
	}
	if s.Score != 10 || s.Order.Collected != 1 {
		t.Fatalf("expected score 10 and collected 1, got %d and %d", s.Score, s.Order.Collected)
	}
}

func TestPickCompletingOrderReplacesItImmediately(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("s-1", uniformGrid(), domain.Order{Item: domain.Electronics, Quantity: 1}, start)
	next := domain.Order{Item: domain.Electronics, Quantity: 2}
	res, err := s.Pick(2, fixedOrders(next))
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if !res.OrderCompleted || res.Completed.Collected != 1 {
		t.Fatalf("expected completed order in result: %+v", res)
	}
	if s.Score != 10 || s.Order != next || s.OrdersCompleted != 1 {
		t.Fatalf("expected fresh order %+v after completion, got %+v (score %d)", next, s.Order, s.Score)
	}
}

func TestPickMissClampsAtZero(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("s-1", uniformGrid(), domain.Order{Item: domain.Electronics, Quantity: 2}, start)
	res, err := s.Pick(1, fixedOrders(domain.Order{}))
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if !res.Applied || res.Matched || res.ScoreDelta != 0 {
		t.Fatalf("unexpected miss result at zero: %+v", res)
	}
	if s.Score != 0 || s.Misses != 1 {
		t.Fatalf("expected clamped score 0, got %d", s.Score)
	}

	if _, err := s.Pick(0, fixedOrders(domain.Order{})); err != nil {
		t.Fatalf("pick: %v", err)
	}
	res, _ = s.Pick(3, fixedOrders(domain.Order{}))
	if s.Score != 5 || res.ScoreDelta != -5 {
		t.Fatalf("expected 10-5=5 with delta -5, got %d (%d)", s.Score, res.ScoreDelta)
	}
}

func TestPickScoreNeverNegativeAndCollectedBounded(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("s-1", uniformGrid(), domain.Order{Item: domain.Electronics, Quantity: 3}, start)
	next := fixedOrders(
		domain.Order{Item: domain.Clothing, Quantity: 2},
		domain.Order{Item: domain.Electronics, Quantity: 1},
		domain.Order{Item: domain.Electronics, Quantity: 3},
	)
	for i := 0; i < 200; i++ {
		cell := (i*7 + i/3) % domain.GridSize
		if _, err := s.Pick(cell, next); err != nil {
			t.Fatalf("pick %d: %v", i, err)
		}
		if s.Score < 0 {
			t.Fatalf("score went negative after pick %d: %d", i, s.Score)
		}
		if s.Order.Collected > s.Order.Quantity || s.Order.Complete() {
			t.Fatalf("observed completed or overfilled order after pick %d: %+v", i, s.Order)
		}
	}
}

func TestPickIgnoredWhenInactiveOrOrderless(t *testing.T) {
	t.Parallel()
	var idle domain.Session
	res, err := idle.Pick(0, fixedOrders(domain.Order{}))
	if err != nil || res.Applied {
		t.Fatalf("idle pick must be a silent no-op: %+v %v", res, err)
	}

	s := domain.NewSession("s-1", uniformGrid(), domain.Order{Item: domain.Electronics, Quantity: 1}, start)
	s.HasOrder = false
	if res, _ := s.Pick(0, fixedOrders(domain.Order{})); res.Applied || s.Score != 0 {
		t.Fatalf("orderless pick must be ignored: %+v", res)
	}

	ended := domain.NewSession("s-2", uniformGrid(), domain.Order{Item: domain.Electronics, Quantity: 1}, start)
	ended.Phase = domain.PhaseEnded
	ended.Score = 40
	if res, _ := ended.Pick(0, fixedOrders(domain.Order{})); res.Applied || ended.Score != 40 {
		t.Fatalf("ended pick must be ignored: %+v", res)
	}
}

func TestPickUnknownCellIsNotFound(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("s-1", uniformGrid(), domain.Order{Item: domain.Electronics, Quantity: 1}, start)
	for _, id := range []int{-1, domain.GridSize} {
		if _, err := s.Pick(id, fixedOrders(domain.Order{})); !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("cell %d: expected not found, got %v", id, err)
		}
	}
}

func TestTickCountsDownAndEndsExactlyAtZero(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("s-1", uniformGrid(), domain.Order{Item: domain.Books, Quantity: 1}, start)
	for i := 1; i < domain.RoundSeconds; i++ {
		res := s.Tick(start.Add(time.Duration(i) * time.Second))
		if !res.Applied || res.Ended {
			t.Fatalf("tick %d: unexpected %+v", i, res)
		}
		if s.TimeRemaining != domain.RoundSeconds-i {
			t.Fatalf("tick %d: expected %d remaining, got %d", i, domain.RoundSeconds-i, s.TimeRemaining)
		}
	}
	end := start.Add(time.Minute)
	res := s.Tick(end)
	if !res.Applied || !res.Ended || s.Phase != domain.PhaseEnded || s.TimeRemaining != 0 {
		t.Fatalf("final tick should end the session: %+v %+v", res, s)
	}
	if !s.EndedAt.Equal(end) {
		t.Fatalf("ended at %v, want %v", s.EndedAt, end)
	}
	if res := s.Tick(end.Add(time.Second)); res.Applied || s.TimeRemaining != 0 {
		t.Fatalf("ticks after the end must be ignored: %+v remaining=%d", res, s.TimeRemaining)
	}
}

func TestAbandonEndsOnlyActiveRounds(t *testing.T) {
	t.Parallel()
	var idle domain.Session
	if idle.Abandon(start) || idle.Phase != domain.PhaseIdle {
		t.Fatalf("an idle session has nothing to abandon")
	}

	s := domain.NewSession("s-1", uniformGrid(), domain.Order{Item: domain.Electronics, Quantity: 3}, start)
	s.Tick(start.Add(time.Second))
	at := start.Add(2 * time.Second)
	if !s.Abandon(at) {
		t.Fatalf("an active session should be abandoned")
	}
	if s.Phase != domain.PhaseEnded || !s.EndedAt.Equal(at) || s.TimeRemaining != domain.RoundSeconds-1 {
		t.Fatalf("unexpected abandoned session: %+v", s)
	}
	if s.Abandon(at.Add(time.Second)) || !s.EndedAt.Equal(at) {
		t.Fatalf("a second abandon must not move the end time")
	}
}

func TestOutcome(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		phase domain.Phase
		score int
		want  domain.Outcome
	}{
		{name: "idle", phase: domain.PhaseIdle, score: 0, want: domain.Outcome{}},
		{name: "active", phase: domain.PhaseActive, score: 600, want: domain.Outcome{}},
		{name: "ended zero", phase: domain.PhaseEnded, score: 0, want: domain.Outcome{}},
		{name: "ended short", phase: domain.PhaseEnded, score: 495, want: domain.Outcome{Show: true, FinalScore: 495}},
		{name: "ended exact target", phase: domain.PhaseEnded, score: 500, want: domain.Outcome{Show: true, FinalScore: 500, Beat: true}},
		{name: "ended beat", phase: domain.PhaseEnded, score: 510, want: domain.Outcome{Show: true, FinalScore: 510, Beat: true}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := domain.Session{Phase: tc.phase, Score: tc.score}
			if got := s.Outcome(); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestPhaseString(t *testing.T) {
	t.Parallel()
	if domain.PhaseIdle.String() != "idle" || domain.PhaseActive.String() != "active" || domain.PhaseEnded.String() != "ended" {
		t.Fatalf("unexpected phase names")
	}
}
