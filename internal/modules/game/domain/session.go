package domain

import (
	"fmt"
	"time"

	apperrors "pickpack/internal/platform/errors"
)

const (
	GridSize     = 16
	GridColumns  = 4
	RoundSeconds = 60
	MatchPoints  = 10
	MissPenalty  = 5
	MinQuantity  = 1
	MaxQuantity  = 3
	TargetScore  = 500
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

type Cell struct {
	ID   int
	Item Item
	Tag  VisualTag
}

func NewCell(id int, item Item) Cell {
	return Cell{ID: id, Item: item, Tag: item.Tag()}
}

type Order struct {
	Item      Item
	Quantity  int
	Collected int
}

func (o Order) Remaining() int { return o.Quantity - o.Collected }

func (o Order) Complete() bool { return o.Collected >= o.Quantity }

// Session is one run of the game. The zero value is an idle session that
// has never been started.
type Session struct {
	ID            string
	Phase         Phase
	Score         int
	TimeRemaining int
	Grid          []Cell
	Order         Order
	HasOrder      bool
	StartedAt     time.Time
	EndedAt       time.Time

	OrdersCompleted int
	Picks           int
	Misses          int
}

// NewSession returns an active session with a full clock and zero score.
func NewSession(id string, grid []Cell, order Order, now time.Time) Session {
	return Session{
		ID:            id,
		Phase:         PhaseActive,
		TimeRemaining: RoundSeconds,
		Grid:          grid,
		Order:         order,
		HasOrder:      true,
		StartedAt:     now,
	}
}

func (s Session) Active() bool { return s.Phase == PhaseActive }

type PickResult struct {
	Applied        bool
	Matched        bool
	ScoreDelta     int
	OrderCompleted bool
	Completed      Order
}

// Pick applies a selection of the cell with the given id. Picks outside an
// active session or without an order are ignored. When the pick completes
// the order, next supplies its replacement before Pick returns, so callers
// never observe a completed order.
func (s *Session) Pick(cellID int, next func() Order) (PickResult, error) {
	if !s.Active() || !s.HasOrder {
		return PickResult{}, nil
	}
	if cellID < 0 || cellID >= len(s.Grid) {
		return PickResult{}, fmt.Errorf("cell %d: %w", cellID, apperrors.ErrNotFound)
	}

	cell := s.Grid[cellID]
	if cell.Item != s.Order.Item {
		before := s.Score
		s.Score -= MissPenalty
		if s.Score < 0 {
			s.Score = 0
		}
		s.Misses++
		return PickResult{Applied: true, ScoreDelta: s.Score - before}, nil
	}

	s.Score += MatchPoints
	s.Picks++
	s.Order.Collected++
	res := PickResult{Applied: true, Matched: true, ScoreDelta: MatchPoints}
	if s.Order.Complete() {
		res.OrderCompleted = true
		res.Completed = s.Order
		s.OrdersCompleted++
		s.Order = next()
	}
	return res, nil
}

type TickResult struct {
	Applied bool
	Ended   bool
}

// Tick consumes one second of the round. The session ends on the tick that
// brings TimeRemaining to zero; ticks after that are ignored.
func (s *Session) Tick(now time.Time) TickResult {
	if !s.Active() || s.TimeRemaining <= 0 {
		return TickResult{}
	}
	s.TimeRemaining--
	if s.TimeRemaining > 0 {
		return TickResult{Applied: true}
	}
	s.Phase = PhaseEnded
	s.EndedAt = now
	return TickResult{Applied: true, Ended: true}
}

// Abandon ends an active round early, as a restart does. It reports whether
// there was a round to abandon.
func (s *Session) Abandon(now time.Time) bool {
	if !s.Active() {
		return false
	}
	s.Phase = PhaseEnded
	s.EndedAt = now
	return true
}

type Outcome struct {
	Show       bool
	FinalScore int
	Beat       bool
}

// Outcome describes the end-of-game summary. An ended session with a zero
// score shows nothing, the same as a session that was never played.
func (s Session) Outcome() Outcome {
	if s.Phase != PhaseEnded || s.Score <= 0 {
		return Outcome{}
	}
	return Outcome{Show: true, FinalScore: s.Score, Beat: s.Score >= TargetScore}
}
