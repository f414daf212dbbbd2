package out

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	"pickpack/internal/modules/game/domain"
	gameout "pickpack/internal/modules/game/port/out"
)

type HCLogEventSink struct {
	logger hclog.Logger
}

func NewHCLogEventSink(logger hclog.Logger) gameout.EventSink {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &HCLogEventSink{logger: logger.Named("game")}
}

func (s *HCLogEventSink) SessionStarted(_ context.Context, session domain.Session) {
	s.logger.Info("session started",
		"session_id", session.ID,
		"order_item", session.Order.Item,
		"order_quantity", session.Order.Quantity,
	)
}

func (s *HCLogEventSink) OrderCompleted(_ context.Context, session domain.Session, completed domain.Order) {
	s.logger.Debug("order completed",
		"session_id", session.ID,
		"item", completed.Item,
		"quantity", completed.Quantity,
		"score", session.Score,
		"time_remaining", session.TimeRemaining,
	)
}

func (s *HCLogEventSink) SessionAbandoned(_ context.Context, session domain.Session) {
	s.logger.Info("session abandoned",
		"session_id", session.ID,
		"score", session.Score,
		"time_remaining", session.TimeRemaining,
		"orders_completed", session.OrdersCompleted,
		"duration", session.EndedAt.Sub(session.StartedAt),
	)
}

func (s *HCLogEventSink) SessionEnded(_ context.Context, session domain.Session) {
	outcome := session.Outcome()
	s.logger.Info("session ended",
		"session_id", session.ID,
		"score", session.Score,
		"beat_target", outcome.Beat,
		"orders_completed", session.OrdersCompleted,
		"picks", session.Picks,
		"misses", session.Misses,
		"duration", session.EndedAt.Sub(session.StartedAt),
	)
}
