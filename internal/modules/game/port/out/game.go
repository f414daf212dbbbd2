package out

import (
	"context"

	"pickpack/internal/modules/game/domain"
)

// RandomSource supplies uniform integers in [0, n). Implementations must
// accept any n > 0.
type RandomSource interface {
	IntN(n int) int
}

type EventSink interface {
	SessionStarted(ctx context.Context, session domain.Session)
	OrderCompleted(ctx context.Context, session domain.Session, completed domain.Order)
	SessionEnded(ctx context.Context, session domain.Session)
	// SessionAbandoned fires when a restart replaces a round that was still running.
	SessionAbandoned(ctx context.Context, session domain.Session)
}
