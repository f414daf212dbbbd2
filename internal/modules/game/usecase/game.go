package usecase

import (
	"context"
	"sync"

	"pickpack/internal/modules/game/domain"
	gamedto "pickpack/internal/modules/game/dto"
	gamein "pickpack/internal/modules/game/port/in"
	gameout "pickpack/internal/modules/game/port/out"
	"pickpack/internal/modules/game/service"
)

// Interactor owns the single live session. Every state change goes through
// one of its methods.
type Interactor struct {
	svc    *service.GameService
	events gameout.EventSink

	mu      sync.Mutex
	session domain.Session
}

func NewInteractor(svc *service.GameService, events gameout.EventSink) gamein.Usecase {
	return &Interactor{svc: svc, events: events}
}

// Start replaces whatever session exists. A round still running is
// reported as abandoned first.
func (i *Interactor) Start(ctx context.Context) (gamedto.SnapshotOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.session.Abandon(i.svc.Now()) && i.events != nil {
		i.events.SessionAbandoned(ctx, i.session)
	}
	i.session = i.svc.Start()
	if i.events != nil {
		i.events.SessionStarted(ctx, i.session)
	}
	return snapshot(i.session), nil
}

func (i *Interactor) Pick(ctx context.Context, cellID int) (gamedto.PickOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	res, err := i.session.Pick(cellID, i.svc.NewOrder)
	if err != nil {
		return gamedto.PickOutput{}, err
	}
	if res.OrderCompleted && i.events != nil {
		i.events.OrderCompleted(ctx, i.session, res.Completed)
	}
	return gamedto.PickOutput{
		Applied:        res.Applied,
		Matched:        res.Matched,
		ScoreDelta:     res.ScoreDelta,
		OrderCompleted: res.OrderCompleted,
		Snapshot:       snapshot(i.session),
	}, nil
}

func (i *Interactor) Tick(ctx context.Context) (gamedto.TickOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	res := i.session.Tick(i.svc.Now())
	if res.Ended && i.events != nil {
		i.events.SessionEnded(ctx, i.session)
	}
	return gamedto.TickOutput{Applied: res.Applied, Ended: res.Ended, Snapshot: snapshot(i.session)}, nil
}

func (i *Interactor) Snapshot(_ context.Context) (gamedto.SnapshotOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return snapshot(i.session), nil
}

func (i *Interactor) Rules(_ context.Context) (gamedto.RulesOutput, error) {
	items := make([]gamedto.ItemOutput, 0, len(domain.Catalog))
	for _, item := range domain.Catalog {
		items = append(items, gamedto.ItemOutput{Name: string(item), Tag: string(item.Tag())})
	}
	return gamedto.RulesOutput{
		RoundSeconds: domain.RoundSeconds,
		GridSize:     domain.GridSize,
		GridColumns:  domain.GridColumns,
		MatchPoints:  domain.MatchPoints,
		MissPenalty:  domain.MissPenalty,
		MinQuantity:  domain.MinQuantity,
		MaxQuantity:  domain.MaxQuantity,
		TargetScore:  domain.TargetScore,
		Catalog:      items,
	}, nil
}

func snapshot(s domain.Session) gamedto.SnapshotOutput {
	grid := make([]gamedto.CellOutput, len(s.Grid))
	for idx, cell := range s.Grid {
		grid[idx] = gamedto.CellOutput{ID: cell.ID, Item: string(cell.Item), Tag: string(cell.Tag)}
	}
	out := gamedto.SnapshotOutput{
		SessionID:       s.ID,
		Phase:           s.Phase.String(),
		Active:          s.Active(),
		Score:           s.Score,
		TimeRemaining:   s.TimeRemaining,
		Grid:            grid,
		GridColumns:     domain.GridColumns,
		HasOrder:        s.HasOrder,
		OrdersCompleted: s.OrdersCompleted,
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
	}
	if s.Phase == domain.PhaseIdle {
		out.TimeRemaining = domain.RoundSeconds
	}
	if s.HasOrder {
		out.Order = gamedto.OrderOutput{
			Item:      string(s.Order.Item),
			Quantity:  s.Order.Quantity,
			Collected: s.Order.Collected,
			Remaining: s.Order.Remaining(),
		}
	}
	outcome := s.Outcome()
	out.Outcome = gamedto.OutcomeOutput{
		Show:        outcome.Show,
		FinalScore:  outcome.FinalScore,
		TargetScore: domain.TargetScore,
		Beat:        outcome.Beat,
	}
	return out
}
