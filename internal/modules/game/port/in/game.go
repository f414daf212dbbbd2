package in

import (
	"context"

	"pickpack/internal/modules/game/dto"
)

type Usecase interface {
	Start(ctx context.Context) (dto.SnapshotOutput, error)
	Pick(ctx context.Context, cellID int) (dto.PickOutput, error)
	Tick(ctx context.Context) (dto.TickOutput, error)
	Snapshot(ctx context.Context) (dto.SnapshotOutput, error)
	Rules(ctx context.Context) (dto.RulesOutput, error)
}
