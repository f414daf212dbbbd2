package in

import (
	"context"

	gamedto "pickpack/internal/modules/game/dto"
	gamein "pickpack/internal/modules/game/port/in"
)

type TUIHandler struct {
	usecase gamein.Usecase
}

func NewTUIHandler(usecase gamein.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Start(ctx context.Context) (gamedto.SnapshotOutput, error) {
	return h.usecase.Start(ctx)
}

func (h TUIHandler) Pick(ctx context.Context, cellID int) (gamedto.PickOutput, error) {
	return h.usecase.Pick(ctx, cellID)
}

func (h TUIHandler) Tick(ctx context.Context) (gamedto.TickOutput, error) {
	return h.usecase.Tick(ctx)
}

func (h TUIHandler) Snapshot(ctx context.Context) (gamedto.SnapshotOutput, error) {
	return h.usecase.Snapshot(ctx)
}
