package in

import (
	"context"

	gamedto "pickpack/internal/modules/game/dto"
	gamein "pickpack/internal/modules/game/port/in"
)

type CLIHandler struct {
	usecase gamein.Usecase
}

func NewCLIHandler(usecase gamein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Rules(ctx context.Context) (gamedto.RulesOutput, error) {
	return h.usecase.Rules(ctx)
}

func (h CLIHandler) Catalog(ctx context.Context) ([]gamedto.ItemOutput, error) {
	rules, err := h.usecase.Rules(ctx)
	if err != nil {
		return nil, err
	}
	return rules.Catalog, nil
}
