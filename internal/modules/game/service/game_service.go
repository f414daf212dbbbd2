package service

import (
	"time"

	"pickpack/internal/modules/game/domain"
	gameout "pickpack/internal/modules/game/port/out"
	"pickpack/internal/platform/clock"
	"pickpack/internal/platform/id"
)

type GameService struct {
	clock clock.Clock
	idGen id.Generator
	rng   gameout.RandomSource
}

func NewGameService(clock clock.Clock, idGen id.Generator, rng gameout.RandomSource) *GameService {
	return &GameService{clock: clock, idGen: idGen, rng: rng}
}

// NewGrid draws every cell independently from the catalog; duplicates are
// expected.
func (s *GameService) NewGrid() []domain.Cell {
	grid := make([]domain.Cell, domain.GridSize)
	for i := range grid {
		grid[i] = domain.NewCell(i, s.randomItem())
	}
	return grid
}

func (s *GameService) NewOrder() domain.Order {
	span := domain.MaxQuantity - domain.MinQuantity + 1
	return domain.Order{
		Item:     s.randomItem(),
		Quantity: domain.MinQuantity + s.rng.IntN(span),
	}
}

// Start builds a fresh active session. The grid is drawn before the order
// so a seeded source replays the same game.
func (s *GameService) Start() domain.Session {
	grid := s.NewGrid()
	order := s.NewOrder()
	return domain.NewSession(s.idGen.New(), grid, order, s.clock.Now())
}

func (s *GameService) Now() time.Time {
	return s.clock.Now()
}

func (s *GameService) randomItem() domain.Item {
	return domain.Catalog[s.rng.IntN(len(domain.Catalog))]
}
