package dto

import "time"

type ItemOutput struct {
	Name string
	Tag  string
}

type CellOutput struct {
	ID   int
	Item string
	Tag  string
}

type OrderOutput struct {
	Item      string
	Quantity  int
	Collected int
	Remaining int
}

type OutcomeOutput struct {
	Show        bool
	FinalScore  int
	TargetScore int
	Beat        bool
}

type SnapshotOutput struct {
	SessionID       string
	Phase           string
	Active          bool
	Score           int
	TimeRemaining   int
	Grid            []CellOutput
	GridColumns     int
	Order           OrderOutput
	HasOrder        bool
	OrdersCompleted int
	StartedAt       time.Time
	EndedAt         time.Time
	Outcome         OutcomeOutput
}

type PickOutput struct {
	Applied        bool
	Matched        bool
	ScoreDelta     int
	OrderCompleted bool
	Snapshot       SnapshotOutput
}

type TickOutput struct {
	Applied  bool
	Ended    bool
	Snapshot SnapshotOutput
}

type RulesOutput struct {
	RoundSeconds int
	GridSize     int
	GridColumns  int
	MatchPoints  int
	MissPenalty  int
	MinQuantity  int
	MaxQuantity  int
	TargetScore  int
	Catalog      []ItemOutput
}
