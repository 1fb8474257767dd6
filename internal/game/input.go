package game

// BaseMoveInput is everything the base decision sees.
type BaseMoveInput struct {
	Context   GameContext `json:"context"`
	Faction   Faction     `json:"faction"`
	BuildSlot *BuildSlot  `json:"buildSlotState,omitempty"`
}

// Building reports whether a unit is under construction.
func (in BaseMoveInput) Building() bool {
	return in.BuildSlot != nil
}

// UnitMoveInput is everything a unit decision sees.
type UnitMoveInput struct {
	Context               GameContext `json:"context"`
	Faction               Faction     `json:"faction"`
	Unit                  Unit        `json:"unit"`
	UnitLocation          Location    `json:"unitLocation"`
	NeighbouringLocations []Location  `json:"neighbouringLocations" validate:"dive"`
}

// POIsHint announces notable locations for a game.
type POIsHint struct {
	GameID    string     `json:"gameId" validate:"required"`
	Locations []Location `json:"locations" validate:"dive"`
}

// BonusCode is a one-shot code the base can redeem.
type BonusCode struct {
	Type       string `json:"type" validate:"required"`
	Code       string `json:"code" validate:"required"`
	ValidUntil string `json:"validUntil"`
}
