package game

// BaseMove is the base's action for this turn.
type BaseMove struct {
	Type        BaseMoveType `json:"type"`
	UnitToBuild *UnitType    `json:"unitToBuild,omitempty"`
	BonusCode   string       `json:"bonusCode,omitempty"`
}

// UnitMove is a single unit's action for this turn.
type UnitMove struct {
	Type       UnitMoveType `json:"type"`
	Target     *Coordinate  `json:"target,omitempty"`
	TargetUnit *Unit        `json:"unit,omitempty"`
}

func BuildUnit(t UnitType) BaseMove {
	return BaseMove{Type: BaseStartBuildingUnit, UnitToBuild: &t}
}

func ContinueBuilding() BaseMove { return BaseMove{Type: BaseContinueBuilding} }

func ReceiveIncome() BaseMove { return BaseMove{Type: BaseReceiveIncome} }

func RedeemBonusCode(code string) BaseMove {
	return BaseMove{Type: BaseRedeemBonusCode, BonusCode: code}
}

func Idle() UnitMove { return UnitMove{Type: MoveIdle} }

func TravelTo(c Coordinate) UnitMove {
	return UnitMove{Type: MoveTravel, Target: &c}
}

func Conquer() UnitMove { return UnitMove{Type: MoveConquerNeutralTile} }

func Fortify() UnitMove { return UnitMove{Type: MoveFortify} }

func GenerateGold() UnitMove { return UnitMove{Type: MoveGenerateGold} }

func Neutralize() UnitMove { return UnitMove{Type: MoveNeutralizeEnemyTile} }

func PrepareDefense() UnitMove { return UnitMove{Type: MovePrepareDefense} }

func Attack(target Unit) UnitMove {
	return UnitMove{Type: MoveAttack, TargetUnit: &target}
}

func Heal(target Unit) UnitMove {
	return UnitMove{Type: MoveHeal, TargetUnit: &target}
}

func Convert(target Unit) UnitMove {
	return UnitMove{Type: MoveConvert, TargetUnit: &target}
}
