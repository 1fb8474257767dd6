package game

import "fmt"

// UnitType is the closed set of unit kinds a faction can field.
type UnitType uint8

const (
	UnitTypeUnknown UnitType = iota // never valid on the wire
	Pioneer                         // Claims and neutralizes territory
	Worker                          // Works resource tiles
	Soldier                         // Strongest in combat
	Cleric                          // Heals allies, converts enemies
)

var unitTypeNames = map[UnitType]string{
	Pioneer: "PIONEER",
	Worker:  "WORKER",
	Soldier: "SOLDIER",
	Cleric:  "CLERIC",
}

// UnitTypes returns every buildable unit type in declaration order.
func UnitTypes() []UnitType {
	return []UnitType{Pioneer, Worker, Soldier, Cleric}
}

func (t UnitType) String() string {
	if name, ok := unitTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UnitType(%d)", uint8(t))
}

func (t UnitType) MarshalText() ([]byte, error) {
	name, ok := unitTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown unit type %d", uint8(t))
	}
	return []byte(name), nil
}

func (t *UnitType) UnmarshalText(b []byte) error {
	v, err := parseEnum(unitTypeNames, string(b))
	if err != nil {
		return fmt.Errorf("unit type: %w", err)
	}
	*t = v
	return nil
}

// UnitMoveType enumerates the moves a unit can make.
type UnitMoveType uint8

const (
	MoveIdle UnitMoveType = iota
	MoveTravel
	MoveConquerNeutralTile
	MoveFortify
	MoveGenerateGold
	MoveAttack
	MoveHeal
	MoveConvert
	MoveNeutralizeEnemyTile
	MovePrepareDefense
)

var unitMoveTypeNames = map[UnitMoveType]string{
	MoveIdle:                "IDLE",
	MoveTravel:              "TRAVEL",
	MoveConquerNeutralTile:  "CONQUER_NEUTRAL_TILE",
	MoveFortify:             "FORTIFY",
	MoveGenerateGold:        "GENERATE_GOLD",
	MoveAttack:              "ATTACK",
	MoveHeal:                "HEAL",
	MoveConvert:             "CONVERT",
	MoveNeutralizeEnemyTile: "NEUTRALIZE_ENEMY_TILE",
	MovePrepareDefense:      "PREPARE_DEFENSE",
}

func (t UnitMoveType) String() string {
	if name, ok := unitMoveTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UnitMoveType(%d)", uint8(t))
}

func (t UnitMoveType) MarshalText() ([]byte, error) {
	name, ok := unitMoveTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown unit move type %d", uint8(t))
	}
	return []byte(name), nil
}

func (t *UnitMoveType) UnmarshalText(b []byte) error {
	v, err := parseEnum(unitMoveTypeNames, string(b))
	if err != nil {
		return fmt.Errorf("unit move type: %w", err)
	}
	*t = v
	return nil
}

// BaseMoveType enumerates the moves the faction base can make.
type BaseMoveType uint8

const (
	BaseStartBuildingUnit BaseMoveType = iota
	BaseContinueBuilding
	BaseReceiveIncome
	BaseRedeemBonusCode
)

var baseMoveTypeNames = map[BaseMoveType]string{
	BaseStartBuildingUnit: "START_BUILDING_UNIT",
	BaseContinueBuilding:  "CONTINUE_BUILDING",
	BaseReceiveIncome:     "RECEIVE_INCOME",
	BaseRedeemBonusCode:   "REDEEM_BONUS_CODE",
}

func (t BaseMoveType) String() string {
	if name, ok := baseMoveTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("BaseMoveType(%d)", uint8(t))
}

func (t BaseMoveType) MarshalText() ([]byte, error) {
	name, ok := baseMoveTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown base move type %d", uint8(t))
	}
	return []byte(name), nil
}

func (t *BaseMoveType) UnmarshalText(b []byte) error {
	v, err := parseEnum(baseMoveTypeNames, string(b))
	if err != nil {
		return fmt.Errorf("base move type: %w", err)
	}
	*t = v
	return nil
}

func parseEnum[T comparable](names map[T]string, s string) (T, error) {
	for v, name := range names {
		if name == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown value %q", s)
}
