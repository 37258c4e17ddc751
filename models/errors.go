package models

import "errors"

// Configuration errors. These fire at construction time, before any
// computation runs; the engine itself never produces them.
var (
	ErrNegativeScoreWeight = errors.New("score weight must not be negative")

	ErrConditionStatRequired     = errors.New("condition requires a stat name")
	ErrConditionOperatorInvalid  = errors.New("condition operator is invalid")
	ErrConditionResultInvalid    = errors.New("result condition value must be one of win, draw, loss, bye")
	ErrConditionMarginOperator   = errors.New("margin difference condition requires one of >, >=, <, <=")
	ErrConditionThresholdInvalid = errors.New("stat threshold condition requires a stat, operator and value")

	ErrTiebreakerKeyRequired  = errors.New("tiebreaker key is required")
	ErrTiebreakerTypeInvalid  = errors.New("invalid tiebreaker type")
	ErrTiebreakerStatRequired = errors.New("stat-based tiebreaker requires a stat name")

	ErrPairingMethodInvalid    = errors.New("invalid pairing method")
	ErrPairingSortByInvalid    = errors.New("invalid pairing sort criterion")
	ErrPairingStatKeyRequired  = errors.New("pairing sort by stat requires a stat key")
	ErrPairingByePolicyInvalid = errors.New("invalid bye assignment policy")
	ErrPairingMaxByesInvalid   = errors.New("max byes per player must be positive")
)
