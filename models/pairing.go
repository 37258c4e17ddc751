package models

import "fmt"

type PairingMethod string

const (
	PairingSwiss PairingMethod = "swiss"
)

type PairingSortBy string

const (
	SortByPoints PairingSortBy = "points"
	SortByStat   PairingSortBy = "stat"
	SortByRandom PairingSortBy = "random"
)

type ByePolicy string

const (
	ByeLowestRanked ByePolicy = "lowest_ranked"
	ByeRandom       ByePolicy = "random"
)

// PairingConfig is a game profile's round-pairing settings.
type PairingConfig struct {
	Method           PairingMethod `json:"method"`
	SortBy           PairingSortBy `json:"sort_by"`
	StatKey          string        `json:"stat_key,omitempty"`
	AvoidRematch     bool          `json:"avoid_rematch"`
	MaxByesPerPlayer int           `json:"max_byes_per_player"`
	ByePolicy        ByePolicy     `json:"bye_policy"`
}

// DefaultPairingConfig is the classic Swiss combination: sort by points,
// avoid rematches, at most one bye each, bye to the lowest-ranked.
func DefaultPairingConfig() PairingConfig {
	return PairingConfig{
		Method:           PairingSwiss,
		SortBy:           SortByPoints,
		AvoidRematch:     true,
		MaxByesPerPlayer: 1,
		ByePolicy:        ByeLowestRanked,
	}
}

func (c PairingConfig) Validate() error {
	if c.Method != PairingSwiss {
		return fmt.Errorf("%w: %q", ErrPairingMethodInvalid, c.Method)
	}
	switch c.SortBy {
	case SortByPoints, SortByRandom:
	case SortByStat:
		if c.StatKey == "" {
			return ErrPairingStatKeyRequired
		}
	default:
		return fmt.Errorf("%w: %q", ErrPairingSortByInvalid, c.SortBy)
	}
	switch c.ByePolicy {
	case ByeLowestRanked, ByeRandom:
	default:
		return fmt.Errorf("%w: %q", ErrPairingByePolicyInvalid, c.ByePolicy)
	}
	if c.MaxByesPerPlayer < 1 {
		return fmt.Errorf("%w: %d", ErrPairingMaxByesInvalid, c.MaxByesPerPlayer)
	}
	return nil
}
