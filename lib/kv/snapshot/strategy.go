package snapshot

import (
	"github.com/ValentinKolb/sKV/lib/kv"
)

// Strategy controls which writes additionally record a changelog entry.
type Strategy uint8

const (
	// StrategyEveryBlock records a changelog entry on every mutation. This
	// is the only strategy under which historical reads are guaranteed to
	// be correct.
	StrategyEveryBlock Strategy = iota
	// StrategyNever records no changelog entries; the map degenerates to a
	// plain current-value map.
	StrategyNever
	// StrategySelected is declared but not implemented: it would checkpoint
	// only heights registered in the checkpoints table, trading extra reads
	// for fewer writes. Any mutation under this strategy fails with a
	// StrategyUnsupported error instead of silently behaving like another
	// strategy.
	StrategySelected
)

func (s Strategy) String() string {
	switch s {
	case StrategyEveryBlock:
		return "EveryBlock"
	case StrategyNever:
		return "Never"
	case StrategySelected:
		return "Selected"
	default:
		return "Unknown"
	}
}

// isCheckpoint looks at the strategy and determines if a write at the given
// height should record a changelog entry.
func (s Strategy) isCheckpoint() (bool, error) {
	switch s {
	case StrategyEveryBlock:
		return true, nil
	case StrategyNever:
		return false, nil
	case StrategySelected:
		return false, kv.NewError(kv.RetCStrategyUnsupported,
			"the Selected checkpoint strategy is not implemented")
	default:
		return false, kv.NewError(kv.RetCStrategyUnsupported,
			"unknown checkpoint strategy")
	}
}
