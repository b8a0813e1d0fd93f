package resource

import (
	"fmt"
	"sort"
)

const (
	MinLevel = 1
	MaxLevel = 5
)

var ErrInvalidBank = fmt.Errorf("invalid word bank")

// WordEntry is a word to guess and its cryptic clue.
type WordEntry struct {
	Word string `json:"word"`
	Clue string `json:"clue"`
}

// WordBank maps a difficulty tier to its ordered list of words.
type WordBank map[int][]WordEntry

func (b WordBank) Tier(level int) ([]WordEntry, bool) {
	entries, ok := b[level]
	return entries, ok && len(entries) > 0
}

// All returns the union of every tier, lower tiers first.
func (b WordBank) All() []WordEntry {
	levels := make([]int, 0, len(b))
	for level := range b {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	var all []WordEntry
	for _, level := range levels {
		all = append(all, b[level]...)
	}

	return all
}

func (b WordBank) Validate() error {
	for level := MinLevel; level <= MaxLevel; level++ {
		entries, ok := b.Tier(level)
		if !ok {
			return fmt.Errorf("%w: level %d has no words", ErrInvalidBank, level)
		}

		for _, entry := range entries {
			if !IsWord(entry.Word) {
				return fmt.Errorf("%w: level %d word %q must be A-Z only", ErrInvalidBank, level, entry.Word)
			}
		}
	}

	return nil
}

// IsWord reports whether s is a non-empty string of upper case latin letters.
func IsWord(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}

	return true
}

// Words is the default bank, one tier per level.
var Words = WordBank{
	// 5-6 letters
	1: {
		{Word: "OCEAN", Clue: "Where Neptune rules and sailors fear to tread deep"},
		{Word: "PIANO", Clue: "Black and white soldiers standing in perfect harmony"},
		{Word: "FLAME", Clue: "Dancing spirit that consumes but gives warmth"},
		{Word: "HEART", Clue: "The drum that never stops its rhythm in your chest"},
		{Word: "STORM", Clue: "Nature's tantrum with lightning spears and thunder roars"},
	},
	// 6-7 letters
	2: {
		{Word: "SUNSET", Clue: "When the sky bleeds gold and the day surrenders"},
		{Word: "BRIDGE", Clue: "A path that dares to leap across the impossible"},
		{Word: "MIRROR", Clue: "The honest liar that shows you backwards truth"},
		{Word: "GARDEN", Clue: "Eden in miniature where patience blooms into beauty"},
		{Word: "CASTLE", Clue: "Stone dreams reaching for clouds, built by kings' ambitions"},
	},
	// 7-8 letters
	3: {
		{Word: "RAINBOW", Clue: "Nature's promise painted in seven sacred bands"},
		{Word: "THUNDER", Clue: "The sky's applause after lightning's brilliant performance"},
		{Word: "DIAMOND", Clue: "Carbon's ultimate transformation under earth's pressure"},
		{Word: "PHOENIX", Clue: "The bird that mocks death with flames as its cradle"},
		{Word: "LABYRINTH", Clue: "A puzzle of paths where only patience finds the center"},
	},
	// 8-10 letters
	4: {
		{Word: "SYMPHONY", Clue: "Organized chaos where silence becomes music's canvas"},
		{Word: "BUTTERFLY", Clue: "Metamorphosis with wings, beauty born from patient darkness"},
		{Word: "TREASURE", Clue: "Fortune's reward hidden where X marks forgotten dreams"},
		{Word: "WATERFALL", Clue: "Gravity's masterpiece carving stone with liquid persistence"},
		{Word: "MIDNIGHT", Clue: "When darkness reigns supreme and dreams dare to whisper"},
	},
	// 10-12 letters
	5: {
		{Word: "CONSTELLATION", Clue: "Ancient stories written in diamonds across night's canvas"},
		{Word: "PHILOSOPHER", Clue: "One who seeks wisdom in questions rather than answers"},
		{Word: "KALEIDOSCOPE", Clue: "Reality's fragments dancing in infinite beautiful patterns"},
		{Word: "ENCHANTMENT", Clue: "Magic woven so subtly that reality itself becomes questionable"},
		{Word: "CRYSTALLINE", Clue: "Perfect geometric harmony hiding in mineral's secret heart"},
	},
}
