package bot

import "math/rand/v2"

type BotDifficulty string

const (
	DifficultyEasy   BotDifficulty = "easy"
	DifficultyMedium BotDifficulty = "medium"
	DifficultyHard   BotDifficulty = "hard"
)

// ParseDifficulty validates and returns the bot difficulty
// Defaults to Medium if invalid or empty
func ParseDifficulty(difficulty string) BotDifficulty {
	switch difficulty {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// DepthRange is the inclusive range of search depths for a difficulty.
func (d BotDifficulty) DepthRange() (int, int) {
	switch d {
	case DifficultyEasy:
		return 1, 2
	case DifficultyHard:
		return 5, 6
	default:
		return 3, 4
	}
}

// Depth draws a search depth uniformly from the difficulty's range.
func (d BotDifficulty) Depth(rng *rand.Rand) int {
	lo, hi := d.DepthRange()
	if rng == nil {
		return lo + rand.IntN(hi-lo+1)
	}
	return lo + rng.IntN(hi-lo+1)
}
