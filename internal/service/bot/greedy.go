package bot

import (
	"github.com/puissance4/backend/internal/domain"
)

const greedyFloor int64 = -10000

// GreedyMove looks a single ply ahead: it plays every legal column for
// player and keeps the one with the best static score. It returns
// NoColumn on a full board.
func GreedyMove(board domain.Board, player domain.PlayerID) int {
	validColumns := board.ValidColumns()
	if len(validColumns) == 0 {
		return NoColumn
	}

	bestColumn := validColumns[0]
	bestScore := greedyFloor
	for _, col := range validColumns {
		testBoard, _, err := domain.SimulateMove(board, col, player)
		if err != nil {
			continue
		}
		if score := Evaluate(testBoard, player); score > bestScore {
			bestScore = score
			bestColumn = col
		}
	}

	return bestColumn
}
