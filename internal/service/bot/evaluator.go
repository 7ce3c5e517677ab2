package bot

import (
	"github.com/puissance4/backend/internal/domain"
)

const (
	SCORE_CENTER     = 3   // per own piece in the center column
	SCORE_FOUR       = 100 // four own pieces in a window
	SCORE_THREE_OPEN = 5   // three own + one empty
	SCORE_TWO_OPEN   = 2   // two own + two empty
	SCORE_OPP_THREE  = -4  // opponent three + one empty
	WINDOW_LENGTH    = domain.ToWin
)

// Window is a run of four cells along one orientation.
type Window [WINDOW_LENGTH]domain.PlayerID

// EvaluateWindow scores a single window from player's point of view.
func EvaluateWindow(window Window, player domain.PlayerID) int64 {
	opponent := domain.Opponent(player)
	own, opp, empty := 0, 0, 0
	for _, cell := range window {
		switch cell {
		case player:
			own++
		case opponent:
			opp++
		default:
			empty++
		}
	}

	var score int64
	switch {
	case own == 4:
		score += SCORE_FOUR
	case own == 3 && empty == 1:
		score += SCORE_THREE_OPEN
	case own == 2 && empty == 2:
		score += SCORE_TWO_OPEN
	}

	if opp == 3 && empty == 1 {
		score += SCORE_OPP_THREE
	}

	return score
}

// Evaluate is the static score of board for player, used at the search horizon.
func Evaluate(board domain.Board, player domain.PlayerID) int64 {
	var score int64

	for row := 0; row < domain.Rows; row++ {
		if board[row][domain.CenterColumn] == player {
			score += SCORE_CENTER
		}
	}

	// horizontal
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c <= domain.Columns-WINDOW_LENGTH; c++ {
			score += EvaluateWindow(Window{board[r][c], board[r][c+1], board[r][c+2], board[r][c+3]}, player)
		}
	}

	// vertical
	for c := 0; c < domain.Columns; c++ {
		for r := 0; r <= domain.Rows-WINDOW_LENGTH; r++ {
			score += EvaluateWindow(Window{board[r][c], board[r+1][c], board[r+2][c], board[r+3][c]}, player)
		}
	}

	// rising diagonal
	for r := 0; r <= domain.Rows-WINDOW_LENGTH; r++ {
		for c := 0; c <= domain.Columns-WINDOW_LENGTH; c++ {
			score += EvaluateWindow(Window{board[r][c], board[r+1][c+1], board[r+2][c+2], board[r+3][c+3]}, player)
		}
	}

	// falling diagonal
	for r := 0; r <= domain.Rows-WINDOW_LENGTH; r++ {
		for c := 0; c <= domain.Columns-WINDOW_LENGTH; c++ {
			score += EvaluateWindow(Window{board[r+3][c], board[r+2][c+1], board[r+1][c+2], board[r][c+3]}, player)
		}
	}

	return score
}
