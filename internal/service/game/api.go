package game

import (
	"context"

	"github.com/puissance4/backend/internal/domain"
	"github.com/puissance4/backend/internal/service/bot"
)

// The functions below are the whole surface a presentation layer needs
// when it keeps the board itself instead of using a Session.

func NewGame() domain.Board {
	return domain.NewBoard()
}

func LegalColumns(board domain.Board) []int {
	return board.ValidColumns()
}

// ApplyMove returns the board after side plays column; board is unchanged.
func ApplyMove(board domain.Board, column int, side domain.PlayerID) (domain.Board, error) {
	next, _, err := domain.SimulateMove(board, column, side)
	if err != nil {
		return board, err
	}
	return next, nil
}

func CheckOutcome(board domain.Board) domain.Outcome {
	return domain.CheckOutcome(board)
}

func ComputerMove(ctx context.Context, engine *bot.Engine, board domain.Board, depth int, side domain.PlayerID) (int, error) {
	return engine.ChooseMove(ctx, board, depth, side)
}
