package bot

import (
	"context"
	"math"

	"github.com/puissance4/backend/internal/domain"
)

const (
	WinScore  int64 = 100_000_000_000_000
	LossScore int64 = -WinScore
	DrawScore int64 = 0

	NoColumn = -1
)

const (
	negInf int64 = math.MinInt64
	posInf int64 = math.MaxInt64
)

// searcher runs one depth-first minimax walk. It is not safe for concurrent
// use; the parallel root search gives every goroutine its own searcher.
type searcher struct {
	ctx       context.Context
	maximizer domain.PlayerID
	minimizer domain.PlayerID
	nodes     int64
	aborted   bool
}

func newSearcher(ctx context.Context, maximizer domain.PlayerID) *searcher {
	return &searcher{
		ctx:       ctx,
		maximizer: maximizer,
		minimizer: domain.Opponent(maximizer),
	}
}

// leaf returns the value of a node where the walk stops and whether it does stop.
func (s *searcher) leaf(board domain.Board, depth int) (int64, bool) {
	switch {
	case domain.HasFourInRow(board, s.maximizer):
		return WinScore, true
	case domain.HasFourInRow(board, s.minimizer):
		return LossScore, true
	case board.IsFull():
		return DrawScore, true
	case depth == 0:
		return Evaluate(board, s.maximizer), true
	}
	return 0, false
}

// minimax implements the minimax algorithm with alpha-beta pruning.
// Columns are tried in ascending order and only a strictly better value
// replaces the incumbent, so ties go to the lowest column.
func (s *searcher) minimax(board domain.Board, depth int, alpha, beta int64, maximizing bool) (int, int64) {
	s.nodes++
	if s.ctx.Err() != nil {
		s.aborted = true
		return NoColumn, 0
	}

	if value, stop := s.leaf(board, depth); stop {
		return NoColumn, value
	}

	column := NoColumn
	if maximizing {
		value := negInf
		for _, col := range board.ValidColumns() {
			child := board
			child.Drop(col, s.maximizer)

			_, eval := s.minimax(child, depth-1, alpha, beta, false)
			if s.aborted {
				return column, value
			}
			if eval > value {
				value = eval
				column = col
			}
			alpha = max(alpha, value)
			if alpha >= beta {
				break // beta cutoff
			}
		}
		return column, value
	}

	value := posInf
	for _, col := range board.ValidColumns() {
		child := board
		child.Drop(col, s.minimizer)

		_, eval := s.minimax(child, depth-1, alpha, beta, true)
		if s.aborted {
			return column, value
		}
		if eval < value {
			value = eval
			column = col
		}
		beta = min(beta, value)
		if alpha >= beta {
			break // alpha cutoff
		}
	}
	return column, value
}

// rootMove is the outcome of searching one root column.
type rootMove struct {
	column   int
	value    int64
	complete bool
}

// searchRoot walks the root columns sequentially, sharing alpha between them.
func (s *searcher) searchRoot(board domain.Board, depth int) []rootMove {
	s.nodes++
	alpha, beta := negInf, posInf
	best := negInf

	moves := make([]rootMove, 0, domain.Columns)
	for _, col := range board.ValidColumns() {
		child := board
		child.Drop(col, s.maximizer)

		_, eval := s.minimax(child, depth-1, alpha, beta, false)
		if s.aborted {
			moves = append(moves, rootMove{column: col})
			break
		}
		moves = append(moves, rootMove{column: col, value: eval, complete: true})
		best = max(best, eval)
		alpha = max(alpha, best)
	}
	return moves
}

// pickRoot keeps the first strictly greatest completed root move.
func pickRoot(moves []rootMove) (rootMove, bool) {
	best := rootMove{column: NoColumn, value: negInf}
	found := false
	for _, m := range moves {
		if !m.complete {
			continue
		}
		if !found || m.value > best.value {
			best = m
			found = true
		}
	}
	return best, found
}
