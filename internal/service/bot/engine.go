package bot

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/puissance4/backend/internal/domain"
)

const (
	ErrPreconditionViolation domain.Error = "search needs a board with a legal move"
	ErrInvalidDepth          domain.Error = "search depth out of range"
	ErrInvalidSide           domain.Error = "search side must be player1 or player2"
)

// Result describes a finished search. Column is NoColumn when the root
// itself is a leaf (depth 0 or a decided board).
type Result struct {
	Column   int   `json:"column"`
	Value    int64 `json:"value"`
	Nodes    int64 `json:"nodes"`
	Depth    int   `json:"depth"`
	Complete bool  `json:"complete"`
}

// Engine chooses moves with a depth-bounded minimax search.
// The zero configuration searches sequentially with no deadline and no cache.
type Engine struct {
	logger  *zap.Logger
	workers int
	timeout time.Duration
	cache   MoveCache
}

type Option func(*Engine)

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithParallelRoot searches every root column on its own goroutine,
// at most workers at a time. Values of 0 or 1 keep the sequential search.
func WithParallelRoot(workers int) Option {
	return func(e *Engine) {
		e.workers = workers
	}
}

// WithTimeout bounds every search. On expiry the best fully searched root
// column is returned, or the greedy column when none finished.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.timeout = d
	}
}

func WithCache(cache MoveCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ChooseMove returns the column the side to move should play.
func (e *Engine) ChooseMove(ctx context.Context, board domain.Board, depth int, side domain.PlayerID) (int, error) {
	if depth < 1 {
		return NoColumn, ErrInvalidDepth
	}
	if domain.IsTerminal(board) {
		return NoColumn, ErrPreconditionViolation
	}

	res, err := e.Search(ctx, board, depth, side)
	if err != nil {
		return NoColumn, err
	}
	return res.Column, nil
}

// Search runs minimax from board with side maximizing and reports the
// chosen column with its value.
func (e *Engine) Search(ctx context.Context, board domain.Board, depth int, side domain.PlayerID) (Result, error) {
	if depth < 0 {
		return Result{Column: NoColumn}, ErrInvalidDepth
	}
	if side != domain.Player1 && side != domain.Player2 {
		return Result{Column: NoColumn}, ErrInvalidSide
	}

	s := newSearcher(ctx, side)
	if value, stop := s.leaf(board, depth); stop {
		return Result{Column: NoColumn, Value: value, Nodes: 1, Depth: depth, Complete: true}, nil
	}

	key := CacheKey(board, depth, side)
	if e.cache != nil {
		cached, ok, err := e.cache.Get(ctx, key)
		if err != nil {
			e.logger.Warn("[BOT] move cache lookup failed", zap.Error(err))
		} else if ok {
			e.logger.Debug("[BOT] move cache hit", zap.String("key", key), zap.Int("column", cached.Column))
			return cached, nil
		}
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	var (
		moves []rootMove
		nodes int64
	)
	if e.workers > 1 {
		moves, nodes = e.searchParallel(ctx, board, depth, side)
	} else {
		s.ctx = ctx
		moves = s.searchRoot(board, depth)
		nodes = s.nodes
	}

	res := Result{Column: NoColumn, Nodes: nodes, Depth: depth}
	if best, ok := pickRoot(moves); ok {
		res.Column = best.column
		res.Value = best.value
		res.Complete = len(moves) == len(board.ValidColumns()) && allComplete(moves)
	} else {
		// nothing finished before the deadline, fall back to a one-ply look
		col := GreedyMove(board, side)
		child, _, _ := domain.SimulateMove(board, col, side)
		res.Column = col
		res.Value = Evaluate(child, side)
	}

	e.logger.Debug("[BOT] search finished",
		zap.Int("depth", depth),
		zap.Stringer("side", side),
		zap.Int("column", res.Column),
		zap.Int64("value", res.Value),
		zap.Int64("nodes", res.Nodes),
		zap.Bool("complete", res.Complete),
		zap.Duration("elapsed", time.Since(start)),
	)

	if !res.Complete {
		e.logger.Warn("[BOT] search stopped early", zap.Int("depth", depth), zap.Int("column", res.Column), zap.Error(ctx.Err()))
	} else if e.cache != nil {
		if err := e.cache.Set(ctx, key, res); err != nil {
			e.logger.Warn("[BOT] move cache store failed", zap.Error(err))
		}
	}

	return res, nil
}

// searchParallel gives every root column its own searcher and a full window.
// Without shared bounds each value is exact, so picking the first strict
// maximum yields the same column and value as the sequential walk.
func (e *Engine) searchParallel(ctx context.Context, board domain.Board, depth int, side domain.PlayerID) ([]rootMove, int64) {
	columns := board.ValidColumns()
	moves := make([]rootMove, len(columns))
	nodes := make([]int64, len(columns))

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, col := range columns {
		g.Go(func() error {
			s := newSearcher(ctx, side)
			child := board
			child.Drop(col, side)

			_, value := s.minimax(child, depth-1, negInf, posInf, false)
			moves[i] = rootMove{column: col, value: value, complete: !s.aborted}
			nodes[i] = s.nodes
			return nil
		})
	}
	_ = g.Wait()

	total := int64(1)
	for _, n := range nodes {
		total += n
	}
	return moves, total
}

func allComplete(moves []rootMove) bool {
	for _, m := range moves {
		if !m.complete {
			return false
		}
	}
	return true
}
