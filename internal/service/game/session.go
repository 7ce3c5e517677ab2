package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/puissance4/backend/internal/domain"
	"github.com/puissance4/backend/internal/service/bot"
	"github.com/puissance4/backend/pkg/uid"
)

const (
	ErrNotYourTurn     domain.Error = "not your turn"
	ErrSessionNotFound domain.Error = "session not found"
)

// Mode is the number of human players in a session.
type Mode int

const (
	ModeComputerVsComputer Mode = 0
	ModeHumanVsComputer    Mode = 1
	ModeHumanVsHuman       Mode = 2
)

func ParseMode(players int) (Mode, error) {
	if players < 0 || players > 2 {
		return 0, fmt.Errorf("number of human players must be 0, 1 or 2, got %d", players)
	}
	return Mode(players), nil
}

type SessionConfig struct {
	Mode       Mode
	Difficulty bot.BotDifficulty
	// Depth overrides the depth drawn from Difficulty when positive.
	Depth int
	// SideDepths overrides Depth for one computer side.
	SideDepths map[domain.PlayerID]int
	// FirstPlayer is drawn at random when Empty.
	FirstPlayer domain.PlayerID
	// HumanSide is the human's side in ModeHumanVsComputer, Player1 when Empty.
	HumanSide domain.PlayerID
}

// MoveResult is what the presentation layer needs after each drop.
type MoveResult struct {
	Column   int             `json:"column"`
	Row      int             `json:"row"`
	Player   domain.PlayerID `json:"player"`
	Board    domain.Board    `json:"board"`
	Outcome  domain.Outcome  `json:"outcome"`
	NextTurn domain.PlayerID `json:"nextTurn"`
}

// Session owns one game. All methods are safe for concurrent use.
type Session struct {
	GameID     string
	Mode       Mode
	Difficulty bot.BotDifficulty
	CreatedAt  time.Time

	mu         sync.Mutex
	finishedAt time.Time
	game       *domain.Game
	computer   map[domain.PlayerID]bool
	depths     map[domain.PlayerID]int
	engine     *bot.Engine
	logger     *zap.Logger
}

func NewSession(cfg SessionConfig, engine *bot.Engine, rng *rand.Rand, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	difficulty := bot.ParseDifficulty(string(cfg.Difficulty))
	depth := cfg.Depth
	if depth <= 0 {
		depth = difficulty.Depth(rng)
	}

	first := cfg.FirstPlayer
	if first != domain.Player1 && first != domain.Player2 {
		first = domain.Player1 + domain.PlayerID(rng.IntN(2))
	}

	computer := make(map[domain.PlayerID]bool)
	switch cfg.Mode {
	case ModeComputerVsComputer:
		computer[domain.Player1] = true
		computer[domain.Player2] = true
	case ModeHumanVsComputer:
		human := cfg.HumanSide
		if human != domain.Player2 {
			human = domain.Player1
		}
		computer[domain.Opponent(human)] = true
	}

	depths := map[domain.PlayerID]int{domain.Player1: depth, domain.Player2: depth}
	for side, d := range cfg.SideDepths {
		if d > 0 {
			depths[side] = d
		}
	}

	gs := &Session{
		GameID:     uid.GenerateGameID(),
		Mode:       cfg.Mode,
		Difficulty: difficulty,
		CreatedAt:  time.Now(),
		game:       domain.NewGame(first),
		computer:   computer,
		depths:     depths,
		engine:     engine,
		logger:     logger,
	}

	logger.Info("[SESSION] created",
		zap.String("game_id", gs.GameID),
		zap.Int("mode", int(cfg.Mode)),
		zap.String("difficulty", string(difficulty)),
		zap.Int("depth", depth),
		zap.Stringer("first", first),
	)
	return gs
}

// Board returns a copy of the current board.
func (gs *Session) Board() domain.Board {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.game.Board
}

func (gs *Session) LegalColumns() []int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.game.IsFinished() {
		return []int{}
	}
	return gs.game.Board.ValidColumns()
}

func (gs *Session) Outcome() domain.Outcome {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.game.Outcome()
}

func (gs *Session) CurrentPlayer() domain.PlayerID {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.game.CurrentPlayer
}

func (gs *Session) MoveCount() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.game.MoveCount
}

// FinishedAt is the zero time while the game is running.
func (gs *Session) FinishedAt() time.Time {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.finishedAt
}

func (gs *Session) IsFinished() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.game.IsFinished()
}

// IsComputerTurn reports whether the side to move is played by the engine.
func (gs *Session) IsComputerTurn() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return !gs.game.IsFinished() && gs.computer[gs.game.CurrentPlayer]
}

// Depth returns the search depth used for side.
func (gs *Session) Depth(side domain.PlayerID) int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.depths[side]
}

// PlayHuman drops a piece for the human side to move.
func (gs *Session) PlayHuman(column int) (MoveResult, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.game.IsFinished() {
		return MoveResult{}, domain.ErrGameOver
	}
	if gs.computer[gs.game.CurrentPlayer] {
		return MoveResult{}, ErrNotYourTurn
	}
	return gs.applyLocked(column)
}

// PlayComputer asks the engine for the side to move and plays its column.
func (gs *Session) PlayComputer(ctx context.Context) (MoveResult, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.game.IsFinished() {
		return MoveResult{}, domain.ErrGameOver
	}
	player := gs.game.CurrentPlayer
	if !gs.computer[player] {
		return MoveResult{}, ErrNotYourTurn
	}

	column, err := gs.engine.ChooseMove(ctx, gs.game.Board, gs.depths[player], player)
	if err != nil {
		return MoveResult{}, fmt.Errorf("computer move for %s: %w", player, err)
	}
	return gs.applyLocked(column)
}

func (gs *Session) applyLocked(column int) (MoveResult, error) {
	player := gs.game.CurrentPlayer
	row, err := gs.game.MakeMove(column)
	if err != nil {
		return MoveResult{}, err
	}

	res := MoveResult{
		Column:   column,
		Row:      row,
		Player:   player,
		Board:    gs.game.Board,
		Outcome:  gs.game.Outcome(),
		NextTurn: gs.game.CurrentPlayer,
	}

	if gs.game.IsFinished() {
		gs.finishedAt = time.Now()
		res.NextTurn = domain.Empty
		gs.logger.Info("[SESSION] game over",
			zap.String("game_id", gs.GameID),
			zap.String("status", string(gs.game.Status)),
			zap.Stringer("winner", gs.game.Winner),
			zap.Int("moves", gs.game.MoveCount),
			zap.Duration("duration", gs.finishedAt.Sub(gs.CreatedAt)),
		)
	}
	return res, nil
}
