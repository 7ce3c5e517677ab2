package game

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/puissance4/backend/internal/domain"
)

type TournamentConfig struct {
	Games        int
	Player1Depth int
	Player2Depth int
	// Workers bounds the number of games played at once, GOMAXPROCS when zero.
	Workers int
}

type GameRecord struct {
	GameID  string          `json:"gameId"`
	First   domain.PlayerID `json:"first"`
	Outcome domain.Outcome  `json:"outcome"`
	Moves   int             `json:"moves"`
}

type TournamentResult struct {
	Player1Wins int          `json:"player1Wins"`
	Player2Wins int          `json:"player2Wins"`
	Draws       int          `json:"draws"`
	Games       []GameRecord `json:"games"`
}

// RunTournament plays computer-vs-computer games. Even-numbered games are
// opened by Player1 and odd ones by Player2.
func (sm *SessionManager) RunTournament(ctx context.Context, cfg TournamentConfig) (TournamentResult, error) {
	if cfg.Games <= 0 {
		return TournamentResult{}, fmt.Errorf("tournament needs at least one game, got %d", cfg.Games)
	}
	if cfg.Player1Depth < 1 || cfg.Player2Depth < 1 {
		return TournamentResult{}, fmt.Errorf("tournament depths must be at least 1, got %d and %d", cfg.Player1Depth, cfg.Player2Depth)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	records := make([]GameRecord, cfg.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < cfg.Games; i++ {
		first := domain.Player1
		if i%2 == 1 {
			first = domain.Player2
		}

		g.Go(func() error {
			record, err := sm.playOut(ctx, SessionConfig{
				Mode:        ModeComputerVsComputer,
				FirstPlayer: first,
				Depth:       cfg.Player1Depth,
				SideDepths:  map[domain.PlayerID]int{domain.Player2: cfg.Player2Depth},
			})
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			records[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return TournamentResult{}, err
	}

	result := TournamentResult{Games: records}
	for _, r := range records {
		switch {
		case r.Outcome.Status == domain.StatusDraw:
			result.Draws++
		case r.Outcome.Winner == domain.Player1:
			result.Player1Wins++
		case r.Outcome.Winner == domain.Player2:
			result.Player2Wins++
		}
	}

	sm.logger.Info("[SELFPLAY] tournament finished",
		zap.Int("games", cfg.Games),
		zap.Int("player1_wins", result.Player1Wins),
		zap.Int("player2_wins", result.Player2Wins),
		zap.Int("draws", result.Draws),
	)
	return result, nil
}

// playOut runs one session to the end and removes it from the manager.
func (sm *SessionManager) playOut(ctx context.Context, cfg SessionConfig) (GameRecord, error) {
	session := sm.CreateSession(cfg)
	defer sm.RemoveSession(session.GameID)

	for !session.IsFinished() {
		if err := ctx.Err(); err != nil {
			return GameRecord{}, err
		}
		if _, err := session.PlayComputer(ctx); err != nil {
			return GameRecord{}, err
		}
	}

	return GameRecord{
		GameID:  session.GameID,
		First:   cfg.FirstPlayer,
		Outcome: session.Outcome(),
		Moves:   session.MoveCount(),
	}, nil
}
