package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/puissance4/backend/internal/domain"
	"github.com/puissance4/backend/internal/service/bot"
	"github.com/puissance4/backend/internal/service/game"
)

func finishedSession(t *testing.T, sm *game.SessionManager) *game.Session {
	t.Helper()
	s := sm.CreateSession(game.SessionConfig{Mode: game.ModeHumanVsHuman, FirstPlayer: domain.Player1})
	for _, col := range []int{0, 1, 0, 1, 0, 1, 0} {
		if _, err := s.PlayHuman(col); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestRunCleanup(t *testing.T) {
	sm := game.NewSessionManager(bot.NewEngine(), nil, nil)
	finishedSession(t, sm)
	sm.CreateSession(game.SessionConfig{Mode: game.ModeHumanVsHuman})

	w := NewWorker(sm, time.Hour, time.Hour, nil)
	if n := w.runCleanup(); n != 0 {
		t.Fatalf("removed %d sessions younger than MaxAge", n)
	}

	w.MaxAge = 0
	if n := w.runCleanup(); n != 1 {
		t.Fatalf("removed %d sessions, want 1", n)
	}
	if len(sm.ActiveSessions()) != 1 {
		t.Errorf("running session was removed")
	}
}

func TestStartStopsWithContext(t *testing.T) {
	sm := game.NewSessionManager(bot.NewEngine(), nil, nil)
	s := finishedSession(t, sm)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	NewWorker(sm, 5*time.Millisecond, 0, nil).Start(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := sm.GetSession(s.GameID); err != nil {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("worker never removed the finished session")
}
