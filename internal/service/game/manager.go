package game

import (
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/puissance4/backend/internal/service/bot"
)

// SessionManager keeps the sessions of one process.
type SessionManager struct {
	sessions map[string]*Session // gameID → Session
	mu       sync.RWMutex

	engine *bot.Engine
	logger *zap.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewSessionManager(engine *bot.Engine, rng *rand.Rand, logger *zap.Logger) *SessionManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().Unix())))
	}
	return &SessionManager{
		sessions: make(map[string]*Session),
		engine:   engine,
		logger:   logger,
		rng:      rng,
	}
}

func (sm *SessionManager) CreateSession(cfg SessionConfig) *Session {
	// rand.Rand is not safe for concurrent use
	sm.rngMu.Lock()
	session := NewSession(cfg, sm.engine, sm.rng, sm.logger)
	sm.rngMu.Unlock()

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessions[session.GameID] = session
	return session
}

func (sm *SessionManager) GetSession(gameID string) (*Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[gameID]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[gameID]; !exists {
		return ErrSessionNotFound
	}
	delete(sm.sessions, gameID)
	sm.logger.Debug("[SESSION] removed", zap.String("game_id", gameID))
	return nil
}

// CleanupFinished drops sessions that ended more than olderThan ago and
// returns how many were removed.
func (sm *SessionManager) CleanupFinished(olderThan time.Duration) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	count := 0
	now := time.Now()
	for gameID, session := range sm.sessions {
		finished := session.FinishedAt()
		if !finished.IsZero() && now.Sub(finished) >= olderThan {
			delete(sm.sessions, gameID)
			count++
		}
	}

	if count > 0 {
		sm.logger.Info("[SESSION] cleanup removed finished sessions", zap.Int("count", count))
	}
	return count
}

type SessionSummary struct {
	GameID    string    `json:"gameId"`
	Mode      Mode      `json:"mode"`
	MoveCount int       `json:"moveCount"`
	StartedAt time.Time `json:"startedAt"`
}

// ActiveSessions lists the sessions whose game is still running, oldest first.
func (sm *SessionManager) ActiveSessions() []SessionSummary {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	active := make([]SessionSummary, 0, len(sm.sessions))
	for _, session := range sm.sessions {
		if session.IsFinished() {
			continue
		}
		active = append(active, SessionSummary{
			GameID:    session.GameID,
			Mode:      session.Mode,
			MoveCount: session.MoveCount(),
			StartedAt: session.CreatedAt,
		})
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].StartedAt.Before(active[j].StartedAt)
	})
	return active
}
