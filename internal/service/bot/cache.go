package bot

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/puissance4/backend/internal/domain"
)

// MoveCache memoizes search results. Search is deterministic, so a cached
// result is exactly what a fresh search would return.
type MoveCache interface {
	Get(ctx context.Context, key string) (Result, bool, error)
	Set(ctx context.Context, key string, res Result) error
}

// CacheKey encodes the cells bottom row first, then side and depth.
func CacheKey(board domain.Board, depth int, side domain.PlayerID) string {
	var sb strings.Builder
	sb.Grow(domain.Rows*domain.Columns + 8)
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Columns; c++ {
			sb.WriteByte(byte('0' + board[r][c]))
		}
	}
	sb.WriteByte(':')
	sb.WriteByte(byte('0' + side))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(depth))
	return sb.String()
}

// MemoryCache is a bounded in-process MoveCache.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]Result
	limit   int
}

func NewMemoryCache(limit int) *MemoryCache {
	if limit <= 0 {
		limit = 10000
	}
	return &MemoryCache{
		entries: make(map[string]Result),
		limit:   limit,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (Result, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res, ok := m.entries[key]
	return res, ok, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, res Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; !exists && len(m.entries) >= m.limit {
		// evict whichever entry the map yields first
		for k := range m.entries {
			delete(m.entries, k)
			break
		}
	}
	m.entries[key] = res
	return nil
}

func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
