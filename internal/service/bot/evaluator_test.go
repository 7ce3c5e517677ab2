package bot

import (
	"math/rand/v2"
	"testing"

	"github.com/puissance4/backend/internal/domain"
)

const (
	x     = domain.Player1
	o     = domain.Player2
	blank = domain.Empty
)

func TestEvaluateWindow(t *testing.T) {
	tests := []struct {
		name   string
		window Window
		want   int64
	}{
		{"four own", Window{x, x, x, x}, 100},
		{"three own open", Window{x, blank, x, x}, 5},
		{"two own open", Window{blank, x, blank, x}, 2},
		{"opponent three open", Window{o, o, blank, o}, -4},
		{"three own blocked", Window{x, x, x, o}, 0},
		{"two own blocked", Window{x, x, o, blank}, 0},
		{"single own", Window{blank, blank, x, blank}, 0},
		{"opponent four", Window{o, o, o, o}, 0},
		{"empty", Window{blank, blank, blank, blank}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateWindow(tt.window, x); got != tt.want {
				t.Errorf("EvaluateWindow(%v) = %d, want %d", tt.window, got, tt.want)
			}
		})
	}
}

func TestEvaluateCenterBonus(t *testing.T) {
	var b domain.Board
	if got := Evaluate(b, x); got != 0 {
		t.Fatalf("empty board scored %d", got)
	}

	b.Drop(domain.CenterColumn, x)
	if got := Evaluate(b, x); got != SCORE_CENTER {
		t.Errorf("lone center piece scored %d for its owner, want %d", got, SCORE_CENTER)
	}
	if got := Evaluate(b, o); got != 0 {
		t.Errorf("lone center piece scored %d for the opponent, want 0", got)
	}
}

// slowEvaluate walks every window by direction vector.
func slowEvaluate(b domain.Board, p domain.PlayerID) int64 {
	var score int64
	for r := 0; r < domain.Rows; r++ {
		if b[r][3] == p {
			score += 3
		}
	}

	dirs := [][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}
	for _, d := range dirs {
		for r := 0; r < domain.Rows; r++ {
			for c := 0; c < domain.Columns; c++ {
				er, ec := r+3*d[0], c+3*d[1]
				if er < 0 || er >= domain.Rows || ec >= domain.Columns {
					continue
				}
				own, opp, empty := 0, 0, 0
				for k := 0; k < 4; k++ {
					switch b[r+k*d[0]][c+k*d[1]] {
					case p:
						own++
					case domain.Empty:
						empty++
					default:
						opp++
					}
				}
				if own == 4 {
					score += 100
				} else if own == 3 && empty == 1 {
					score += 5
				} else if own == 2 && empty == 2 {
					score += 2
				}
				if opp == 3 && empty == 1 {
					score -= 4
				}
			}
		}
	}
	return score
}

func TestEvaluateMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 300; i++ {
		b, _ := randomPosition(rng, rng.IntN(30))
		for _, p := range []domain.PlayerID{x, o} {
			if got, want := Evaluate(b, p), slowEvaluate(b, p); got != want {
				t.Fatalf("Evaluate(%v) = %d, want %d\n%s", p, got, want, b)
			}
		}
	}
}

// randomPosition plays up to plies random legal moves and stops before
// any move that would end the game.
func randomPosition(rng *rand.Rand, plies int) (domain.Board, domain.PlayerID) {
	var b domain.Board
	side := x
	for i := 0; i < plies; i++ {
		cols := b.ValidColumns()
		col := cols[rng.IntN(len(cols))]
		next, _, _ := domain.SimulateMove(b, col, side)
		if domain.IsTerminal(next) {
			break
		}
		b = next
		side = domain.Opponent(side)
	}
	return b, side
}
