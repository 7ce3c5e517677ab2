package domain

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"
)

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()
	if got := b.ValidColumns(); !reflect.DeepEqual(got, []int{0, 1, 2, 3, 4, 5, 6}) {
		t.Fatalf("ValidColumns() = %v, want all seven columns", got)
	}
	if b.PieceCount() != 0 {
		t.Errorf("PieceCount() = %d, want 0", b.PieceCount())
	}
	if b.IsFull() {
		t.Errorf("empty board reported full")
	}
}

func TestDropStacksFromBottom(t *testing.T) {
	b := NewBoard()
	for want := 0; want < Rows; want++ {
		p := Player1
		if want%2 == 1 {
			p = Player2
		}
		row, err := b.Drop(2, p)
		if err != nil {
			t.Fatalf("drop %d: unexpected error %v", want, err)
		}
		if row != want {
			t.Fatalf("drop %d landed on row %d", want, row)
		}
		if b.Cell(row, 2) != p {
			t.Fatalf("cell (%d,2) = %v, want %v", row, b.Cell(row, 2), p)
		}
	}

	if b.IsColumnOpen(2) {
		t.Errorf("column 2 still open after %d drops", Rows)
	}
	if _, err := b.Drop(2, Player1); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("drop on full column: got %v, want ErrInvalidMove", err)
	}
	if got := b.ValidColumns(); !reflect.DeepEqual(got, []int{0, 1, 3, 4, 5, 6}) {
		t.Errorf("ValidColumns() = %v, want column 2 missing", got)
	}
}

func TestDropRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		column int
		player PlayerID
	}{
		{"negative column", -1, Player1},
		{"column past the edge", Columns, Player1},
		{"empty player", 3, Empty},
		{"unknown player", 3, PlayerID(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			if _, err := b.Drop(tt.column, tt.player); !errors.Is(err, ErrInvalidMove) {
				t.Fatalf("Drop(%d, %v) = %v, want ErrInvalidMove", tt.column, tt.player, err)
			}
			if b != NewBoard() {
				t.Errorf("failed drop changed the board")
			}
		})
	}
}

func TestIsColumnOpenOutOfRange(t *testing.T) {
	b := NewBoard()
	if b.IsColumnOpen(-1) || b.IsColumnOpen(Columns) {
		t.Errorf("out of range columns reported open")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	orig := NewBoard()
	orig.Drop(3, Player1)

	cp := orig.Copy()
	cp.Drop(3, Player2)
	cp.Drop(0, Player1)

	if orig.PieceCount() != 1 || orig.Cell(1, 3) != Empty || orig.Cell(0, 0) != Empty {
		t.Fatalf("mutating the copy changed the original:\n%s", orig)
	}

	next, row, err := SimulateMove(orig, 3, Player2)
	if err != nil || row != 1 {
		t.Fatalf("SimulateMove = row %d, err %v", row, err)
	}
	if next.Cell(1, 3) != Player2 || orig.Cell(1, 3) != Empty {
		t.Errorf("SimulateMove must only change the returned board")
	}
}

func TestGravityHoldsOverRandomGames(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for game := 0; game < 200; game++ {
		b := NewBoard()
		p := Player1
		for {
			cols := b.ValidColumns()
			if len(cols) == 0 {
				break
			}
			if _, err := b.Drop(cols[rng.IntN(len(cols))], p); err != nil {
				t.Fatalf("legal drop failed: %v", err)
			}
			p = Opponent(p)
			assertGravity(t, b)
			assertValidColumns(t, b)
		}
	}
}

func assertGravity(t *testing.T, b Board) {
	t.Helper()
	for c := 0; c < Columns; c++ {
		for r := 1; r < Rows; r++ {
			if b[r][c] != Empty && b[r-1][c] == Empty {
				t.Fatalf("floating piece at (%d,%d):\n%s", r, c, b)
			}
		}
	}
}

func assertValidColumns(t *testing.T, b Board) {
	t.Helper()
	want := []int{}
	for c := 0; c < Columns; c++ {
		if b[Rows-1][c] == Empty {
			want = append(want, c)
		}
	}
	if got := b.ValidColumns(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ValidColumns() = %v, want %v", got, want)
	}
}

func TestParseMoves(t *testing.T) {
	b, side, err := ParseMoves("3344")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if side != Player1 {
		t.Errorf("side to move = %v, want player1", side)
	}
	if b.Cell(0, 3) != Player1 || b.Cell(1, 3) != Player2 || b.Cell(0, 4) != Player1 || b.Cell(1, 4) != Player2 {
		t.Errorf("unexpected position:\n%s", b)
	}

	_, side, err = ParseMoves("3")
	if err != nil || side != Player2 {
		t.Errorf("ParseMoves(\"3\") side = %v, err = %v", side, err)
	}

	tests := []struct {
		name string
		seq  string
		full bool
	}{
		{"letter", "33a", false},
		{"column past the edge", "7", true},
		{"full column", "0000000", true},
		{"move after a win", "01010101", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseMoves(tt.seq)
			if !errors.Is(err, ErrBadSequence) {
				t.Fatalf("ParseMoves(%q) = %v, want ErrBadSequence", tt.seq, err)
			}
			if tt.full && !errors.Is(err, ErrInvalidMove) {
				t.Errorf("ParseMoves(%q) = %v, want it to wrap ErrInvalidMove", tt.seq, err)
			}
		})
	}
}

func TestBoardString(t *testing.T) {
	b, _, err := ParseMoves("33")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != Rows {
		t.Fatalf("got %d lines, want %d", len(lines), Rows)
	}
	if lines[Rows-1] != "...X..." || lines[Rows-2] != "...O..." || lines[0] != "......." {
		t.Errorf("unexpected rendering:\n%s", b)
	}
}

func TestCountDiskInDirection(t *testing.T) {
	b, _, err := ParseMoves("0011223")
	if err != nil {
		t.Fatal(err)
	}
	// Player1 holds row 0 columns 0..3
	if got := CountDiskInDirection(b, 0, 3, 0, -1, Player1); got != 3 {
		t.Errorf("count left of (0,3) = %d, want 3", got)
	}
	if got := CountDiskInDirection(b, 0, 3, 1, 0, Player1); got != 0 {
		t.Errorf("count above (0,3) = %d, want 0", got)
	}
}
