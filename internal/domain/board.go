package domain

import (
	"fmt"
	"strings"
)

// Board holds the cells of the grid. Row 0 is the bottom row and
// row Rows-1 the top one, so a column is full when its top cell is taken.
// Board is an array, plain assignment gives an independent copy.
type Board [Rows][Columns]PlayerID

func NewBoard() Board {
	return Board{}
}

// Copy returns a deep copy of the board.
func (b Board) Copy() Board {
	return b
}

func (b Board) Cell(row, column int) PlayerID {
	return b[row][column]
}

func IsValidColumn(column int) bool {
	return column >= 0 && column < Columns
}

// IsColumnOpen reports whether a piece can still be dropped in column.
func (b Board) IsColumnOpen(column int) bool {
	if !IsValidColumn(column) {
		return false
	}
	return b[Rows-1][column] == Empty
}

// Drop places player in the lowest empty row of column and returns that row.
func (b *Board) Drop(column int, player PlayerID) (int, error) {
	if !IsValidColumn(column) {
		return -1, fmt.Errorf("%w: column %d out of range", ErrInvalidMove, column)
	}
	if player != Player1 && player != Player2 {
		return -1, fmt.Errorf("%w: unknown player %d", ErrInvalidMove, player)
	}

	// pieces fall down until they reach the bottom or another piece
	for row := 0; row < Rows; row++ {
		if b[row][column] == Empty {
			b[row][column] = player
			return row, nil
		}
	}

	return -1, fmt.Errorf("%w: column %d is full", ErrInvalidMove, column)
}

// ValidColumns lists the open columns in ascending order.
func (b Board) ValidColumns() []int {
	validMoves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b[Rows-1][col] == Empty {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

func (b Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b[Rows-1][c] == Empty {
			return false
		}
	}
	return true
}

func (b Board) PieceCount() int {
	count := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if b[r][c] != Empty {
				count++
			}
		}
	}
	return count
}

// SimulateMove plays column on a copy of board and leaves board untouched.
func SimulateMove(board Board, column int, player PlayerID) (Board, int, error) {
	next := board.Copy()
	row, err := next.Drop(column, player)
	if err != nil {
		return board, -1, err
	}
	return next, row, nil
}

// this counts the number of disks in a specific direction
func CountDiskInDirection(board Board, row, column int, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < Rows && c >= 0 && c < Columns && board[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

// String draws the board top row first, one character per cell.
func (b Board) String() string {
	var sb strings.Builder
	for r := Rows - 1; r >= 0; r-- {
		for c := 0; c < Columns; c++ {
			switch b[r][c] {
			case Player1:
				sb.WriteByte('X')
			case Player2:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseMoves replays a sequence of column digits ("0".."6"), alternating
// sides starting with Player1. It returns the board and the side to move.
func ParseMoves(seq string) (Board, PlayerID, error) {
	board := NewBoard()
	player := Player1
	for i, ch := range seq {
		if ch < '0' || ch > '9' {
			return board, player, fmt.Errorf("%w: %q at position %d", ErrBadSequence, ch, i)
		}
		if HasFourInRow(board, Opponent(player)) {
			return board, player, fmt.Errorf("%w: move %d played after the game ended", ErrBadSequence, i)
		}
		if _, err := board.Drop(int(ch-'0'), player); err != nil {
			return board, player, fmt.Errorf("%w: move %d: %w", ErrBadSequence, i, err)
		}
		player = Opponent(player)
	}
	return board, player, nil
}
