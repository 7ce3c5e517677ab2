package domain

// HasFourInRow scans the whole board for four consecutive pieces of player
// in any of the four orientations.
func HasFourInRow(board Board, player PlayerID) bool {
	if player == Empty {
		return false
	}

	// horizontal
	for r := 0; r < Rows; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			if board[r][c] == player && board[r][c+1] == player &&
				board[r][c+2] == player && board[r][c+3] == player {
				return true
			}
		}
	}

	// vertical
	for c := 0; c < Columns; c++ {
		for r := 0; r <= Rows-ToWin; r++ {
			if board[r][c] == player && board[r+1][c] == player &&
				board[r+2][c] == player && board[r+3][c] == player {
				return true
			}
		}
	}

	// rising diagonal (like this "/")
	for r := 0; r <= Rows-ToWin; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			if board[r][c] == player && board[r+1][c+1] == player &&
				board[r+2][c+2] == player && board[r+3][c+3] == player {
				return true
			}
		}
	}

	// falling diagonal (like this "\")
	for r := ToWin - 1; r < Rows; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			if board[r][c] == player && board[r-1][c+1] == player &&
				board[r-2][c+2] == player && board[r-3][c+3] == player {
				return true
			}
		}
	}

	return false
}

// Winner returns the side holding four in a row, if any.
func Winner(board Board) (PlayerID, bool) {
	if HasFourInRow(board, Player1) {
		return Player1, true
	}
	if HasFourInRow(board, Player2) {
		return Player2, true
	}
	return Empty, false
}

// IsTerminal is true once either side has won or no column is left.
func IsTerminal(board Board) bool {
	return HasFourInRow(board, Player1) || HasFourInRow(board, Player2) || board.IsFull()
}

// CheckOutcome classifies a board as in progress, won or drawn.
func CheckOutcome(board Board) Outcome {
	if winner, ok := Winner(board); ok {
		return Outcome{Status: StatusWon, Winner: winner}
	}
	if board.IsFull() {
		return Outcome{Status: StatusDraw, Winner: Empty}
	}
	return Outcome{Status: StatusActive, Winner: Empty}
}

// CheckWin only looks at the lines passing through (row, column), which is
// enough right after a piece was dropped there.
func CheckWin(board Board, row, column int, player PlayerID) bool {
	if board[row][column] != player {
		return false
	}

	directions := [4][2]int{
		{0, 1},  // horizontal
		{1, 0},  // vertical
		{1, 1},  // rising diagonal
		{1, -1}, // falling diagonal
	}
	for _, d := range directions {
		count := 1 +
			CountDiskInDirection(board, row, column, d[0], d[1], player) +
			CountDiskInDirection(board, row, column, -d[0], -d[1], player)
		if count >= ToWin {
			return true
		}
	}
	return false
}
