package domain

type Game struct {
	Board         Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	MoveCount     int
	LastRow       int
	LastColumn    int
}

// NewGame starts an empty game with first to move.
func NewGame(first PlayerID) *Game {
	if first != Player2 {
		first = Player1
	}
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: first,
		Status:        StatusActive,
		Winner:        Empty,
		LastRow:       -1,
		LastColumn:    -1,
	}
}

// MakeMove drops a piece for the side to move and updates the status.
func (g *Game) MakeMove(column int) (int, error) {
	if g.Status != StatusActive {
		return -1, ErrGameOver
	}

	row, err := g.Board.Drop(column, g.CurrentPlayer)
	if err != nil {
		return -1, err
	}

	g.MoveCount++
	g.LastRow, g.LastColumn = row, column

	if CheckWin(g.Board, row, column, g.CurrentPlayer) {
		g.Status = StatusWon
		g.Winner = g.CurrentPlayer
		return row, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = Opponent(g.CurrentPlayer)
	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}

func (g *Game) Outcome() Outcome {
	return Outcome{Status: g.Status, Winner: g.Winner}
}
