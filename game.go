/*
game.go implements the game-level API: a thin, message-returning surface
over the move API that callers such as agents and frontends talk to.
*/

package tomato

// Outcome strings returned by [ChessGame.GetOutcome].  A checkmate reports
// the winner's color name instead.
const (
	OutcomeDraw    = "Stalemate"
	OutcomeOngoing = "IsOngoing"
)

// MessageKind distinguishes informational replies from errors.
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageError
)

// Message is the reply of every game-level request.
type Message struct {
	Kind MessageKind
	Text string
}

// Info creates an informational message.
func Info(text string) Message { return Message{Kind: MessageInfo, Text: text} }

// Error creates an error message.
func Error(text string) Message { return Message{Kind: MessageError, Text: text} }

// GameAPI is the capability set a chess frontend needs from a game.
type GameAPI interface {
	TryMove(m Move) Message
	TryUndo() Message
	GetState() [8][8]SquareState
	GetOutcome() Message
	GetLegalMoves() []Move
}

// ChessGame wraps a MoveAPI into the GameAPI surface.
type ChessGame struct {
	api *MoveAPI
}

// NewChessGame creates a game starting from the initial position.
func NewChessGame() *ChessGame {
	return &ChessGame{api: NewMoveAPI(StartingBoard)}
}

// NewChessGameFromFEN creates a game starting from the given position.
// The FEN string must be valid; see [ParseFEN].
func NewChessGameFromFEN(fen string) *ChessGame {
	return &ChessGame{api: NewMoveAPI(fen)}
}

// TryMove executes the move if it is legal and reports the result.  An
// illegal move leaves the game unchanged.
func (g *ChessGame) TryMove(m Move) Message {
	for _, legal := range g.api.LegalMoves() {
		if legal == m {
			g.api.ExecMove(m)
			return Info("Move Sucess")
		}
	}
	return Error("Not a legal move")
}

// TryUndo reverts the most recent move.  Undoing past the first move is a
// fatal caller error.
func (g *ChessGame) TryUndo() Message {
	g.api.UndoMove()
	return Info("Successful Request")
}

// GetState returns the board as an 8x8 matrix indexed [row][col].
func (g *ChessGame) GetState() [8][8]SquareState {
	return g.api.Board().GetState()
}

/*
GetOutcome reports the game result: the winner's color name on checkmate,
"Stalemate" on stalemate, and "IsOngoing" otherwise.  On checkmate the side
to move is the loser, so the winner is the opposite color.
*/
func (g *ChessGame) GetOutcome() Message {
	if g.api.IsCheckmate() {
		return Info(g.api.TurnColor().Opposite().String())
	}
	if g.api.IsStalemate() {
		return Info(OutcomeDraw)
	}
	return Info(OutcomeOngoing)
}

// GetLegalMoves returns every legal move of the side to move.
func (g *ChessGame) GetLegalMoves() []Move {
	return g.api.LegalMoves()
}

// TurnColor returns the side to move.
func (g *ChessGame) TurnColor() Color { return g.api.TurnColor() }

// FEN serializes the current position.
func (g *ChessGame) FEN() string { return g.api.Board().FEN() }

// String renders the current position; see [Board.String].
func (g *ChessGame) String() string { return g.api.Board().String() }

/*
IsThreefoldRepetition reports whether the current position already occurred
at least twice before.  Positions are compared by their Zobrist keys over
the executor's snapshot history, so two positions are identical when the
pieces, the side to move, the castling rights, and the en passant file all
match; the move clocks do not take part.
*/
func (g *ChessGame) IsThreefoldRepetition() bool {
	key := g.api.Board().zobristKey()

	repetitions := 1
	for i := range g.api.exec.History() {
		if g.api.exec.History()[i].zobristKey() == key {
			repetitions++
		}
	}
	return repetitions >= 3
}
