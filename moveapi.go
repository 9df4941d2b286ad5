/*
moveapi.go combines the move generator and the move executor into a single
facade: legality filtering, terminal-state detection, evaluation, and the
perft correctness harness.
*/

package tomato

import (
	"strconv"
	"time"
)

// MoveAPI owns a generator and an executor working on the same board.
type MoveAPI struct {
	gen  *MoveGenerator
	exec *MoveExecutor
}

// NewMoveAPI creates an API around the position described by the FEN
// string.  The string must be valid; see [ParseFEN].
func NewMoveAPI(fen string) *MoveAPI {
	return &MoveAPI{
		gen:  NewMoveGenerator(),
		exec: NewMoveExecutor(ParseFEN(fen)),
	}
}

// Board returns the underlying board.
func (a *MoveAPI) Board() *Board { return a.exec.Board() }

// TurnColor returns the side to move.
func (a *MoveAPI) TurnColor() Color { return a.Board().Turn }

// PseudoMoves returns the pseudo-legal moves of the side to move.
func (a *MoveAPI) PseudoMoves() []Move {
	return a.gen.Moves(a.Board())
}

// PseudoMovesColor returns the pseudo-legal moves of the given color.
func (a *MoveAPI) PseudoMovesColor(c Color) []Move {
	return a.gen.MovesForColor(a.Board(), c)
}

// PieceMoveCount returns the number of pseudo-legal moves of the given
// color.
func (a *MoveAPI) PieceMoveCount(c Color) int {
	return a.gen.MoveCount(a.Board(), c)
}

// ExecMove applies the move; it must be at least pseudo-legal.
func (a *MoveAPI) ExecMove(m Move) { a.exec.ExecMove(m) }

// UndoMove restores the board to its state before the last ExecMove.
func (a *MoveAPI) UndoMove() { a.exec.UndoMove() }

// isCheck reports whether the attacking color attacks the enemy king.
func (a *MoveAPI) isCheck(attacker Color) bool {
	return a.gen.IsAttackedKing(a.Board(), attacker)
}

/*
LegalMoves filters the pseudo-legal moves of the side to move: each
candidate is applied, discarded if the mover's king ended up attacked, and
undone.  Moves are returned in generation order.
*/
func (a *MoveAPI) LegalMoves() []Move {
	var out []Move

	pseudoLegal := a.gen.Moves(a.Board())
	attacker := a.Board().Turn.Opposite()

	for _, m := range pseudoLegal {
		a.exec.ExecMove(m)
		isCheck := a.isCheck(attacker)
		a.exec.UndoMove()

		if !isCheck {
			out = append(out, m)
		}
	}
	return out
}

// IsCheckmate reports whether the side to move has no legal moves while its
// king is attacked.
func (a *MoveAPI) IsCheckmate() bool {
	return len(a.LegalMoves()) == 0 && a.isCheck(a.Board().Turn.Opposite())
}

// IsStalemate reports whether the side to move has no legal moves while its
// king is not attacked.
func (a *MoveAPI) IsStalemate() bool {
	return len(a.LegalMoves()) == 0 && !a.isCheck(a.Board().Turn.Opposite())
}

/*
Evaluation scores the position from White's point of view: the material
delta, plus a small mobility delta, plus a queen-overextension ratio.

The ratio term divides by the white queen's mobility and is applied to one
side only; with a boxed-in white queen it degenerates to an infinity or a
NaN.  Callers that order by this value must treat the comparison as partial.
*/
func (a *MoveAPI) Evaluation() float64 {
	wScore := a.Board().MaterialScore(ColorWhite)
	bScore := a.Board().MaterialScore(ColorBlack)
	wDev := float64(len(a.PseudoMovesColor(ColorWhite)))
	bDev := float64(len(a.PseudoMovesColor(ColorBlack)))

	wQueen := float64(len(a.gen.PieceMoves(a.Board(), Queen, ColorWhite)))
	bQueen := float64(len(a.gen.PieceMoves(a.Board(), Queen, ColorBlack)))

	return wScore - bScore + (wDev-bDev)*0.001 + 0.001*bQueen/wQueen
}

/*
Perft counts the leaf nodes of the legal move tree at the given depth, the
canonical correctness harness for a move generator.  The second return
value accumulates the time spent inside pseudo-legal generation alone.
*/
func (a *MoveAPI) Perft(depth uint64) (uint64, time.Duration) {
	if depth == 0 {
		return 1, 0
	}

	if depth == 1 {
		now := time.Now()
		pseudoLegal := a.gen.Moves(a.Board())
		dur := time.Since(now)

		attacker := a.Board().Turn.Opposite()

		var count uint64
		for _, m := range pseudoLegal {
			a.exec.ExecMove(m)
			if !a.isCheck(attacker) {
				count++
			}
			a.exec.UndoMove()
		}
		return count, dur
	}

	now := time.Now()
	pseudoLegal := a.gen.Moves(a.Board())
	dur := time.Since(now)

	attacker := a.Board().Turn.Opposite()

	var out uint64
	for _, m := range pseudoLegal {
		a.exec.ExecMove(m)

		if !a.isCheck(attacker) {
			nodes, genTime := a.Perft(depth - 1)
			out += nodes
			dur += genTime
		}

		a.exec.UndoMove()
	}
	return out, dur
}

// TimedPerft runs Perft and additionally measures the total wall time, so
// drivers can report both the full and the generation-only timings.
func TimedPerft(a *MoveAPI, depth uint64) (nodes uint64, elapsed, pseudoGen time.Duration) {
	now := time.Now()
	nodes, pseudoGen = a.Perft(depth)
	return nodes, time.Since(now), pseudoGen
}

// PerftDivide returns one line per legal root move with the leaf count of
// its subtree and the FEN it leads to.  Debugging helper for hunting down
// invalid branches in the move generation tree.
func (a *MoveAPI) PerftDivide(depth uint64) []string {
	var out []string

	for _, m := range a.LegalMoves() {
		a.ExecMove(m)
		nodes, _ := a.Perft(depth - 1)
		out = append(out, m.String()+" :: "+
			strconv.FormatUint(nodes, 10)+" ___ "+a.Board().FEN())
		a.UndoMove()
	}
	return out
}
