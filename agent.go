/*
agent.go implements the move-choosing agents: a uniform random baseline and
the alpha-beta searcher.  Both share the single [Agent] capability so a
frontend can swap strategies without caring which one it drives.
*/

package tomato

import (
	"math/rand/v2"
	"sort"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("tomato")

// Agent chooses a move for the side to move of a game.  The second return
// value is false when no legal move exists.
type Agent interface {
	ChooseMove(g *ChessGame) (Move, bool)
}

// RandomAgent plays a uniformly random legal move.
type RandomAgent struct{}

// NewRandomAgent creates a random agent.
func NewRandomAgent() *RandomAgent { return &RandomAgent{} }

func (a *RandomAgent) ChooseMove(g *ChessGame) (Move, bool) {
	possibleMoves := g.GetLegalMoves()
	if len(possibleMoves) == 0 {
		return Move{}, false
	}
	return possibleMoves[rand.IntN(len(possibleMoves))], true
}

// Number of recent cutoff moves remembered per depth.
const goodMoveCount = 2

// Score window of the search.  The minimum doubles as the sentinel value of
// a node with no legal moves.
const (
	minScore = -100000.0
	maxScore = 100000.0
)

/*
TomatoAgent searches with negamax and alpha-beta pruning.

goodIdeas is a tiny per-depth FIFO of moves that recently produced a beta
cutoff; ordering consults it first, which tends to reproduce the cutoff
early in sibling nodes.  Prunes and Count expose how often the search cut
off and how many nodes it visited.
*/
type TomatoAgent struct {
	goodIdeas [][]Move
	maxDepth  int

	Prunes int
	Count  int
}

// NewTomatoAgent creates a searcher that evaluates leaves at the given
// depth.
func NewTomatoAgent(maxDepth int) *TomatoAgent {
	return &TomatoAgent{
		goodIdeas: make([][]Move, maxDepth+2),
		maxDepth:  maxDepth,
	}
}

func (a *TomatoAgent) ChooseMove(g *ChessGame) (Move, bool) {
	color := 1.0
	if g.TurnColor() == ColorBlack {
		color = -1.0
	}

	if len(g.GetLegalMoves()) == 0 {
		return Move{}, false
	}

	// The search drives its own move API over a copy of the position, so
	// the game itself is never mutated while exploring.
	moveAPI := NewMoveAPI(g.FEN())

	return a.chooseBestMove(moveAPI, color)
}

func (a *TomatoAgent) chooseBestMove(moveAPI *MoveAPI, color float64) (Move, bool) {
	value, best, ok := a.evaluateMove(moveAPI, minScore, maxScore, 1, 0)
	log.Infof("Prediction: %v", value)
	return best, ok
}

/*
evaluateMove is the negamax recursion.  It returns the value of the node
from the perspective of the side encoded in color, together with the best
move when the node is not a leaf.

A node past the depth limit evaluates statically; a node with no legal
moves returns the minimum sentinel, whether it is mate or stalemate.
*/
func (a *TomatoAgent) evaluateMove(moveAPI *MoveAPI, alpha, beta, color float64,
	depth int) (float64, Move, bool) {

	if depth >= a.maxDepth {
		return -moveAPI.Evaluation() * color, Move{}, false
	}

	moves := moveAPI.LegalMoves()
	if len(moves) == 0 {
		return minScore, Move{}, false
	}
	moves = a.orderMoves(moveAPI, moves, color, depth)

	bestValue := minScore
	bestMove := moves[0]

	for _, m := range moves {
		moveAPI.ExecMove(m)
		value, _, _ := a.evaluateMove(moveAPI, -beta, -alpha, -color, depth+1)
		value = -value
		moveAPI.UndoMove()
		a.Count++

		if value > bestValue {
			bestValue = value
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				a.Prunes++
				a.rememberGoodIdea(depth, m)
				break
			}
			bestMove = m
		}
	}

	return bestValue, bestMove, true
}

// rememberGoodIdea pushes a cutoff move into the per-depth FIFO, evicting
// the oldest entry when the queue is full.
func (a *TomatoAgent) rememberGoodIdea(depth int, m Move) {
	a.goodIdeas[depth] = append(a.goodIdeas[depth], m)
	if len(a.goodIdeas[depth]) > goodMoveCount {
		a.goodIdeas[depth] = a.goodIdeas[depth][1:]
	}
}

func (a *TomatoAgent) isGoodIdea(depth int, m Move) bool {
	for _, idea := range a.goodIdeas[depth] {
		if idea == m {
			return true
		}
	}
	return false
}

// scoredMove carries the ordering attributes of one candidate move.
type scoredMove struct {
	chessMove  Move
	boardValue float64

	isGoodIdea      float64
	freedomValue    float64
	aggressionValue float64
	pieceValue      float64
}

/*
compare ranks two scored moves by (isGoodIdea, boardValue, aggressionValue,
freedomValue), in that order.  A NaN attribute never decides, it falls
through to the next key, mirroring a partial comparison.  pieceValue is
carried along but takes no part in the ranking.
*/
func (s *scoredMove) compare(other *scoredMove) int {
	if c := comparePartial(s.isGoodIdea, other.isGoodIdea); c != 0 {
		return c
	}
	if c := comparePartial(s.boardValue, other.boardValue); c != 0 {
		return c
	}
	if c := comparePartial(s.aggressionValue, other.aggressionValue); c != 0 {
		return c
	}
	return comparePartial(s.freedomValue, other.freedomValue)
}

func comparePartial(x, y float64) int {
	switch {
	case x > y:
		return 1
	case x < y:
		return -1
	}
	return 0
}

/*
orderMoves sorts the candidates most promising first.  Every candidate is
applied, scored with the position it leads to, and undone.
*/
func (a *TomatoAgent) orderMoves(moveAPI *MoveAPI, moves []Move, color float64,
	depth int) []Move {

	sideColor, oppColor := ColorBlack, ColorWhite
	if color < 0 {
		sideColor, oppColor = ColorWhite, ColorBlack
	}

	ordered := make([]scoredMove, 0, len(moves))

	for _, m := range moves {
		moveAPI.ExecMove(m)

		boardValue := color * -moveAPI.Evaluation()
		freedomValue := float64(moveAPI.PieceMoveCount(sideColor))
		aggressionValue := freedomValue - float64(moveAPI.PieceMoveCount(oppColor))
		pieceValue := PieceDevValue(m.Piece)

		isGoodIdea := 0.0
		if a.isGoodIdea(depth, m) {
			isGoodIdea = 1.0
		}

		ordered = append(ordered, scoredMove{
			chessMove:       m,
			isGoodIdea:      isGoodIdea,
			boardValue:      boardValue,
			pieceValue:      pieceValue,
			aggressionValue: aggressionValue,
			freedomValue:    freedomValue,
		})

		moveAPI.UndoMove()
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].compare(&ordered[j]) > 0
	})

	out := make([]Move, 0, len(ordered))
	for i := range ordered {
		out = append(out, ordered[i].chessMove)
	}
	return out
}
