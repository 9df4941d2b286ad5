package tomato

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func containsMove(moves []Move, m Move) bool {
	for _, lm := range moves {
		if lm == m {
			return true
		}
	}
	return false
}

func TestInitialPositionMoves(t *testing.T) {
	api := NewMoveAPI(StartingBoard)

	legal := api.LegalMoves()
	assert.Len(t, legal, 20)

	// 16 pawn moves and 4 knight moves, nothing else.
	assert.True(t, containsMove(legal, move("e2", "e4", Pawn)))
	assert.True(t, containsMove(legal, move("g1", "f3", Knight)))
	assert.False(t, containsMove(legal, move("e1", "e2", King)))
}

func TestPawnDoublePushBlocked(t *testing.T) {
	g := NewMoveGenerator()

	// A piece on e3 blocks both the single and the double push.
	b := ParseFEN("4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1")
	assert.Zero(t, g.pawnMoveBitboard(&b, SE2, ColorWhite)&(E3|E4))

	// A piece on e4 blocks only the double push.
	b = ParseFEN("4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1")
	assert.Equal(t, E3, g.pawnMoveBitboard(&b, SE2, ColorWhite)&(E3|E4))
}

func TestSliderBlockedByPieces(t *testing.T) {
	g := NewMoveGenerator()
	b := ParseFEN("4k3/8/8/8/1n2R1P1/8/8/4K3 w - - 0 1")

	dests := g.slidingMoveBitboard(&b, SE4, Rook, ColorWhite)

	// West: up to and including the enemy knight on b4.
	assert.NotZero(t, dests&B4, "capture the blocker")
	assert.Zero(t, dests&A4, "no squares behind the blocker")
	// East: up to but excluding the friendly pawn on g4.
	assert.NotZero(t, dests&F4)
	assert.Zero(t, dests&G4, "friendly pieces are not destinations")
	// The file is open except the king's first-rank square.
	assert.NotZero(t, dests&E8)
	assert.NotZero(t, dests&E2)
}

func TestPromotionExpansion(t *testing.T) {
	api := NewMoveAPI("8/P7/8/8/8/8/8/k6K w - - 0 1")

	legal := api.LegalMoves()

	var promotions []Move
	for _, m := range legal {
		if m.Start == AlgebraicToPosition("a7") {
			promotions = append(promotions, m)
		}
	}

	require.Len(t, promotions, 4)
	for _, piece := range PromotionPieces {
		assert.True(t, containsMove(promotions, Move{
			Start:     AlgebraicToPosition("a7"),
			End:       AlgebraicToPosition("a8"),
			Piece:     Pawn,
			Promotion: piece,
		}), piece.String())
	}
}

func TestEnPassantGeneration(t *testing.T) {
	api := NewMoveAPI("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")

	// The en passant move targets the captured pawn's square d5.
	ep := move("e5", "d5", Pawn)
	require.True(t, containsMove(api.LegalMoves(), ep))

	api.ExecMove(ep)
	b := api.Board()
	assert.NotZero(t, GetBit(b.Pawns&b.WhitePieces, SD6))
	assert.Zero(t, GetBit(b.AllPieces(), SD5))
	assert.Zero(t, b.EPTarget)
}

// En passant is not available to a pawn that is not directly adjacent to
// the double-pushed one.
func TestEnPassantRequiresAdjacency(t *testing.T) {
	api := NewMoveAPI("rnbqkbnr/ppp1pppp/8/3p2P1/8/8/PPPPPP1P/RNBQKBNR w KQkq d6 0 2")

	for _, m := range api.LegalMoves() {
		assert.NotEqual(t, AlgebraicToPosition("d5"), m.End)
	}
}

func TestCastlingGeneration(t *testing.T) {
	testcases := []struct {
		name        string
		fen         string
		shortCastle bool
		longCastle  bool
	}{
		{
			"both castles on an empty back rank",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			true, true,
		},
		{
			"rook on e4 checks the king, no castling",
			"r3k2r/8/8/8/4r3/8/8/R3K2R w KQkq - 0 1",
			false, false,
		},
		{
			"rook on f4 attacks a traversed square",
			"r3k2r/8/8/8/5r2/8/8/R3K2R w KQkq - 0 1",
			false, true,
		},
		{
			"rook on a4 attacks only the castling rook",
			"r3k2r/8/8/8/r7/8/8/R3K2R w KQkq - 0 1",
			true, true,
		},
		{
			"rook on b4 attacks the untraversed b1 square",
			"r3k2r/8/8/8/1r6/8/8/R3K2R w KQkq - 0 1",
			true, true,
		},
		{
			"piece on b1 blocks the long castle",
			"r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1",
			true, false,
		},
		{
			"piece on f1 blocks the short castle",
			"r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1",
			false, true,
		},
		{
			"no rights, no castles",
			"r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1",
			false, false,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			api := NewMoveAPI(tc.fen)
			legal := api.LegalMoves()

			assert.Equal(t, tc.shortCastle,
				containsMove(legal, move("e1", "g1", King)), "short castle")
			assert.Equal(t, tc.longCastle,
				containsMove(legal, move("e1", "c1", King)), "long castle")
		})
	}
}

func TestKingCannotRetreatAlongCheckingRay(t *testing.T) {
	// The rook checks along the e-file; e2 is shadowed by the king itself
	// and must still be rejected.
	api := NewMoveAPI("4r3/8/8/8/8/8/8/4K3 w - - 0 1")

	legal := api.LegalMoves()
	assert.False(t, containsMove(legal, move("e1", "e2", King)))
	assert.True(t, containsMove(legal, move("e1", "d2", King)))
	assert.True(t, containsMove(legal, move("e1", "f1", King)))
}

func TestLegalMovesFilterPins(t *testing.T) {
	// The d2 knight is pinned against the king by the d8 rook.
	api := NewMoveAPI("3rk3/8/8/8/8/8/3N4/3K4 w - - 0 1")

	for _, m := range api.LegalMoves() {
		assert.NotEqual(t, Knight, m.Piece, "pinned knight moved: %s", m)
	}
}

// Every legal move, once applied, must leave the mover's king unattacked.
func TestLegalMovesNeverLeaveKingAttacked(t *testing.T) {
	fens := []string{
		StartingBoard,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 0",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 0",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 6",
	}

	for _, fen := range fens {
		api := NewMoveAPI(fen)
		attacker := api.Board().Turn.Opposite()

		for _, m := range api.LegalMoves() {
			api.ExecMove(m)
			assert.False(t, api.isCheck(attacker), "%s leaves the king attacked", m)
			api.UndoMove()
		}
	}
}

func TestIsAttacked(t *testing.T) {
	g := NewMoveGenerator()
	b := ParseFEN(StartingBoard)

	testcases := []struct {
		name     string
		attacker Color
		square   int
		expected bool
	}{
		{"pawns cover e3", ColorWhite, SE3, true},
		{"knight covers f3", ColorWhite, SF3, true},
		{"nobody reaches e4", ColorWhite, SE4, false},
		{"king covers e2", ColorWhite, SE2, true},
		{"black pawns cover h6", ColorBlack, SH6, true},
		{"black cannot reach e4", ColorBlack, SE4, false},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, g.IsAttacked(&b, tc.attacker, tc.square))
		})
	}
}

// IsAttacked must agree with the move generator: a square is attacked
// exactly when some enemy move lands on it (pawn pushes excluded, pawn
// captures included).
func TestIsAttackedMatchesSliderMoves(t *testing.T) {
	g := NewMoveGenerator()
	b := ParseFEN("8/8/8/3q4/8/8/8/7K w - - 0 1")

	queenMoves := g.slidingMoveBitboard(&b, SD5, Queen, ColorBlack)
	for sq := 0; sq < 64; sq++ {
		assert.Equal(t, GetBit(queenMoves, sq) != 0, g.IsAttacked(&b, ColorBlack, sq),
			"square %d", sq)
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	api := NewMoveAPI("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 0")

	for b.Loop() {
		api.LegalMoves()
	}
}
