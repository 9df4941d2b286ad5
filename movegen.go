/*
movegen.go implements pseudo-legal move generation and the is-attacked
queries on top of the precalculated move tables.

A pseudo-legal move obeys the movement rules of its piece but may leave the
mover's king in check; the legality filter lives in the move API, which
applies each candidate and asks whether the king ended up attacked.
*/

package tomato

import "math/bits"

const (
	wPawnLastRow int8 = 0
	bPawnLastRow int8 = 7
)

// MoveGenerator produces pseudo-legal moves for a board.  It owns one
// immutable table set, built once in the constructor.
type MoveGenerator struct {
	table *MoveTable
}

// NewMoveGenerator creates a generator with a freshly built table set.
func NewMoveGenerator() *MoveGenerator {
	return &MoveGenerator{table: NewMoveTable()}
}

// Table exposes the generator's move tables.
func (g *MoveGenerator) Table() *MoveTable { return g.table }

/*
pawnMoveBitboard returns the destination squares of a pawn: forward pushes
onto empty squares, diagonal captures, and the en passant destination.

The double push needs a correction after blockers are removed: if the
single-push square was occupied, the double push is unreachable too even
when its own square is free.  Whenever the initial two-target set lost a
square to a blocker, any surviving bit on the fourth or fifth rank is
cleared.
*/
func (g *MoveGenerator) pawnMoveBitboard(b *Board, square int, c Color) uint64 {
	moveBoard := g.table.Pawn(c)[square]
	attackBoard := g.table.PawnAttack(c)[square]

	isFirstMove := CountBits(moveBoard) == 2

	// Remove push targets that have a piece on them.
	moveBoard &^= b.AllPieces()

	if isFirstMove && CountBits(moveBoard) != 2 {
		moveBoard &^= g.table.FourthRank()
	}

	out := moveBoard

	// Add captures of enemy pieces.
	out |= attackBoard & b.Pieces(c.Opposite())

	// En passant is possible only when the double-pushed enemy pawn is
	// directly adjacent: same row, one file off.
	if b.EPTarget != 0 {
		epSquare := bits.LeadingZeros64(b.EPTarget)
		isSameRow := square/BoardSize == epSquare/BoardSize
		diff := square - epSquare
		if isSameRow && (diff == 1 || diff == -1) {
			out |= b.EPTarget
		}
	}

	return out
}

// knightMoveBitboard returns the destination squares of a knight.
func (g *MoveGenerator) knightMoveBitboard(b *Board, square int, c Color) uint64 {
	return g.table.Attacks(Knight)[square] &^ b.Pieces(c)
}

/*
slidingMoveBitboard returns the destination squares of a bishop, rook, or
queen.  Starting from the blocker-free attack pattern, every blocker clears
the ray extending beyond it, so the blocker's own square survives as a
capture target while everything behind it disappears.
*/
func (g *MoveGenerator) slidingMoveBitboard(b *Board, square int, piece Piece, c Color) uint64 {
	attackBoard := g.table.Attacks(piece)[square]

	blockers := b.AllPieces() & attackBoard
	for blockers != 0 {
		attackBoard &^= g.table.Ray(square, PopMSB(&blockers))
	}

	return attackBoard &^ b.Pieces(c)
}

/*
kingMoveBitboard returns the destination squares of a king, castles
included.

Attacked squares are computed with the king removed from the occupancy: the
king must not shadow a sliding attack through its current square, or it
would appear able to retreat along the very ray that checks it.

A castle destination survives only while the right is still set, every
corridor square the king traverses is unattacked and empty, and - on the
long side - the B-file square is empty as well (the king never crosses it,
so it needs no attack check).
*/
func (g *MoveGenerator) kingMoveBitboard(b *Board, square int, c Color) uint64 {
	// Ghost board: the same position without the moving king.
	ghost := *b
	kingBoard := b.ColorPieceBoard(King, c)
	ghost.Kings &^= kingBoard
	ghost.SetColorBoard(c, ghost.Pieces(c)&^kingBoard)

	allPieces := ghost.AllPieces()
	attackBoard := g.table.Attacks(King)[square]

	var castleShort, castleLong uint64
	if b.CastleRight(CastleShort, c) {
		castleShort = g.table.CastleTarget(CastleShort, c)
	}
	if b.CastleRight(CastleLong, c) {
		castleLong = g.table.CastleTarget(CastleLong, c)
	}

	shortSafety := g.table.CastleSafety(CastleShort, c)
	for shortSafety != 0 {
		sq := PopMSB(&shortSafety)
		if g.IsAttacked(&ghost, c.Opposite(), sq) || allPieces&Mask(sq) != 0 {
			castleShort = 0
		}
	}

	longSafety := g.table.CastleSafety(CastleLong, c)
	for longSafety != 0 {
		sq := PopMSB(&longSafety)
		if g.IsAttacked(&ghost, c.Opposite(), sq) || allPieces&Mask(sq) != 0 {
			castleLong = 0
		}
	}

	// The long rook passes over the B-file square, so it must be empty
	// even though the king never touches it.
	inWay := SB1
	if c == ColorBlack {
		inWay = SB8
	}
	if allPieces&Mask(inWay) != 0 {
		castleLong = 0
	}

	// Remove destinations the enemy attacks.
	adjacent := attackBoard
	for adjacent != 0 {
		sq := PopMSB(&adjacent)
		if g.IsAttacked(&ghost, c.Opposite(), sq) {
			attackBoard = ClearBit(attackBoard, sq)
		}
	}

	attackBoard |= castleShort | castleLong

	return attackBoard &^ b.Pieces(c)
}

// PieceMoveBitboard returns the destination bitboard of a single piece of
// the given kind and color standing on the given square.
func (g *MoveGenerator) PieceMoveBitboard(b *Board, piece Piece, square int, c Color) uint64 {
	switch piece {
	case Pawn:
		return g.pawnMoveBitboard(b, square, c)
	case Knight:
		return g.knightMoveBitboard(b, square, c)
	case Bishop, Rook, Queen:
		return g.slidingMoveBitboard(b, square, piece, c)
	}
	return g.kingMoveBitboard(b, square, c)
}

/*
PieceMoves returns the pseudo-legal moves of every piece of the given kind
and color.  A pawn reaching its last rank expands into four moves, one per
promotion kind.
*/
func (g *MoveGenerator) PieceMoves(b *Board, piece Piece, c Color) []Move {
	var out []Move

	lastRow := wPawnLastRow
	if c == ColorBlack {
		lastRow = bPawnLastRow
	}

	pieces := b.ColorPieceBoard(piece, c)
	for pieces != 0 {
		square := PopMSB(&pieces)
		start := PositionFromIndex(square)

		destinations := g.PieceMoveBitboard(b, piece, square, c)
		for destinations != 0 {
			end := PositionFromIndex(PopMSB(&destinations))

			if piece == Pawn && end.Row == lastRow {
				out = append(out, MakePromotions(start, end)...)
			} else {
				out = append(out, NewMove(start, end, piece))
			}
		}
	}
	return out
}

// MovesForColor returns every pseudo-legal move of the given color.
func (g *MoveGenerator) MovesForColor(b *Board, c Color) []Move {
	var out []Move
	for _, piece := range PieceTypes {
		out = append(out, g.PieceMoves(b, piece, c)...)
	}
	return out
}

// Moves returns every pseudo-legal move of the side to move.
func (g *MoveGenerator) Moves(b *Board) []Move {
	return g.MovesForColor(b, b.Turn)
}

// MoveCount returns the number of pseudo-legal moves of the given color.
func (g *MoveGenerator) MoveCount(b *Board, c Color) int {
	return len(g.MovesForColor(b, c))
}

/*
IsAttacked reports whether any piece of the attacking color attacks the
given square.  Attack sets are symmetric, so the test places each friendly
piece kind on the square and intersects its destinations with the
attacker's pieces of that kind; for pawns the friendly-colored attack table
is the mirror of the attacker's.
*/
func (g *MoveGenerator) IsAttacked(b *Board, attacker Color, square int) bool {
	friendly := attacker.Opposite()

	rookMask := g.slidingMoveBitboard(b, square, Rook, friendly)
	bishopMask := g.slidingMoveBitboard(b, square, Bishop, friendly)
	knightMask := g.knightMoveBitboard(b, square, friendly)
	kingMask := g.table.Attacks(King)[square]
	pawnMask := g.table.PawnAttack(friendly)[square]

	return b.ColorPieceBoard(Queen, attacker)&(rookMask|bishopMask) != 0 ||
		b.ColorPieceBoard(Rook, attacker)&rookMask != 0 ||
		b.ColorPieceBoard(Bishop, attacker)&bishopMask != 0 ||
		b.ColorPieceBoard(Knight, attacker)&knightMask != 0 ||
		b.ColorPieceBoard(Pawn, attacker)&pawnMask != 0 ||
		b.ColorPieceBoard(King, attacker)&kingMask != 0
}

// IsAttackedKing reports whether the attacking color attacks the enemy
// king.
func (g *MoveGenerator) IsAttackedKing(b *Board, attacker Color) bool {
	kingBoard := b.ColorPieceBoard(King, attacker.Opposite())
	return g.IsAttacked(b, attacker, bits.LeadingZeros64(kingBoard))
}
