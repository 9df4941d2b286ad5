// types.go contains declarations of custom types and predefined constants.

package tomato

import "strings"

// Color represents a piece color.
type Color int

const (
	ColorWhite Color = iota
	ColorBlack
)

// Opposite returns the opponent's color.
func (c Color) Opposite() Color { return c ^ 1 }

func (c Color) String() string {
	if c == ColorWhite {
		return "White"
	}
	return "Black"
}

// Piece represents a piece kind, without its color.
type Piece int

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	// To distinguish the absence of a promotion piece.
	PieceNone Piece = -1
)

// PieceTypes lists every piece kind in generation order.
var PieceTypes = [6]Piece{Pawn, Knight, Bishop, Rook, Queen, King}

func (p Piece) String() string {
	switch p {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return "None"
}

// PieceValue returns the material value of a piece kind.
func PieceValue(p Piece) float64 {
	switch p {
	case Pawn:
		return 1
	case Knight:
		return 3
	case Bishop:
		return 3.1
	case Rook:
		return 5
	case Queen:
		return 9
	}
	return 0
}

// PieceDevValue returns the development value of a piece kind, used
// during move ordering.
func PieceDevValue(p Piece) float64 {
	switch p {
	case Pawn:
		return 3
	case Knight:
		return 4
	case Bishop:
		return 5
	case Rook:
		return 2
	case Queen:
		return 1
	}
	return 0
}

// Castle represents a castling side.  Short is king-side, long is queen-side.
type Castle int

const (
	CastleShort Castle = iota
	CastleLong
)

/*
Move represents a chess move.  Start and end squares are represented as
positions, the moving piece is carried alongside them, and Promotion holds
the pawn's new kind or [PieceNone].

Two moves are equal exactly when all four fields are equal.
*/
type Move struct {
	Start     Position
	End       Position
	Piece     Piece
	Promotion Piece
}

// NewMove creates a move without a promotion.
func NewMove(start, end Position, piece Piece) Move {
	return Move{Start: start, End: end, Piece: piece, Promotion: PieceNone}
}

// PromotionPieces lists the allowed promotion kinds in expansion order.
var PromotionPieces = [4]Piece{Queen, Knight, Rook, Bishop}

// MakePromotions returns the four pawn moves between the given squares,
// one per promotion kind.
func MakePromotions(start, end Position) []Move {
	out := make([]Move, 0, len(PromotionPieces))
	for _, piece := range PromotionPieces {
		out = append(out, Move{Start: start, End: end, Piece: Pawn, Promotion: piece})
	}
	return out
}

// String encodes the move in long algebraic notation.
// Examples: e2e4, e7e5, e1g1 (white short castling), e7e8q (promotion).
func (m Move) String() string {
	var b strings.Builder
	b.Grow(5)

	b.WriteString(m.Start.String())
	b.WriteString(m.End.String())

	switch m.Promotion {
	case Knight:
		b.WriteByte('n')
	case Bishop:
		b.WriteByte('b')
	case Rook:
		b.WriteByte('r')
	case Queen:
		b.WriteByte('q')
	}

	return b.String()
}

/*
Square indices of the chessboard.  The board is indexed row-major from the
top-left corner as seen from White's side: A8 is 0, H8 is 7, A1 is 56, and
H1 is 63.
*/
const (
	SA8 int = iota
	SB8
	SC8
	SD8
	SE8
	SF8
	SG8
	SH8
	SA7
	SB7
	SC7
	SD7
	SE7
	SF7
	SG7
	SH7
	SA6
	SB6
	SC6
	SD6
	SE6
	SF6
	SG6
	SH6
	SA5
	SB5
	SC5
	SD5
	SE5
	SF5
	SG5
	SH5
	SA4
	SB4
	SC4
	SD4
	SE4
	SF4
	SG4
	SH4
	SA3
	SB3
	SC3
	SD3
	SE3
	SF3
	SG3
	SH3
	SA2
	SB2
	SC2
	SD2
	SE2
	SF2
	SG2
	SH2
	SA1
	SB1
	SC1
	SD1
	SE1
	SF1
	SG1
	SH1
)

// Bitboards of each square.  Used to simplify tests.
const (
	A8 uint64 = 1 << (63 - iota)
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)
