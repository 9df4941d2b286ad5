/*
fen.go implements conversions between Forsyth-Edwards Notation strings and
the Board structure.  Functions in this file expect the passed FEN strings
to be valid and panic if they are not: a malformed FEN is a fatal
configuration error, not a recoverable one.

Each FEN string consists of six space-separated fields:
 1. Piece placement, ranks from the eighth down, "/" separated, digits 1-8
    encoding runs of empty squares.
 2. Active color: "w" or "b".
 3. Castling rights: a subset of "KQkq", or "-".
 4. En passant target square in algebraic notation, or "-".
 5. Fullmove counter.
 6. Halfmove counter.

NOTE: fields 5 and 6 are the reverse of standard FEN.  The order is kept for
bit-exact interoperability with the positions this engine has always
produced.
*/

package tomato

import (
	"math/bits"
	"strconv"
	"strings"
)

// FEN piece letters.  White pieces are uppercase.
const (
	fenWPawn   = 'P'
	fenWKnight = 'N'
	fenWBishop = 'B'
	fenWRook   = 'R'
	fenWQueen  = 'Q'
	fenWKing   = 'K'

	fenBPawn   = 'p'
	fenBKnight = 'n'
	fenBBishop = 'b'
	fenBRook   = 'r'
	fenBQueen  = 'q'
	fenBKing   = 'k'

	fenRowEnd = '/'

	fenWTurn = 'w'
	fenBTurn = 'b'

	fenWCastleShort = 'K'
	fenWCastleLong  = 'Q'
	fenBCastleShort = 'k'
	fenBCastleLong  = 'q'

	// Indicator for missing fields.
	fenNone = '-'
)

// StartingBoard is the FEN string of the initial chess position.
const StartingBoard = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenToPiece converts a FEN letter into a piece kind and color.
func fenToPiece(ch byte) (Piece, Color) {
	c := ColorBlack
	if ch >= 'A' && ch <= 'Z' {
		c = ColorWhite
		ch += 'a' - 'A'
	}

	switch ch {
	case fenBPawn:
		return Pawn, c
	case fenBKnight:
		return Knight, c
	case fenBBishop:
		return Bishop, c
	case fenBRook:
		return Rook, c
	case fenBQueen:
		return Queen, c
	}
	return King, c
}

// pieceToFEN converts a piece kind and color into its FEN letter.
func pieceToFEN(piece Piece, c Color) byte {
	var ch byte
	switch piece {
	case Pawn:
		ch = fenBPawn
	case Knight:
		ch = fenBKnight
	case Bishop:
		ch = fenBBishop
	case Rook:
		ch = fenBRook
	case Queen:
		ch = fenBQueen
	case King:
		ch = fenBKing
	}
	if c == ColorWhite {
		ch -= 'a' - 'A'
	}
	return ch
}

/*
ParseFEN parses a FEN string into a Board.  It is the caller's
responsibility to validate the string first.

The en passant field carries the passed-over square at the FEN boundary
("d6" after d7d5); internally the target is stored as the double-pushed
pawn's own square, so the parsed square is shifted one rank toward the pawn.
*/
func ParseFEN(fen string) Board {
	fields := strings.Fields(fen)
	if len(fields) < 6 {
		panic("fen: expected six fields")
	}

	var b Board

	// Field 1: piece placement.
	var row, col int8
	for i := 0; i < len(fields[0]); i++ {
		ch := fields[0][i]

		if ch == fenRowEnd {
			row++
			col = 0
		} else if ch >= '1' && ch <= '8' {
			col += int8(ch - '0')
		} else {
			piece, c := fenToPiece(ch)
			square := NewPosition(row, col).Index()

			b.SetPieceBoard(piece, PutBit(b.PieceBoard(piece), square))
			b.SetColorBoard(c, PutBit(b.Pieces(c), square))
			col++
		}
	}

	// Field 2: active color.  White by default.
	if fields[1] == string(fenBTurn) {
		b.Turn = ColorBlack
	}

	// Field 3: castling rights.
	for i := 0; i < len(fields[2]); i++ {
		switch fields[2][i] {
		case fenWCastleShort:
			b.WhiteCastleShort = true
		case fenWCastleLong:
			b.WhiteCastleLong = true
		case fenBCastleShort:
			b.BlackCastleShort = true
		case fenBCastleLong:
			b.BlackCastleLong = true
		}
	}

	// Field 4: en passant target square.
	if fields[3] != string(fenNone) {
		target := AlgebraicToPosition(fields[3])
		// Shift the passed-over square onto the pawn itself: rank 6
		// becomes rank 5, rank 3 becomes rank 4.
		if target.Row == 2 {
			target.Row = 3
		} else if target.Row == 5 {
			target.Row = 4
		}
		b.EPTarget = Mask(target.Index())
	}

	// Fields 5 and 6: fullmove, then halfmove.
	fullmove, err := strconv.ParseUint(fields[4], 10, 16)
	if err != nil {
		panic("fen: cannot parse fullmove counter: " + err.Error())
	}
	b.FullmoveClock = uint16(fullmove)

	halfmove, err := strconv.ParseUint(fields[5], 10, 16)
	if err != nil {
		panic("fen: cannot parse halfmove counter: " + err.Error())
	}
	b.HalfmoveClock = uint16(halfmove)

	return b
}

// FEN serializes the board into a FEN string, inverting every conversion
// performed by [ParseFEN].
func (b *Board) FEN() string {
	var fen strings.Builder
	fen.Grow(64)

	// Field 1: piece placement.
	squares := b.charRepresentation()
	for row := 0; row < BoardSize; row++ {
		empty := byte(0)
		for col := 0; col < BoardSize; col++ {
			if squares[row][col] == emptyChar {
				empty++
				continue
			}
			if empty != 0 {
				fen.WriteByte('0' + empty)
				empty = 0
			}
			fen.WriteByte(squares[row][col])
		}
		if empty != 0 {
			fen.WriteByte('0' + empty)
		}
		if row != BoardSize-1 {
			fen.WriteByte(fenRowEnd)
		}
	}
	fen.WriteByte(' ')

	// Field 2: active color.
	if b.Turn == ColorWhite {
		fen.WriteByte(fenWTurn)
	} else {
		fen.WriteByte(fenBTurn)
	}
	fen.WriteByte(' ')

	// Field 3: castling rights.
	canCastle := false
	if b.WhiteCastleShort {
		fen.WriteByte(fenWCastleShort)
		canCastle = true
	}
	if b.WhiteCastleLong {
		fen.WriteByte(fenWCastleLong)
		canCastle = true
	}
	if b.BlackCastleShort {
		fen.WriteByte(fenBCastleShort)
		canCastle = true
	}
	if b.BlackCastleLong {
		fen.WriteByte(fenBCastleLong)
		canCastle = true
	}
	if !canCastle {
		fen.WriteByte(fenNone)
	}
	fen.WriteByte(' ')

	// Field 4: en passant target, converted back to the passed-over square.
	if b.EPTarget == 0 {
		fen.WriteByte(fenNone)
	} else {
		target := PositionFromIndex(bits.LeadingZeros64(b.EPTarget))
		if target.Row == 3 {
			target.Row = 2
		} else if target.Row == 4 {
			target.Row = 5
		}
		fen.WriteString(target.String())
	}
	fen.WriteByte(' ')

	// Fields 5 and 6: fullmove, then halfmove.
	fen.WriteString(strconv.FormatUint(uint64(b.FullmoveClock), 10))
	fen.WriteByte(' ')
	fen.WriteString(strconv.FormatUint(uint64(b.HalfmoveClock), 10))

	return fen.String()
}
