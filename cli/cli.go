// Package cli renders chess positions and raw bitboards for terminals.
// It is used by the binaries and to visualize the testing process.
package cli

import (
	"strings"

	"github.com/fatih/color"

	"github.com/tomatochess/tomato"
)

// pieceSymbols maps each piece kind to its figurine, white then black.
var pieceSymbols = [2][6]rune{
	{'♙', '♘', '♗', '♖', '♕', '♔'},
	{'♟', '♞', '♝', '♜', '♛', '♚'},
}

var (
	whitePiece = color.New(color.FgHiWhite, color.Bold)
	blackPiece = color.New(color.FgHiCyan)
	coordinate = color.New(color.FgHiBlack)
)

// FormatState renders the 8x8 board state with rank and file coordinates,
// rank 8 on top.
func FormatState(state [8][8]tomato.SquareState) string {
	var b strings.Builder

	for row := 0; row < 8; row++ {
		b.WriteString(coordinate.Sprintf("%d", 8-row))
		b.WriteString("  ")

		for col := 0; col < 8; col++ {
			sq := state[row][col]
			if !sq.Occupied {
				b.WriteString(coordinate.Sprint("."))
			} else if sq.Color == tomato.ColorWhite {
				b.WriteString(whitePiece.Sprintf("%c", pieceSymbols[0][sq.Piece]))
			} else {
				b.WriteString(blackPiece.Sprintf("%c", pieceSymbols[1][sq.Piece]))
			}
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}

	b.WriteString(coordinate.Sprint("   a  b  c  d  e  f  g  h"))
	b.WriteByte('\n')

	return b.String()
}

// FormatBitboard renders a raw bitboard, marking set squares with the given
// piece kind's white figurine.
func FormatBitboard(bitboard uint64, piece tomato.Piece) string {
	var b strings.Builder

	for square := 0; square < 64; square++ {
		if square%8 == 0 {
			b.WriteString(coordinate.Sprintf("%d", 8-square/8))
			b.WriteString("  ")
		}

		if tomato.GetBit(bitboard, square) != 0 {
			b.WriteString(whitePiece.Sprintf("%c", pieceSymbols[0][piece]))
		} else {
			b.WriteString(coordinate.Sprint("."))
		}

		if (square+1)%8 == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteString("  ")
		}
	}

	b.WriteString(coordinate.Sprint("   a  b  c  d  e  f  g  h"))
	b.WriteByte('\n')

	return b.String()
}
