/*
Package tomato implements a bitboard chess engine: precalculated move
tables, pseudo-legal move generation with legality filtering, reversible
move execution over a snapshot history, FEN parsing and serialization,
perft validation, and an alpha-beta search agent.

The board stores the 64 squares with A8 in the most significant bit; see
bitboard.go for the layout and the enumeration primitives built on it.
*/
package tomato
