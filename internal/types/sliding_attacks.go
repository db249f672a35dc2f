//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import "math/bits"

// hyperbolaQuintessence computes slider attacks along a single line (file,
// diagonal or anti-diagonal) given the line's occupancy mask. See
// https://www.chessprogramming.org/Hyperbola_Quintessence
func hyperbolaQuintessence(sq Square, occupied Bitboard, lineMask Bitboard) Bitboard {
	o := occupied & lineMask
	s := sqBb[sq]
	forward := o - 2*s
	reverseOcc := Bitboard(bits.Reverse64(uint64(o)))
	reverseSq := Bitboard(bits.Reverse64(uint64(s)))
	reverse := reverseOcc - 2*reverseSq
	return (forward ^ Bitboard(bits.Reverse64(uint64(reverse)))) & lineMask
}

// diagUpAttacks returns slider attacks along sq's A1-H8-oriented diagonal.
func diagUpAttacks(sq Square, occupied Bitboard) Bitboard {
	return hyperbolaQuintessence(sq, occupied, sqDiagUpBb[sq])
}

// diagDownAttacks returns slider attacks along sq's H1-A8-oriented diagonal.
func diagDownAttacks(sq Square, occupied Bitboard) Bitboard {
	return hyperbolaQuintessence(sq, occupied, sqDiagDownBb[sq])
}

// fileAttacks returns slider attacks along sq's file.
func fileAttacks(sq Square, occupied Bitboard) Bitboard {
	return hyperbolaQuintessence(sq, occupied, sqToFileBb[sq])
}

// rankAttacks returns slider attacks along sq's rank. Rank occupancy is
// already a contiguous byte within the 64-bit board, so - unlike the file
// and diagonal lines - no reorientation is needed: a direct lookup in the
// precomputed movesRank table is the Kindergarten bitboard technique
// reduced to its simplest case. See https://www.chessprogramming.org/Kindergarten_Bitboards
func rankAttacks(sq Square, occupied Bitboard) Bitboard {
	occByte := (occupied >> (8 * Bitboard(sq.RankOf()))) & 0xFF
	return movesRank[sq][occByte]
}

// bishopAttacks returns all squares attacked by a bishop on sq given occupied.
func bishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return diagUpAttacks(sq, occupied) | diagDownAttacks(sq, occupied)
}

// rookAttacks returns all squares attacked by a rook on sq given occupied.
func rookAttacks(sq Square, occupied Bitboard) Bitboard {
	return fileAttacks(sq, occupied) | rankAttacks(sq, occupied)
}
