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

import (
	"fmt"
	"strings"
)

// Move is a 16bit unsigned int type for encoding chess moves as a primitive
// data type.
//  MoveNone Move = 0
//  BITMAP 16-bit
//  |-from ------|-flag ----|-to ---------|
//  1 1 1 1 1 1   1 1 1 1    0 0 0 0 0 0
//  5 4 3 2 1 0   9 8 7 6    5 4 3 2 1 0
//  --------------------------------------
//                           1 1 1 1 1 1    to
//                1 1 1 1                   flag nibble
//  1 1 1 1 1 1                             from
type Move uint16

// MoveFlag is the 4-bit nibble describing what kind of move this is.
type MoveFlag uint8

// Move flag nibble values. Promotions are encoded as 1ppX where pp selects
// the promotion piece (N=00 B=01 R=10 Q=11) and X is the capture bit.
const (
	FlagQuiet          MoveFlag = 0x0 // 0000
	FlagDoublePawnPush MoveFlag = 0x1 // 0001
	FlagCastleKing     MoveFlag = 0x2 // 0010 O-O
	FlagCastleQueen    MoveFlag = 0x3 // 0011 O-O-O
	FlagCapture        MoveFlag = 0x4 // 0100
	FlagEpCapture      MoveFlag = 0x5 // 0101
	flagReserved1      MoveFlag = 0x6 // reserved
	flagReserved2      MoveFlag = 0x7 // reserved
	FlagPromoN         MoveFlag = 0x8 // 1000
	FlagPromoNCapture  MoveFlag = 0x9 // 1001
	FlagPromoB         MoveFlag = 0xA // 1010
	FlagPromoBCapture  MoveFlag = 0xB // 1011
	FlagPromoR         MoveFlag = 0xC // 1100
	FlagPromoRCapture  MoveFlag = 0xD // 1101
	FlagPromoQ         MoveFlag = 0xE // 1110
	FlagPromoQCapture  MoveFlag = 0xF // 1111
)

const (
	// MoveNone empty non valid move
	MoveNone Move = 0
)

const (
	toShift   uint = 0
	flagShift uint = 6
	fromShift uint = 10

	squareMask Move = 0x3F
	toMask          = squareMask
	flagMask   Move = 0xF << flagShift
	fromMask   Move = squareMask << fromShift
)

// promoFlagToPieceType maps a promotion flag (with the capture bit masked
// off) to the promoted-to piece type.
var promoFlagToPieceType = map[MoveFlag]PieceType{
	FlagPromoN: Knight,
	FlagPromoB: Bishop,
	FlagPromoR: Rook,
	FlagPromoQ: Queen,
}

// pieceTypeToPromoFlag is the inverse of promoFlagToPieceType, giving the
// non-capturing promotion flag for a promoted-to piece type.
var pieceTypeToPromoFlag = map[PieceType]MoveFlag{
	Knight: FlagPromoN,
	Bishop: FlagPromoB,
	Rook:   FlagPromoR,
	Queen:  FlagPromoQ,
}

// CreateMove returns an encoded quiet/capture/special Move for a non-promotion.
func CreateMove(from Square, to Square, flag MoveFlag) Move {
	return Move(to)<<toShift | Move(flag)<<flagShift | Move(from)<<fromShift
}

// CreateCastlingMove returns the encoded king move for a castle (kingside or
// queenside, chosen by flag which must be FlagCastleKing or FlagCastleQueen).
func CreateCastlingMove(from Square, to Square, flag MoveFlag) Move {
	return CreateMove(from, to, flag)
}

// CreatePromotionMove returns an encoded promotion move, capture or not, for
// the given promotion piece type (Knight, Bishop, Rook or Queen).
func CreatePromotionMove(from Square, to Square, promType PieceType, capture bool) Move {
	flag := pieceTypeToPromoFlag[promType]
	if capture {
		flag |= 0x1
	}
	return CreateMove(from, to, flag)
}

// To returns the to-Square of the move
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// From returns the from-Square of the move
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// Flag returns the 4-bit move-kind nibble
func (m Move) Flag() MoveFlag {
	return MoveFlag((m & flagMask) >> flagShift)
}

// IsPromotion reports whether the move promotes a pawn
func (m Move) IsPromotion() bool {
	return m.Flag()&0x8 != 0
}

// IsCapture reports whether the move captures an enemy piece, including
// en passant and capturing promotions
func (m Move) IsCapture() bool {
	f := m.Flag()
	return f == FlagCapture || f == FlagEpCapture || (f.IsPromotion() && f&0x1 != 0)
}

// IsPromotion reports whether f is a promotion flag (bit 3 set)
func (f MoveFlag) IsPromotion() bool {
	return f&0x8 != 0
}

// IsEnPassant reports whether the move is an en passant capture
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEpCapture
}

// IsCastling reports whether the move is a castling move
func (m Move) IsCastling() bool {
	return m.Flag() == FlagCastleKing || m.Flag() == FlagCastleQueen
}

// IsDoublePawnPush reports whether the move is a two-square pawn push
func (m Move) IsDoublePawnPush() bool {
	return m.Flag() == FlagDoublePawnPush
}

// PromotionType returns the PieceType the pawn promotes to.
// Must be ignored when the move is not a promotion.
func (m Move) PromotionType() PieceType {
	return promoFlagToPieceType[m.Flag()&0xE]
}

// IsValid checks if the move has valid squares and a non-reserved flag
// nibble. MoveNone is not a valid move in this sense.
func (m Move) IsValid() bool {
	if m == MoveNone {
		return false
	}
	f := m.Flag()
	return m.From().IsValid() && m.To().IsValid() && f != flagReserved1 && f != flagReserved2
}

// String string representation of a move which is UCI compatible plus details
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s  flag:%#x }", m.StringUci(), uint8(m.Flag()))
}

// StringUci string representation of a move which is UCI compatible
func (m Move) StringUci() string {
	if m == MoveNone {
		return "NoMove"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.IsPromotion() {
		os.WriteString(m.PromotionType().Char())
	}
	return os.String()
}

// StringBits returns a string with details of a Move
// E.g. Move { From[001100](e2) To[011100](e4) Flag[0001] (12380) }
func (m Move) StringBits() string {
	return fmt.Sprintf(
		"Move { From[%-0.6b](%s) To[%-0.6b](%s) Flag[%-0.4b] (%d) }",
		m.From(), m.From().String(),
		m.To(), m.To().String(),
		m.Flag(),
		m)
}
