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

package movegen

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chessperft/internal/config"
	"github.com/frankkopp/chessperft/internal/position"
	. "github.com/frankkopp/chessperft/internal/types"
	"github.com/frankkopp/chessperft/internal/util"
)

var out = message.NewPrinter(language.German)

// Perft walks the legal move tree of a position to a fixed depth and
// counts nodes together with a handful of per-ply move statistics
// (captures, en passant, castles, promotions, checks, checkmates).
// The root ply is fanned out across a bounded pool of goroutines, each
// owning its own cloned Position; every ply below the root is walked
// sequentially on the owning goroutine.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         *util.Bool
}

// perftStats is the commutative statistics record accumulated while
// walking the tree. Summing independent perftStats values must produce
// the same total regardless of which subtrees they came from.
type perftStats struct {
	nodes      uint64
	checks     uint64
	checkMates uint64
	captures   uint64
	enpassant  uint64
	castles    uint64
	promotions uint64
}

func (s *perftStats) add(other perftStats) {
	s.nodes += other.nodes
	s.checks += other.checks
	s.checkMates += other.checkMates
	s.captures += other.captures
	s.enpassant += other.enpassant
	s.castles += other.castles
	s.promotions += other.promotions
}

// NewPerft creates a new empty Perft instance
func NewPerft() *Perft {
	return &Perft{stopFlag: util.NewBool(false)}
}

// Stop can be used when perft has been started
// in a goroutine to stop the currently running
// perft test
func (perft *Perft) Stop() {
	perft.stopFlag.Store(true)
}

// StartPerftMulti iterates perft for every depth from startDepth to
// endDepth and reports each one. If this has been started in a
// goroutine it can be interrupted via Stop().
func (perft *Perft) StartPerftMulti(fen string, startDepth int, endDepth int) {
	perft.stopFlag.Store(false)
	for i := startDepth; i <= endDepth; i++ {
		if perft.stopFlag.Load() {
			out.Print("Perft multi depth stopped\n")
			return
		}
		perft.StartPerft(fen, i)
	}
}

// StartPerft runs a single perft at the given depth, forking one task
// per legal root move. If this has been started in a goroutine it can
// be interrupted via Stop().
func (perft *Perft) StartPerft(fen string, depth int) {
	if perft.stopFlag == nil {
		perft.stopFlag = util.NewBool(false)
	}
	perft.stopFlag.Store(false)

	if depth < 0 {
		depth = 0
	}

	perft.resetCounter()
	posPtr, err := position.NewPositionFen(fen)
	if err != nil {
		out.Printf("Could not set up position from FEN %q: %v\n", fen, err)
		return
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	stats, err := perft.run(posPtr, depth)
	elapsed := time.Since(start)

	if err != nil {
		out.Print("Perft stopped\n")
		return
	}

	perft.Nodes = stats.nodes
	perft.CheckCounter = stats.checks
	perft.CheckMateCounter = stats.checkMates
	perft.CaptureCounter = stats.captures
	perft.EnpassantCounter = stats.enpassant
	perft.CastleCounter = stats.castles
	perft.PromotionCounter = stats.promotions

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

// run dispatches the root ply across a bounded worker pool via
// errgroup, each worker operating on its own cloned Position, and
// sums the resulting per-task statistics. Below the root the walk is
// purely sequential (walk).
func (perft *Perft) run(p *position.Position, depth int) (perftStats, error) {
	if depth == 0 {
		return perftStats{nodes: 1}, nil
	}

	rootMg := NewMoveGen()
	moves := rootMg.GenerateLegalMoves(p, GenAll)
	n := moves.Len()

	workers := config.Settings.Perft.Workers
	if workers <= 0 {
		workers = 1
	}
	sem := make(chan struct{}, workers)

	g, ctx := errgroup.WithContext(context.Background())
	results := make([]perftStats, n)

	for i := 0; i < n; i++ {
		i := i
		move := moves.At(i)
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			break
		}
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			defer func() { <-sem }()
			if perft.stopFlag.Load() {
				return errStopped
			}
			localPos := *p
			localMg := NewMoveGen()
			var local perftStats
			localPos.DoMove(move)
			if depth == 1 {
				classify(move, &localPos, localMg, &local)
			}
			walk(&localPos, localMg, depth-1, &local)
			localPos.UndoMove()
			results[i] = local
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return perftStats{}, err
	}

	var total perftStats
	for _, r := range results {
		total.add(r)
	}
	return total, nil
}

var errStopped = stopError{}

type stopError struct{}

func (stopError) Error() string { return "perft stopped" }

// walk recurses sequentially below the root. depth counts remaining
// plies; a move is classified into stats exactly when it is the last
// ply before the depth-0 leaf, matching the standard perft divide
// convention.
func walk(p *position.Position, mg *Movegen, depth int, stats *perftStats) {
	if depth == 0 {
		stats.nodes++
		return
	}
	// mg's move list is reused by the recursive call, so iterate a copy.
	moves := mg.GenerateLegalMoves(p, GenAll)
	var buf [MaxMoves]Move
	n := copy(buf[:], *moves)
	for _, move := range buf[:n] {
		p.DoMove(move)
		if depth == 1 {
			classify(move, p, mg, stats)
		}
		walk(p, mg, depth-1, stats)
		p.UndoMove()
	}
}

// classify attributes a single move - already applied to p - to the
// move-type counters. Must be called after DoMove so p reflects the
// position the move produced.
func classify(move Move, p *position.Position, mg *Movegen, stats *perftStats) {
	switch {
	case move.IsEnPassant():
		stats.enpassant++
		stats.captures++
	case move.IsCapture():
		stats.captures++
	}
	if move.IsCastling() {
		stats.castles++
	}
	if move.IsPromotion() {
		stats.promotions++
	}
	if p.HasCheck() {
		stats.checks++
		if !mg.HasLegalMove(p) {
			stats.checkMates++
		}
	}
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
