/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Command perftd is a minimal line protocol driver exposing exactly four
// commands - position, perft, isready, quit - over stdin/stdout. It plays
// the role the teacher's full UCI handler plays for search, restricted to
// driving the move generator and the perft tree-walker.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pkg/profile"

	"github.com/frankkopp/chessperft/internal/config"
	"github.com/frankkopp/chessperft/internal/movegen"
	"github.com/frankkopp/chessperft/internal/position"
	"github.com/frankkopp/chessperft/logging"
)

var log = logging.GetLog()

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// driver holds the session state a line-protocol client mutates: the
// current position and the move generator/perft instances reused
// across commands.
type driver struct {
	pos   *position.Position
	mg    *movegen.Movegen
	perft *movegen.Perft
	in    *bufio.Scanner
	out   *bufio.Writer
}

func newDriver(in *bufio.Scanner, out *bufio.Writer) *driver {
	return &driver{
		pos:   position.NewPosition(),
		mg:    movegen.NewMoveGen(),
		perft: movegen.NewPerft(),
		in:    in,
		out:   out,
	}
}

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	cpuProfile := flag.Bool("cpuprofile", false, "wrap the session in a CPU profile, written on exit")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	var prof interface{ Stop() }
	if *cpuProfile {
		prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	}

	d := newDriver(bufio.NewScanner(os.Stdin), bufio.NewWriter(os.Stdout))
	code := d.loop()
	if prof != nil {
		prof.Stop()
	}
	os.Exit(code)
}

// loop reads one command per line until "quit" or end of input.
// Returns the process exit code: 0 on clean exit, non-zero if a line
// could not be parsed.
func (d *driver) loop() int {
	for d.in.Scan() {
		line := strings.TrimSpace(d.in.Text())
		if line == "" {
			continue
		}
		tokens := regexWhiteSpace.Split(line, -1)
		switch tokens[0] {
		case "quit":
			return 0
		case "isready":
			d.send("readyok")
		case "position":
			if err := d.positionCommand(tokens); err != nil {
				d.send(fmt.Sprintf("info string %s", err))
				return 1
			}
		case "perft":
			if err := d.perftCommand(tokens); err != nil {
				d.send(fmt.Sprintf("info string %s", err))
				return 1
			}
		default:
			log.Warningf("unknown command: %s", line)
			d.send(fmt.Sprintf("info string unknown command: %s", tokens[0]))
			return 1
		}
	}
	if err := d.in.Err(); err != nil {
		log.Errorf("i/o error reading commands: %v", err)
		return 1
	}
	return 0
}

// positionCommand implements "position {startpos | fen ...} [moves m1 m2 ...]".
func (d *driver) positionCommand(tokens []string) error {
	if len(tokens) < 2 {
		return fmt.Errorf("command 'position' malformed: %v", tokens)
	}

	fen := position.StartFen
	i := 1
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fenb.WriteString(tokens[i])
			fenb.WriteString(" ")
			i++
		}
		fen = strings.TrimSpace(fenb.String())
		if fen == "" {
			return fmt.Errorf("command 'position' malformed: empty fen: %v", tokens)
		}
	default:
		return fmt.Errorf("command 'position' malformed: %v", tokens)
	}

	p, err := position.NewPositionFen(fen)
	if err != nil {
		return fmt.Errorf("invalid fen %q: %w", fen, err)
	}
	d.pos = p

	if i < len(tokens) {
		if tokens[i] != "moves" {
			return fmt.Errorf("command 'position' malformed moves: %v", tokens)
		}
		i++
		for ; i < len(tokens); i++ {
			move := d.mg.GetMoveFromUci(d.pos, tokens[i])
			if !move.IsValid() {
				return fmt.Errorf("invalid move %q in %v", tokens[i], tokens)
			}
			d.pos.DoMove(move)
		}
	}
	return nil
}

// perftCommand implements "perft N" against the current position. Without
// N the configured default depth is used.
func (d *driver) perftCommand(tokens []string) error {
	depth := config.Settings.Perft.DefaultDepth
	if len(tokens) >= 2 {
		if _, err := fmt.Sscanf(tokens[1], "%d", &depth); err != nil {
			return fmt.Errorf("command 'perft' malformed depth %q: %w", tokens[1], err)
		}
	}
	d.perft.StartPerft(d.pos.StringFen(), depth)
	d.send(fmt.Sprintf("perft nodes %d captures %d enpassant %d castles %d promotions %d checks %d checkmates %d",
		d.perft.Nodes, d.perft.CaptureCounter, d.perft.EnpassantCounter, d.perft.CastleCounter,
		d.perft.PromotionCounter, d.perft.CheckCounter, d.perft.CheckMateCounter))
	return nil
}

func (d *driver) send(s string) {
	_, _ = d.out.WriteString(s)
	_, _ = d.out.WriteString("\n")
	_ = d.out.Flush()
}
