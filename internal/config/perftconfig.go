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

package config

import "runtime"

// perftConfiguration holds the tunables for the parallel perft tree walker.
type perftConfiguration struct {
	// Workers is the number of goroutines the perft driver fans out across.
	Workers int
	// DefaultDepth is used when a perft run is requested without an explicit depth.
	DefaultDepth int
}

func init() {
	Settings.Perft.Workers = runtime.NumCPU()
	Settings.Perft.DefaultDepth = 6
}

// setupPerft applies config-file overrides on top of the defaults set in init().
func setupPerft() {
	if Settings.Perft.Workers <= 0 {
		Settings.Perft.Workers = runtime.NumCPU()
	}
	if Settings.Perft.DefaultDepth <= 0 {
		Settings.Perft.DefaultDepth = 6
	}
}
