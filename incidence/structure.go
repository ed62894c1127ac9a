// SPDX-License-Identifier: MIT
// Package: cellgate/incidence
//
// structure.go: the 7-point/7-line incidence design and its queries.
//
// Contract:
//   • New builds the lines from the cyclic difference set {0,1,3} mod 7.
//   • FromLines accepts an explicit table; both run the same self-check:
//      : exactly 7 lines, each of 3 distinct ids in [1,7];
//      : G = N·Nᵀ over the 7×7 point/line incidence matrix N has 3 on the
//         diagonal (every id on 3 lines) and 1 off it (every pair on 1 line).
//   • A *Structure is immutable after construction and safe for concurrent use.
//
// Complexity:
//   • Construction O(1) (fixed 7×7); IsLine and LineThrough O(1) via a pair table.

package incidence

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/cellgate/matrix"
)

// Design dimensions.
const (
	// Points is the number of identifiers (1..Points) and of lines.
	Points = 7

	// LineSize is the number of identifiers on a line and of lines through an identifier.
	LineSize = 3
)

// differenceSet generates line i as {i+d mod 7 : d ∈ differenceSet}.
var differenceSet = [LineSize]int{0, 1, 3}

// Line is a sorted triple of identifiers.
type Line [LineSize]int

// Contains reports whether id lies on the line.
func (l Line) Contains(id int) bool { return l[0] == id || l[1] == id || l[2] == id }

// Third returns the identifier completing the line through a and b.
// ok is false if a or b is not on the line, or a == b.
func (l Line) Third(a, b int) (int, bool) {
	if a == b || !l.Contains(a) || !l.Contains(b) {
		return 0, false
	}
	for _, id := range l {
		if id != a && id != b {
			return id, true
		}
	}

	return 0, false
}

// Structure is the validated design.
type Structure struct {
	lines    [Points]Line
	pairLine [Points + 1][Points + 1]int8 // line index through a pair, -1 when absent
}

// New builds the design from the cyclic difference set and validates it.
func New() (*Structure, error) {
	lines := make([][LineSize]int, Points)
	for i := range lines {
		for j, d := range differenceSet {
			lines[i][j] = (i+d)%Points + 1
		}
	}

	return FromLines(lines)
}

var fano = sync.OnceValues(New)

// Fano returns the process-wide design, built on first use.
func Fano() (*Structure, error) { return fano() }

// FromLines validates an explicit line table and builds a Structure.
// Errors: ErrLineCount, ErrLineSize, ErrPointRange, ErrPointDegree,
// ErrPairCoverage (all wrap ErrMalformed).
func FromLines(lines [][LineSize]int) (*Structure, error) {
	if len(lines) != Points {
		return nil, fmt.Errorf("FromLines: got %d lines: %w", len(lines), ErrLineCount)
	}

	s := &Structure{}
	for i, raw := range lines {
		l := Line(raw)
		slices.Sort(l[:])
		for _, id := range l {
			if id < 1 || id > Points {
				return nil, fmt.Errorf("FromLines: line %d id %d: %w", i, id, ErrPointRange)
			}
		}
		if l[0] == l[1] || l[1] == l[2] {
			return nil, fmt.Errorf("FromLines: line %d %v: %w", i, l, ErrLineSize)
		}
		s.lines[i] = l
	}
	if err := s.checkGram(); err != nil {
		return nil, err
	}

	for a := range s.pairLine {
		for b := range s.pairLine[a] {
			s.pairLine[a][b] = -1
		}
	}
	for i, l := range s.lines {
		for _, a := range l {
			for _, b := range l {
				if a != b {
					s.pairLine[a][b] = int8(i)
				}
			}
		}
	}

	return s, nil
}

// checkGram verifies N·Nᵀ = 2I + J.
func (s *Structure) checkGram() error {
	n := s.Matrix()
	nt, err := matrix.Transpose(n)
	if err != nil {
		return fmt.Errorf("FromLines: %w", err)
	}
	gram, err := matrix.Mul(n, nt)
	if err != nil {
		return fmt.Errorf("FromLines: %w", err)
	}

	// degrees first, so a duplicated line reports the degree violation
	var v float64
	for a := 0; a < Points; a++ {
		if v, _ = gram.At(a, a); v != LineSize {
			return fmt.Errorf("FromLines: id %d on %v lines: %w", a+1, v, ErrPointDegree)
		}
	}
	for a := 0; a < Points; a++ {
		for b := a + 1; b < Points; b++ {
			if v, _ = gram.At(a, b); v != 1 {
				return fmt.Errorf("FromLines: pair (%d,%d) on %v lines: %w", a+1, b+1, v, ErrPairCoverage)
			}
		}
	}

	return nil
}

// Matrix returns the 7×7 point/line incidence matrix N (N[p-1][l] = 1 iff
// identifier p lies on line l). A fresh copy is built on every call.
func (s *Structure) Matrix() *matrix.Dense {
	n, _ := matrix.NewDense(Points, Points) // fixed positive shape
	for j, l := range s.lines {
		for _, id := range l {
			_ = n.Set(id-1, j, 1)
		}
	}

	return n
}

// Lines returns a copy of the lines in construction order.
func (s *Structure) Lines() []Line { return slices.Clone(s.lines[:]) }

// validID reports whether id is in [1, Points].
func validID(id int) bool { return id >= 1 && id <= Points }

// IsLine reports whether {a,b,c} is one of the lines. Argument order is free;
// out-of-range or repeated identifiers never form a line.
func (s *Structure) IsLine(a, b, c int) bool {
	if !validID(a) || !validID(b) || !validID(c) || a == b {
		return false
	}
	idx := s.pairLine[a][b]

	return idx >= 0 && c != a && c != b && s.lines[idx].Contains(c)
}

// LineThrough returns the unique line containing a and b.
// Errors: ErrInvalidPoint for out-of-range or equal identifiers.
// A missing line on a validated design is a construction bug and panics.
func (s *Structure) LineThrough(a, b int) (Line, error) {
	if !validID(a) || !validID(b) || a == b {
		return Line{}, fmt.Errorf("LineThrough(%d,%d): %w", a, b, ErrInvalidPoint)
	}
	idx := s.pairLine[a][b]
	if idx < 0 {
		panic(fmt.Sprintf("incidence: LineThrough(%d,%d): no line on a validated design", a, b))
	}

	return s.lines[idx], nil
}

// ThirdPoint returns the identifier completing the line through a and b.
// Errors: ErrInvalidPoint.
func (s *Structure) ThirdPoint(a, b int) (int, error) {
	l, err := s.LineThrough(a, b)
	if err != nil {
		return 0, err
	}
	c, _ := l.Third(a, b)

	return c, nil
}

// Validate re-runs the construction self-check on s. A zero Structure or a
// nil pointer fails with an error wrapping ErrMalformed.
func (s *Structure) Validate() error {
	if s == nil {
		return fmt.Errorf("Validate: nil structure: %w", ErrLineCount)
	}
	lines := make([][LineSize]int, Points)
	for i, l := range s.lines {
		lines[i] = l
	}
	if _, err := FromLines(lines); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}

	return nil
}
