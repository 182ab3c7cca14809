// Package input reads float64 values from text.
//
// Values are separated by whitespace or commas. A '#' starts a comment that
// runs to the end of the line. Tokens are parsed with [strconv.ParseFloat],
// so decimal, exponent and hexadecimal float forms are accepted, as are NaN
// and Inf spellings; deciding whether those are allowed is left to the caller.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLine bounds the length of a single input line.
const maxLine = 16 << 20

// Position locates a token in its source. Line and Col are 1-based; Col
// counts bytes.
type Position struct {
	Name string
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Name, p.Line, p.Col)
}

// Value is a parsed number and where it came from.
type Value struct {
	Float float64
	Pos   Position
}

// SyntaxError reports a token that is not a valid float64.
type SyntaxError struct {
	Pos   Position
	Token string
	Err   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: invalid number %q: %v", e.Pos, e.Token, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Scanner yields the numbers of a text stream one at a time.
type Scanner struct {
	lines *bufio.Scanner
	name  string
	line  int

	// rest is the unconsumed part of the current line, starting at byte
	// offset col (0-based).
	rest string
	col  int

	val Value
	err error
}

// NewScanner returns a Scanner reading from r. name is used in positions.
func NewScanner(r io.Reader, name string) *Scanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), maxLine)

	return &Scanner{lines: lines, name: name}
}

// Scan advances to the next number. It returns false at the end of input or
// on the first error, which is then available from Err.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for {
		tok, col, ok := s.nextToken()
		if !ok {
			if !s.nextLine() {
				return false
			}
			continue
		}

		pos := Position{Name: s.name, Line: s.line, Col: col + 1}
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			var cause error = err
			if ne, ok := err.(*strconv.NumError); ok {
				cause = ne.Err
			}
			s.err = &SyntaxError{Pos: pos, Token: tok, Err: cause}

			return false
		}

		s.val = Value{Float: f, Pos: pos}

		return true
	}
}

// Value returns the number produced by the last successful Scan.
func (s *Scanner) Value() Value {
	return s.val
}

// Err returns the first error encountered, or nil at a clean end of input.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) nextLine() bool {
	if !s.lines.Scan() {
		if err := s.lines.Err(); err != nil {
			s.err = fmt.Errorf("%s:%d: %w", s.name, s.line+1, err)
		}

		return false
	}

	s.line++
	s.rest = s.lines.Text()
	s.col = 0

	if i := strings.IndexByte(s.rest, '#'); i >= 0 {
		s.rest = s.rest[:i]
	}

	return true
}

// nextToken splits the next token off the current line.
func (s *Scanner) nextToken() (tok string, col int, ok bool) {
	trimmed := strings.TrimLeftFunc(s.rest, isSeparator)
	s.col += len(s.rest) - len(trimmed)
	s.rest = trimmed

	if s.rest == "" {
		return "", 0, false
	}

	end := strings.IndexFunc(s.rest, isSeparator)
	if end < 0 {
		end = len(s.rest)
	}

	tok, col = s.rest[:end], s.col
	s.rest = s.rest[end:]
	s.col += end

	return tok, col, true
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\v', '\f', ',', ';':
		return true
	}

	return false
}

// ReadAll collects every number from r.
func ReadAll(r io.Reader, name string) ([]Value, error) {
	var out []Value

	s := NewScanner(r, name)
	for s.Scan() {
		out = append(out, s.Value())
	}

	return out, s.Err()
}
