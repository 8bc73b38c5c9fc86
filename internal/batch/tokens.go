package batch

import (
	"bufio"
	"io"
	"strconv"

	"github.com/govalues/bignum"
	"github.com/pkg/errors"
)

// maxTokenSize bounds a single whitespace-separated token.
// The longest hexadecimal number that fits into a bignum.Number has
// 514 digits.
const maxTokenSize = 64 * 1024

// Tokens is a cursor over the whitespace-separated tokens of an input.
type Tokens struct {
	fields []string
	pos    int
}

// ReadTokens splits the whole input into whitespace-separated tokens.
func ReadTokens(r io.Reader) (*Tokens, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxTokenSize)
	s.Split(bufio.ScanWords)
	var fields []string
	for s.Scan() {
		fields = append(fields, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading input")
	}
	return &Tokens{fields: fields}, nil
}

// Next returns the next token, what names it in the error returned when the
// input is exhausted.
func (t *Tokens) Next(what string) (string, error) {
	if t.pos >= len(t.fields) {
		return "", errors.Errorf("missing %s: expected token %d, input has %d", what, t.pos+1, len(t.fields))
	}
	tok := t.fields[t.pos]
	t.pos++
	return tok, nil
}

// NextHex parses the next token as a hexadecimal number.
func (t *Tokens) NextHex(what string, e bignum.Endianness) (bignum.Number, error) {
	tok, err := t.Next(what)
	if err != nil {
		return bignum.Number{}, err
	}
	x, err := bignum.ParseHex(tok, e)
	if err != nil {
		return bignum.Number{}, errors.WithMessagef(err, "invalid %s", what)
	}
	return x, nil
}

// NextCount parses the next token as a non-negative decimal count.
func (t *Tokens) NextCount(what string) (int, error) {
	tok, err := t.Next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Errorf("invalid %s %q: not a decimal integer", what, tok)
	}
	if n < 0 {
		return 0, errors.Errorf("invalid %s %d: must not be negative", what, n)
	}
	return n, nil
}

// Remaining returns number of tokens that have not been consumed yet.
func (t *Tokens) Remaining() int {
	return len(t.fields) - t.pos
}
