// Package tokenizer splits a text stream into normalised word tokens.
//
// A token is a maximal run of Unicode letters and digits, lowercased rune
// by rune. Every other rune is a separator, and so is every byte that does
// not decode as UTF-8: malformed input never aborts a scan.
//
// Input is consumed one line at a time. Lines longer than the read buffer
// are processed in buffer-sized chunks, so memory use is bounded by the
// buffer plus the word currently being assembled.
package tokenizer

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultBufferSize is the read buffer used by New.
const DefaultBufferSize = 64 * 1024

// Tokenizer produces tokens from a reader. Like bufio.Scanner, it is lazy,
// finite and cannot be restarted.
type Tokenizer struct {
	r     *bufio.Reader
	line  []byte // owned copy of the current chunk
	buf   []byte // unconsumed tail of line
	word  []byte // token being assembled, already lowercased
	token string
	lines int
	eof   bool
	err   error
}

// New returns a tokenizer reading from r.
func New(r io.Reader) *Tokenizer {
	return NewSize(r, DefaultBufferSize)
}

// NewSize returns a tokenizer whose read buffer holds at least size bytes.
func NewSize(r io.Reader, size int) *Tokenizer {
	return &Tokenizer{r: bufio.NewReaderSize(r, size)}
}

// Tokenize returns every token in s.
func Tokenize(s string) []string {
	var tokens []string
	t := New(strings.NewReader(s))
	for t.Scan() {
		tokens = append(tokens, t.Token())
	}
	return tokens
}

// Scan advances to the next token, which is then available through Token.
// It returns false when the input is exhausted or a read error occurs;
// Err distinguishes the two.
func (t *Tokenizer) Scan() bool {
	t.token = ""
	for {
		for len(t.buf) > 0 {
			if !t.eof && !utf8.FullRune(t.buf) {
				break // rest of the rune is in the next chunk
			}
			r, size := utf8.DecodeRune(t.buf)
			t.buf = t.buf[size:]
			if isWordRune(r) {
				t.word = utf8.AppendRune(t.word, unicode.ToLower(r))
				continue
			}
			if t.emit() {
				return true
			}
		}
		if t.eof || t.err != nil {
			return t.emit()
		}
		t.fill()
	}
}

// Token returns the most recent token produced by Scan.
func (t *Tokenizer) Token() string {
	return t.token
}

// Err returns the first non-EOF read error.
func (t *Tokenizer) Err() error {
	return t.err
}

// Lines returns the number of input lines read so far.
func (t *Tokenizer) Lines() int {
	return t.lines
}

// emit moves the assembled word into token. Empty runs are discarded.
func (t *Tokenizer) emit() bool {
	if len(t.word) == 0 {
		return false
	}
	t.token = string(t.word)
	t.word = t.word[:0]
	return true
}

// fill reads the next line, or the next chunk of an overlong line, after any
// bytes of a partial rune left over from the previous chunk.
func (t *Tokenizer) fill() {
	chunk, err := t.r.ReadSlice('\n')

	n := copy(t.line, t.buf)
	t.line = append(t.line[:n], chunk...)
	t.buf = t.line

	switch {
	case err == nil:
		t.lines++
	case errors.Is(err, bufio.ErrBufferFull):
		// Overlong line, keep reading it on the next fill.
	case errors.Is(err, io.EOF):
		if len(chunk) > 0 {
			t.lines++
		}
		t.eof = true
	default:
		t.err = err
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
