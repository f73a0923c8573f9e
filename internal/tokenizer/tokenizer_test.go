package tokenizer

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, tok *Tokenizer) []string {
	t.Helper()
	var tokens []string
	for tok.Scan() {
		tokens = append(tokens, tok.Token())
	}
	return tokens
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"punctuation separates", "hello, world!", []string{"hello", "world"}},
		{"case folding", "The the THE", []string{"the", "the", "the"}},
		{"digits are word characters", "route 66 and 4x4", []string{"route", "66", "and", "4x4"}},
		{"apostrophe splits", "don't", []string{"don", "t"}},
		{"underscore splits", "snake_case", []string{"snake", "case"}},
		{"hyphen splits", "well-known", []string{"well", "known"}},
		{"unicode letters", "Straße ÜBER café", []string{"straße", "über", "café"}},
		{"multiple lines", "one\ntwo\r\nthree", []string{"one", "two", "three"}},
		{"leading and trailing separators", "  ...word...  ", []string{"word"}},
		{"only separators", "!?,. \t\n", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestTokenizer_InvalidUTF8IsSeparator(t *testing.T) {
	input := "ab\xffcd \xc3 ok \xe2\x82"

	tokens := Tokenize(input)

	assert.Equal(t, []string{"ab", "cd", "ok"}, tokens)
}

func TestTokenizer_RuneSplitAcrossChunks(t *testing.T) {
	// The minimum bufio buffer is 16 bytes, so the two-byte "é" straddles
	// the first chunk boundary.
	input := strings.Repeat("x", 15) + "é yy"
	tok := NewSize(strings.NewReader(input), 16)

	tokens := collect(t, tok)

	require.NoError(t, tok.Err())
	assert.Equal(t, []string{strings.Repeat("x", 15) + "é", "yy"}, tokens)
}

func TestTokenizer_WordLongerThanBuffer(t *testing.T) {
	long := strings.Repeat("abc", 100)
	input := "start " + strings.ToUpper(long) + " end"
	tok := NewSize(strings.NewReader(input), 16)

	tokens := collect(t, tok)

	require.NoError(t, tok.Err())
	assert.Equal(t, []string{"start", long, "end"}, tokens)
	assert.Equal(t, 1, tok.Lines())
}

func TestTokenizer_OneByteReader(t *testing.T) {
	input := "Hello world hello universe world hello\nnaïve ünïcode\n"
	tok := New(iotest.OneByteReader(strings.NewReader(input)))

	tokens := collect(t, tok)

	require.NoError(t, tok.Err())
	assert.Equal(t, []string{
		"hello", "world", "hello", "universe", "world", "hello",
		"naïve", "ünïcode",
	}, tokens)
	assert.Equal(t, 2, tok.Lines())
}

func TestTokenizer_CountsLines(t *testing.T) {
	tok := New(strings.NewReader("a\nb\n\nc"))

	tokens := collect(t, tok)

	assert.Equal(t, []string{"a", "b", "c"}, tokens)
	assert.Equal(t, 4, tok.Lines())
}

func TestTokenizer_ReadError(t *testing.T) {
	readErr := errors.New("disk on fire")
	tok := New(iotest.ErrReader(readErr))

	assert.False(t, tok.Scan())
	assert.ErrorIs(t, tok.Err(), readErr)
	assert.Empty(t, tok.Token())
}

func TestTokenizer_ReadErrorAfterData(t *testing.T) {
	// TimeoutReader returns the data, then fails the second read.
	tok := New(iotest.TimeoutReader(strings.NewReader("partial")))

	tokens := collect(t, tok)

	assert.ErrorIs(t, tok.Err(), iotest.ErrTimeout)
	assert.Equal(t, []string{"partial"}, tokens)
}

func TestTokenizer_NotRestartable(t *testing.T) {
	tok := New(strings.NewReader("only once"))

	assert.Equal(t, []string{"only", "once"}, collect(t, tok))
	assert.False(t, tok.Scan())
	assert.Empty(t, tok.Token())
}
