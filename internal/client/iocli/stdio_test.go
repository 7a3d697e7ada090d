package iocli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func newBufferedStdio(input string) (*Stdio, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Stdio{
		out: out,
		in:  bufio.NewReader(strings.NewReader(input)),
	}, out
}

func TestPrintlnAndPrintf(t *testing.T) {
	stdio, out := newBufferedStdio("")

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")

	assert.Equal(t, "hello world\ntest 1 abc", out.String())
}

func TestReadInput(t *testing.T) {
	stdio, out := newBufferedStdio("user input\n")

	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", result)
	// Приглашение уходит в выходной поток
	assert.Equal(t, "Prompt: ", out.String())
}

func TestReadInput_TrimsWhitespace(t *testing.T) {
	stdio, _ := newBufferedStdio("  padded value  \n")

	result, err := stdio.ReadInput("> ")
	require.NoError(t, err)
	assert.Equal(t, "padded value", result)
}

func TestWrite(t *testing.T) {
	stdio, out := newBufferedStdio("")

	n, err := stdio.Write([]byte("raw bytes"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, "raw bytes", out.String())
}
