package session

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReaderReadLine(t *testing.T) {
	long := strings.Repeat("y", MaxLineLength+1)
	lr := newLineReader(strings.NewReader("1\r\n ? \n" + long + "\nlast"))

	line, err := lr.readLine()
	require.NoError(t, err)
	assert.Equal(t, "1", line)

	line, err = lr.readLine()
	require.NoError(t, err)
	assert.Equal(t, " ? ", line)

	_, err = lr.readLine()
	assert.ErrorIs(t, err, errLineTooLong)

	line, err = lr.readLine()
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = lr.readLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineReaderAcceptsMaxLength(t *testing.T) {
	exact := strings.Repeat("z", MaxLineLength)
	lr := newLineReader(strings.NewReader(exact + "\r\n"))

	line, err := lr.readLine()
	require.NoError(t, err)
	assert.Equal(t, exact, line)
}

func TestLineReaderOversizedFinalLine(t *testing.T) {
	lr := newLineReader(strings.NewReader(strings.Repeat("q", 10*MaxLineLength)))

	_, err := lr.readLine()
	assert.ErrorIs(t, err, errLineTooLong)
	_, err = lr.readLine()
	assert.ErrorIs(t, err, io.EOF)
}
