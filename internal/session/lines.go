package session

import (
	"bufio"
	"errors"
	"io"
)

// MaxLineLength is the longest input line accepted. Longer lines are
// discarded and reported as invalid input.
const MaxLineLength = 4096

var errLineTooLong = errors.New("input line too long")

type lineResult struct {
	line string
	err  error
}

// lineReader reads lines on its own goroutine so a blocked read never holds
// up cancellation.
type lineReader struct {
	r     *bufio.Reader
	lines chan lineResult
	done  chan struct{}
}

func newLineReader(in io.Reader) *lineReader {
	return &lineReader{
		r:     bufio.NewReader(in),
		lines: make(chan lineResult),
		done:  make(chan struct{}),
	}
}

func (lr *lineReader) start() {
	go func() {
		for {
			line, err := lr.readLine()
			select {
			case lr.lines <- lineResult{line: line, err: err}:
			case <-lr.done:
				return
			}
			if err != nil && !errors.Is(err, errLineTooLong) {
				return
			}
		}
	}()
}

func (lr *lineReader) stop() {
	close(lr.done)
}

// readLine returns the next line without its terminator. A final line with
// no newline is returned before io.EOF.
func (lr *lineReader) readLine() (string, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, err := lr.r.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(chunk) > MaxLineLength+2 {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) && (len(buf) > 0 || tooLong) {
				break
			}
			return "", err
		}
		break
	}
	line := trimEOL(buf)
	if tooLong || len(line) > MaxLineLength {
		return "", errLineTooLong
	}
	return string(line), nil
}

func trimEOL(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
	}
	if n := len(b); n > 0 && b[n-1] == '\r' {
		b = b[:n-1]
	}
	return b
}
