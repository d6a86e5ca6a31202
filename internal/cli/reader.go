package cli

import (
	"bufio"
	"io"
	"sync"
)

type lineResult struct {
	line string
	err  error
}

// lineReader reads one line per request on its own goroutine so a caller can
// wait for input and an interrupt at the same time. A request left pending by
// an interrupt is answered on the next call instead of being lost.
type lineReader struct {
	scanner  *bufio.Scanner
	requests chan struct{}
	results  chan lineResult
	done     chan struct{}
	pending  bool
	start    sync.Once
	stop     sync.Once
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{
		scanner:  bufio.NewScanner(r),
		requests: make(chan struct{}),
		results:  make(chan lineResult),
		done:     make(chan struct{}),
	}
}

// next asks for a line and returns the channel it will arrive on.
func (lr *lineReader) next() <-chan lineResult {
	select {
	case <-lr.done:
		eof := make(chan lineResult, 1)
		eof <- lineResult{err: io.EOF}

		return eof
	default:
	}

	lr.start.Do(func() { go lr.run() })

	if !lr.pending {
		lr.requests <- struct{}{}
		lr.pending = true
	}

	return lr.results
}

// received marks the pending request as answered.
func (lr *lineReader) received() {
	lr.pending = false
}

func (lr *lineReader) close() {
	lr.stop.Do(func() { close(lr.done) })
}

func (lr *lineReader) run() {
	for {
		select {
		case <-lr.done:
			return
		case <-lr.requests:
		}

		var res lineResult

		if lr.scanner.Scan() {
			res.line = lr.scanner.Text()
		} else {
			res.err = lr.scanner.Err()
			if res.err == nil {
				res.err = io.EOF
			}
		}

		select {
		case lr.results <- res:
		case <-lr.done:
			return
		}
	}
}
