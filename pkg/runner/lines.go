package runner

import (
	"bufio"
	"context"
	"io"
	"sync"
)

type inputResult struct {
	text string
	err  error
}

// linePump reads lines on a background goroutine so that Input can honor
// context cancellation while a read is blocked.
type linePump struct {
	reader    *bufio.Reader
	lines     chan inputResult
	startOnce sync.Once
}

func newLinePump(r io.Reader) *linePump {
	return &linePump{reader: bufio.NewReader(r)}
}

func (p *linePump) start() {
	p.startOnce.Do(func() {
		p.lines = make(chan inputResult)
		go p.run()
	})
}

func (p *linePump) run() {
	for {
		text, err := p.reader.ReadString('\n')
		if text != "" {
			p.lines <- inputResult{text: text}
		}
		if err != nil {
			if err != io.EOF {
				p.lines <- inputResult{err: err}
			}
			close(p.lines)
			return
		}
	}
}

// next blocks until a line arrives, the stream ends or ctx is done.
func (p *linePump) next(ctx context.Context) (string, error) {
	p.start()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}
