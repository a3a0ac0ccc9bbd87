package fastboot

import (
	"io"
)

// fakePipe replays canned reads and records every write.
type fakePipe struct {
	reads    [][]byte
	readErr  error
	writes   [][]byte
	writeErr error
	shortBy  int
	closed   int
}

func newFakePipe(responses ...string) *fakePipe {
	p := &fakePipe{}
	for _, r := range responses {
		p.reads = append(p.reads, []byte(r))
	}
	return p
}

func (p *fakePipe) Read(buf []byte) (int, error) {
	if len(p.reads) == 0 {
		if p.readErr != nil {
			return 0, p.readErr
		}
		return 0, io.EOF
	}
	r := p.reads[0]
	p.reads = p.reads[1:]
	return copy(buf, r), nil
}

func (p *fakePipe) Write(b []byte) (int, error) {
	if p.writeErr != nil {
		return 0, p.writeErr
	}
	p.writes = append(p.writes, append([]byte(nil), b...))
	return len(b) - p.shortBy, nil
}

func (p *fakePipe) Close() error {
	p.closed++
	return nil
}

// commands returns all writes as strings. Only useful without data phases.
func (p *fakePipe) commands() []string {
	res := make([]string, len(p.writes))
	for i, w := range p.writes {
		res[i] = string(w)
	}
	return res
}

func newTestDevice(responses ...string) (*Device, *fakePipe) {
	p := newFakePipe(responses...)
	return NewDevice(p), p
}
