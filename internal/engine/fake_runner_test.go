package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

type fakeRunner struct {
	mu        sync.Mutex
	responses map[string][]fakeResponse
	calls     []fakeCall
}

type fakeResponse struct {
	out string
	err error
}

type fakeCall struct {
	bin  string
	args []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		responses: make(map[string][]fakeResponse),
	}
}

func (f *fakeRunner) stub(args string, out string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[args] = append(f.responses[args], fakeResponse{out: out, err: err})
}

func (f *fakeRunner) record(bin string, args []string) (string, error) {
	key := bin + " " + strings.Join(args, " ")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fakeCall{bin: bin, args: append([]string(nil), args...)})
	queue := f.responses[key]
	if len(queue) == 0 {
		if _, ok := f.responses[key]; !ok {
			// Unstubbed calls succeed with empty output so tests only
			// stub what they assert on.
			return "", nil
		}
		return "", fmt.Errorf("unexpected engine call: %s", key)
	}
	resp := queue[0]
	f.responses[key] = queue[1:]
	return resp.out, resp.err
}

func (f *fakeRunner) Output(ctx context.Context, bin string, args ...string) (string, error) {
	return f.record(bin, args)
}

func (f *fakeRunner) Attach(ctx context.Context, bin string, args ...string) error {
	_, err := f.record(bin, args)
	return err
}

func (f *fakeRunner) callLines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines := make([]string, 0, len(f.calls))
	for _, call := range f.calls {
		lines = append(lines, call.bin+" "+strings.Join(call.args, " "))
	}
	return lines
}
