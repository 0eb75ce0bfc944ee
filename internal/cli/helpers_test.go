package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/apiad/pydock/internal/config"
	"github.com/apiad/pydock/internal/engine"
	"github.com/apiad/pydock/internal/store"
	"github.com/stretchr/testify/require"
)

// fakeRunner records engine invocations and replays stubbed responses.
// Unstubbed calls succeed with empty output.
type fakeRunner struct {
	mu        sync.Mutex
	responses map[string][]fakeResponse
	calls     []string
}

type fakeResponse struct {
	out string
	err error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{responses: make(map[string][]fakeResponse)}
}

func (f *fakeRunner) stub(call string, out string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[call] = append(f.responses[call], fakeResponse{out: out, err: err})
}

func (f *fakeRunner) record(bin string, args []string) (string, error) {
	call := bin + " " + strings.Join(args, " ")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	queue := f.responses[call]
	if len(queue) == 0 {
		if _, ok := f.responses[call]; !ok {
			return "", nil
		}
		return "", fmt.Errorf("unexpected engine call: %s", call)
	}
	f.responses[call] = queue[1:]
	return queue[0].out, queue[0].err
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
	return append([]string(nil), f.calls...)
}

func (f *fakeRunner) callsMatching(substr string) []string {
	var matched []string
	for _, call := range f.callLines() {
		if strings.Contains(call, substr) {
			matched = append(matched, call)
		}
	}
	return matched
}

// newTestApp wires an App against a temp store and a fake engine.
func newTestApp(t *testing.T) (*App, *fakeRunner) {
	t.Helper()

	s := store.New(filepath.Join(t.TempDir(), ".pydock"))
	require.NoError(t, s.Init())

	cfg := config.Default()
	cfg.Environment.Username = "alice"
	cfg.Environment.Shell = "bash"

	fake := newFakeRunner()

	app := New()
	app.store = s
	app.config = cfg
	app.engine = engine.NewWithRunner("docker", false, fake)

	return app, fake
}

// execute runs the app with the given CLI args and captures stdout.
func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app.rootCmd.SetOut(&buf)
	app.rootCmd.SetErr(&buf)
	app.rootCmd.SetArgs(args)
	err := app.rootCmd.Execute()
	return buf.String(), err
}
