package shell_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.fanout.dev/fanout/internal/adapters/shell"
	"go.fanout.dev/fanout/internal/core/domain"
	"go.fanout.dev/fanout/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// recordingSink captures emitted lines for assertions. Safe for
// concurrent use like the real console sink.
type recordingSink struct {
	mu    sync.Mutex
	lines []string
	errs  []string
}

func (s *recordingSink) Line(prefix, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, prefix+" "+line)
}

func (s *recordingSink) ErrLine(prefix, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, prefix+" "+line)
}

func newTestRunner(t *testing.T, sink *recordingSink) *shell.Runner {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return shell.NewRunner(sink, logger)
}

func task(name string, script string) domain.TaskDescriptor {
	return domain.TaskDescriptor{
		Args:     []string{"/bin/sh", "-c", script},
		Identity: domain.Identity{Name: name, Mode: "debug"},
	}
}

func TestRunner_StreamsStdoutWithPrefix(t *testing.T) {
	sink := &recordingSink{}
	r := newTestRunner(t, sink)

	outcome := r.Run(context.Background(), task("ui", "echo one; echo two"))
	require.NoError(t, outcome.Err)
	assert.Equal(t, 0, outcome.ExitCode)
	assert.False(t, outcome.Failed())

	assert.Equal(t, []string{
		"[build:ui-debug] one",
		"[build:ui-debug] two",
	}, sink.lines)
	assert.Empty(t, sink.errs)
}

func TestRunner_ClassifiesStderr(t *testing.T) {
	sink := &recordingSink{}
	r := newTestRunner(t, sink)

	script := `echo '[INFO] compiling' >&2; echo 'type mismatch' >&2`
	outcome := r.Run(context.Background(), task("dash", script))
	require.NoError(t, outcome.Err)
	assert.Equal(t, 0, outcome.ExitCode)

	// Stderr progress notices are normal output; everything else on
	// stderr is an error line.
	assert.Equal(t, []string{"[build:dash-debug] [INFO] compiling"}, sink.lines)
	assert.Equal(t, []string{"[build:dash-debug] type mismatch"}, sink.errs)
}

func TestRunner_ReportsExitCode(t *testing.T) {
	sink := &recordingSink{}
	r := newTestRunner(t, sink)

	outcome := r.Run(context.Background(), task("hls", "exit 3"))
	require.NoError(t, outcome.Err)
	assert.Equal(t, 3, outcome.ExitCode)
	assert.True(t, outcome.Failed())
}

func TestRunner_SpawnFailure(t *testing.T) {
	sink := &recordingSink{}
	r := newTestRunner(t, sink)

	outcome := r.Run(context.Background(), domain.TaskDescriptor{
		Args:     []string{"/nonexistent/compiler"},
		Identity: domain.Identity{Name: "ui", Mode: "debug"},
	})
	assert.Equal(t, -1, outcome.ExitCode)
	assert.ErrorIs(t, outcome.Err, domain.ErrTaskStartFailed)
}

func TestRunner_PassesEnvironment(t *testing.T) {
	sink := &recordingSink{}
	r := newTestRunner(t, sink)

	desc := task("ui", `echo "mode=$BUILD_MODE"`)
	desc.Env = []string{"BUILD_MODE=debug"}

	outcome := r.Run(context.Background(), desc)
	require.NoError(t, outcome.Err)
	assert.Equal(t, []string{"[build:ui-debug] mode=debug"}, sink.lines)
}

func TestStream_EmptyArgv(t *testing.T) {
	_, err := shell.Stream(context.Background(), nil, nil, func(string, bool) {})
	assert.Error(t, err)
}

func TestRunner_ConcurrentTasksKeepPrefixes(t *testing.T) {
	sink := &recordingSink{}
	r := newTestRunner(t, sink)

	var wg sync.WaitGroup
	names := []string{"a", "b", "c", "d"}
	for _, name := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := r.Run(context.Background(), task(name, "for i in 1 2 3 4 5; do echo line$i; done"))
			assert.Equal(t, 0, out.ExitCode)
		}()
	}
	wg.Wait()

	// Every line carries exactly one task's prefix; interleaving across
	// tasks is fine, a torn line is not.
	require.Len(t, sink.lines, len(names)*5)
	for _, line := range sink.lines {
		assert.Regexp(t, `^\[build:[a-d]-debug\] line[1-5]$`, line)
	}
}
