package console_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.fanout.dev/fanout/internal/adapters/console"
)

func TestSink_PlainStream(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	sink := console.New(&stdout, &stderr)

	sink.Line("[build:ui-debug]", "compiling 312 sources")
	sink.Line("[build:dash-debug]", "[INFO] linking")
	sink.ErrLine("[build:hls-release]", "type mismatch in segment.js")

	g := goldie.New(t)
	g.Assert(t, "stdout", stdout.Bytes())
	g.Assert(t, "stderr", stderr.Bytes())
}

func TestSink_ColoredStreamCarriesContent(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var stdout, stderr bytes.Buffer
	sink := console.New(&stdout, &stderr)

	sink.Line("[build:ui-debug]", "done")
	sink.ErrLine("[build:ui-debug]", "failed")

	// Styling may wrap the prefix and marker but never the content.
	assert.Contains(t, stdout.String(), "done\n")
	assert.Contains(t, stderr.String(), "failed\n")
	assert.Contains(t, stderr.String(), "[ERR]")
}

func TestSink_LinesAreAtomic(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout bytes.Buffer
	sink := console.New(&stdout, nil)

	var wg sync.WaitGroup
	for _, prefix := range []string{"[build:a-debug]", "[build:b-debug]", "[build:c-debug]"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				sink.Line(prefix, "progress")
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 150)
	for _, line := range lines {
		assert.Regexp(t, `^\[build:[abc]-debug\] progress$`, line)
	}
}
