package telemetry

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFromContextDefaultsToNoOp(t *testing.T) {
	collector := FromContext(context.Background())

	timer := collector.Start("anything")
	timer.Child("nested").End()
	timer.End()

	var buf strings.Builder
	collector.Report(&buf)
	assert.Equal(t, "", buf.String())
}

func TestTimingCollectorNesting(t *testing.T) {
	collector := NewTimingCollector()

	root := collector.Start("book")
	load := collector.Start("store.load")
	load.End()
	save := root.Child("store.save")
	save.End()
	root.End()

	var buf strings.Builder
	collector.Report(&buf)
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, 3, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "book:"))
	assert.True(t, strings.Contains(lines[1], "├─ store.load:"))
	assert.True(t, strings.Contains(lines[2], "└─ store.save:"))
}

func TestStartTimerUsesRootTimer(t *testing.T) {
	collector := NewTimingCollector()
	ctx := WithCollector(context.Background(), collector)

	root := collector.Start("run")
	ctx = WithRootTimer(ctx, root)

	child := StartTimer(ctx, "nested")
	child.End()
	root.End()

	var buf strings.Builder
	collector.Report(&buf)
	assert.True(t, strings.Contains(buf.String(), "└─ nested:"))
}

func TestEmptyCollectorReportsNothing(t *testing.T) {
	collector := NewTimingCollector()

	var buf strings.Builder
	collector.Report(&buf)
	assert.Equal(t, "", buf.String())
}
