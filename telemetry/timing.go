package telemetry

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// TimingCollector records timers in a tree and reports them as a nested view:
//
//	book bookings.json: 1.2ms
//	├─ store.load: 0.4ms
//	└─ store.save: 0.6ms
type TimingCollector struct {
	mu      sync.Mutex
	root    *timerNode
	current *timerNode
}

type timerNode struct {
	name     string
	start    time.Time
	end      time.Time
	parent   *timerNode
	children []*timerNode
}

// NewTimingCollector creates an empty timing collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start begins timing an operation. The first timer started becomes the root
// of the report; later timers nest under whichever timer is currently open.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	node := &timerNode{name: name, start: time.Now()}
	if c.root == nil {
		c.root = node
	} else {
		node.parent = c.current
		c.current.children = append(c.current.children, node)
	}
	c.current = node

	return &timingTimer{collector: c, node: node}
}

// Report writes the timing tree to w. Timers that were never ended report
// the time up to the call.
func (c *TimingCollector) Report(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.root == nil {
		return
	}

	_, _ = fmt.Fprintf(w, "%s: %s\n", c.root.name, formatDuration(c.root.duration()))
	for i, child := range c.root.children {
		writeNode(w, child, "", i == len(c.root.children)-1)
	}
}

func writeNode(w io.Writer, node *timerNode, prefix string, last bool) {
	branch, extension := "├─ ", "│  "
	if last {
		branch, extension = "└─ ", "   "
	}

	_, _ = fmt.Fprintf(w, "%s%s%s: %s\n", prefix, branch, node.name, formatDuration(node.duration()))
	for i, child := range node.children {
		writeNode(w, child, prefix+extension, i == len(node.children)-1)
	}
}

func (n *timerNode) duration() time.Duration {
	if n.end.IsZero() {
		return time.Since(n.start)
	}
	return n.end.Sub(n.start)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d.Microseconds()))
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

type timingTimer struct {
	collector *TimingCollector
	node      *timerNode
}

// End stops the timer and reopens its parent for subsequent siblings.
func (t *timingTimer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.node.end = time.Now()
	if t.node.parent != nil {
		t.collector.current = t.node.parent
	}
}

// Child creates a timer nested under this one.
func (t *timingTimer) Child(name string) Timer {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	node := &timerNode{name: name, start: time.Now(), parent: t.node}
	t.node.children = append(t.node.children, node)

	return &timingTimer{collector: t.collector, node: node}
}
