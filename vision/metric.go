package vision

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// ClientMetrics contains atomic metrics for a client.
// Metrics can be used as the value of a prometheus CounterFunc or GaugeFunc.
type ClientMetrics struct {
	// CommandSendCount indicates the number of command frames sent.
	CommandSendCount atomic.Uint64
	// ReplyRecvCount indicates the number of success replies received.
	ReplyRecvCount atomic.Uint64
	// ErrorReplyCount indicates the number of controller error replies received.
	ErrorReplyCount atomic.Uint64
	// ReplyErrCount indicates the number of malformed or failed receives.
	ReplyErrCount atomic.Uint64
	// TimeoutCount indicates the number of exchanges that hit the read timeout.
	TimeoutCount atomic.Uint64

	// perTagSendCounts tracks sent commands per command tag.
	perTagSendCounts *xsync.MapOf[string, *atomic.Uint64]
}

func (m *ClientMetrics) init() {
	m.perTagSendCounts = xsync.NewMapOf[string, *atomic.Uint64]()
}

// TagSendCount returns the number of commands sent with the given tag.
func (m *ClientMetrics) TagSendCount(tag string) uint64 {
	counter, ok := m.perTagSendCounts.Load(tag)
	if !ok {
		return 0
	}

	return counter.Load()
}

// TagSendCounts returns a snapshot of the per-tag send counters.
func (m *ClientMetrics) TagSendCounts() map[string]uint64 {
	counts := make(map[string]uint64)
	m.perTagSendCounts.Range(func(tag string, counter *atomic.Uint64) bool {
		counts[tag] = counter.Load()

		return true
	})

	return counts
}

func (m *ClientMetrics) incCommandSendCount(tag string) {
	m.CommandSendCount.Add(1)

	counter, _ := m.perTagSendCounts.LoadOrStore(tag, &atomic.Uint64{})
	counter.Add(1)
}

func (m *ClientMetrics) incReplyRecvCount() {
	m.ReplyRecvCount.Add(1)
}

func (m *ClientMetrics) incErrorReplyCount() {
	m.ErrorReplyCount.Add(1)
}

func (m *ClientMetrics) incReplyErrCount() {
	m.ReplyErrCount.Add(1)
}

func (m *ClientMetrics) incTimeoutCount() {
	m.TimeoutCount.Add(1)
}
