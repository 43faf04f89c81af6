package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/hangarbay/internal/panel"
)

func TestCollectorRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)

	c.ObserveFrame(0.002, 400, 3)
	c.ObserveFrame(0.001, 398, 0)
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Frames))
	assert.Equal(t, 398.0, testutil.ToFloat64(c.DrawCalls))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.SkippedDrawCalls))

	c.SequenceComplete(panel.Opening)
	c.SequenceComplete(panel.Opening)
	c.SequenceComplete(panel.Closing)
	assert.Equal(t, 2.0, testutil.ToFloat64(c.SequencesCompleted.WithLabelValues("opening")))

	c.SetLines(map[panel.State]int{panel.Idle: 7, panel.Opening: 3, panel.Closing: 0})
	assert.Equal(t, 3.0, testutil.ToFloat64(c.Lines.WithLabelValues("opening")))

	c.SetEmergency(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Emergency))
	c.SetEmergency(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(c.Emergency))
}

func TestNewTwiceReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := New(reg)
	require.NoError(t, err)
	b, err := New(reg)
	require.NoError(t, err)
	a.Frames.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(b.Frames))
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.ObserveFrame(1, 1, 1)
	c.SequenceComplete(panel.Idle)
	c.SetLines(nil)
	c.SetEmergency(true)
}

func TestHandlerServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)
	c.ObserveFrame(0.001, 10, 0)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	assert.True(t, strings.Contains(string(body), "hangar_frames_total 1"))
}
