package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	PostsTotal.WithLabelValues("note", "posted").Inc()
	StreamReconnects.WithLabelValues("main").Inc()
	StreamConnected.WithLabelValues("main").Set(1)

	ts := httptest.NewServer(Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `astrolabe_posts_total{kind="note",outcome="posted"}`)
	assert.Contains(t, string(body), `astrolabe_stream_reconnects_total{channel="main"}`)
	assert.Contains(t, string(body), `astrolabe_stream_connected{channel="main"} 1`)
}

func TestCounters(t *testing.T) {
	value := func() float64 {
		var m dto.Metric
		require.NoError(t, JobRuns.WithLabelValues("dinner", "ok").Write(&m))
		return m.GetCounter().GetValue()
	}
	before := value()
	JobRuns.WithLabelValues("dinner", "ok").Inc()
	JobRuns.WithLabelValues("dinner", "ok").Inc()
	assert.InDelta(t, before+2, value(), 0.001)
}
