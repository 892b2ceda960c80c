package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pior/irc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedStats() irc.StreamStats {
	return irc.StreamStats{
		LinesRead:   12,
		BytesRead:   480,
		ParseErrors: 1,
		Writer: irc.WriterStats{
			Writes:              5,
			BytesWritten:        90,
			WriteErrors:         2,
			AcquireCount:        7,
			AcquireWaitCount:    3,
			AcquireWaitTimeNs:   1_500_000_000,
			CircuitBreakerState: gobreaker.StateOpen,
		},
	}
}

func TestStreamCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	require.NoError(t, registry.Register(newStreamCollector("irc.example:6667", fixedStats)))

	families, err := registry.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		require.Len(t, mf.GetMetric(), 1)
		m := mf.GetMetric()[0]

		require.Len(t, m.GetLabel(), 1)
		assert.Equal(t, "server", m.GetLabel()[0].GetName())
		assert.Equal(t, "irc.example:6667", m.GetLabel()[0].GetValue())

		if c := m.GetCounter(); c != nil {
			values[mf.GetName()] = c.GetValue()
		} else {
			values[mf.GetName()] = m.GetGauge().GetValue()
		}
	}

	assert.Equal(t, map[string]float64{
		"irc_lines_read_total":               12,
		"irc_read_bytes_total":               480,
		"irc_parse_errors_total":             1,
		"irc_writes_total":                   5,
		"irc_written_bytes_total":            90,
		"irc_write_errors_total":             2,
		"irc_write_guard_acquires_total":     7,
		"irc_write_guard_waits_total":        3,
		"irc_write_guard_wait_seconds_total": 1.5,
		"irc_circuit_breaker_state":          2,
	}, values)
}

func TestMetricsHandler(t *testing.T) {
	srv := httptest.NewServer(metricsHandler(newStreamCollector("irc.example:6667", fixedStats)))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `irc_lines_read_total{server="irc.example:6667"} 12`)
}
