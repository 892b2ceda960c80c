package main

import (
	"net/http"

	"github.com/pior/irc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// streamCollector exports a snapshot of irc.StreamStats on every scrape.
type streamCollector struct {
	stats func() irc.StreamStats

	linesRead     *prometheus.Desc
	bytesRead     *prometheus.Desc
	parseErrors   *prometheus.Desc
	writes        *prometheus.Desc
	bytesWritten  *prometheus.Desc
	writeErrors   *prometheus.Desc
	acquires      *prometheus.Desc
	acquireWaits  *prometheus.Desc
	acquireWaitNs *prometheus.Desc
	circuitState  *prometheus.Desc
}

func newStreamCollector(server string, stats func() irc.StreamStats) *streamCollector {
	labels := prometheus.Labels{"server": server}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc("irc_"+name, help, nil, labels)
	}

	return &streamCollector{
		stats:         stats,
		linesRead:     desc("lines_read_total", "Complete lines read from the server"),
		bytesRead:     desc("read_bytes_total", "Bytes of complete lines read from the server"),
		parseErrors:   desc("parse_errors_total", "Lines that failed to parse"),
		writes:        desc("writes_total", "Successful writes"),
		bytesWritten:  desc("written_bytes_total", "Encoded bytes written"),
		writeErrors:   desc("write_errors_total", "Failed writes"),
		acquires:      desc("write_guard_acquires_total", "Acquisitions of the write guard"),
		acquireWaits:  desc("write_guard_waits_total", "Acquisitions that waited for another writer"),
		acquireWaitNs: desc("write_guard_wait_seconds_total", "Time spent waiting for the write guard"),
		circuitState:  desc("circuit_breaker_state", "Circuit breaker state (0=closed, 1=half-open, 2=open)"),
	}
}

func (c *streamCollector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(c, ch)
}

func (c *streamCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats()

	counter := func(d *prometheus.Desc, v uint64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}
	counter(c.linesRead, s.LinesRead)
	counter(c.bytesRead, s.BytesRead)
	counter(c.parseErrors, s.ParseErrors)
	counter(c.writes, s.Writer.Writes)
	counter(c.bytesWritten, s.Writer.BytesWritten)
	counter(c.writeErrors, s.Writer.WriteErrors)
	counter(c.acquires, s.Writer.AcquireCount)
	counter(c.acquireWaits, s.Writer.AcquireWaitCount)

	ch <- prometheus.MustNewConstMetric(c.acquireWaitNs, prometheus.CounterValue, float64(s.Writer.AcquireWaitTimeNs)/1e9)
	ch <- prometheus.MustNewConstMetric(c.circuitState, prometheus.GaugeValue, float64(s.Writer.CircuitBreakerState))
}

// metricsHandler returns the /metrics handler for a registry holding only
// the stream collector.
func metricsHandler(collector prometheus.Collector) http.Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collector)
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
