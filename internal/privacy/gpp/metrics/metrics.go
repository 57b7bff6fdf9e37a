// Package metrics instruments consent-string decoding with Prometheus
// counters/histograms and structured zerolog logging. It wraps a
// gpp.GPPString decode the way the teacher instruments an HTTP
// request: count attempts, count outcomes by kind, time the work.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Metrics holds the Prometheus collectors for GPP decode operations.
// Construct one with New and register it with a prometheus.Registerer.
//
// Logger is nil by default. When nil, the Observe* methods log nothing;
// set it to opt into structured logging of decode failures without
// forcing every caller onto the global zerolog logger.
type Metrics struct {
	ParseTotal            *prometheus.CounterVec
	ParseDuration         prometheus.Histogram
	SectionDecodeTotal    *prometheus.CounterVec
	SectionDecodeDuration *prometheus.HistogramVec
	ValidationFailures    *prometheus.CounterVec
	Logger                *zerolog.Logger
}

// New creates a Metrics instance with collectors namespaced under the
// given namespace. Callers register the returned value's collectors with their
// own prometheus.Registerer (see Register).
func New(namespace string) *Metrics {
	return &Metrics{
		ParseTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parse_total",
				Help:      "Total number of GPP header parse attempts, by outcome.",
			},
			[]string{"outcome"},
		),
		ParseDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "parse_duration_seconds",
				Help:      "Time to parse a GPP string's header and split its sections.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		SectionDecodeTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "section_decode_total",
				Help:      "Total number of section decode attempts, by section and outcome.",
			},
			[]string{"section", "outcome"},
		),
		SectionDecodeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "section_decode_duration_seconds",
				Help:      "Time to decode a single section's body into its typed struct.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"section"},
		),
		ValidationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_failures_total",
				Help:      "Total number of Validate() calls that returned at least one error, by section.",
			},
			[]string{"section"},
		),
	}
}

// Register adds every collector to reg. Call once at startup.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.ParseTotal,
		m.ParseDuration,
		m.SectionDecodeTotal,
		m.SectionDecodeDuration,
		m.ValidationFailures,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveParse records the outcome and duration of a header parse.
// err should be the error Parse returned, or nil on success.
func (m *Metrics) ObserveParse(start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.ParseTotal.WithLabelValues(outcome).Inc()
	m.ParseDuration.Observe(time.Since(start).Seconds())
	if err != nil && m.Logger != nil {
		m.Logger.Warn().Err(err).Msg("gpp: header parse failed")
	}
}

// ObserveSectionDecode records the outcome and duration of decoding a
// single section, identified by its registry name (e.g. "usnat").
func (m *Metrics) ObserveSectionDecode(section string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.SectionDecodeTotal.WithLabelValues(section, outcome).Inc()
	m.SectionDecodeDuration.WithLabelValues(section).Observe(time.Since(start).Seconds())
	if err != nil && m.Logger != nil {
		m.Logger.Warn().Err(err).Str("section", section).Msg("gpp: section decode failed")
	}
}

// ObserveValidation records a non-empty Validate() result for section.
// violationCount is len(result) from a section's Validate() method;
// this package deliberately takes a count rather than importing gpp's
// ValidationError type, since gpp/metrics is a leaf package used by
// callers of gpp, not by gpp itself.
func (m *Metrics) ObserveValidation(section string, violationCount int) {
	if violationCount == 0 {
		return
	}
	m.ValidationFailures.WithLabelValues(section).Inc()
	if m.Logger != nil {
		m.Logger.Warn().Str("section", section).Int("violations", violationCount).Msg("gpp: validation failed")
	}
}
