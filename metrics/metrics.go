// Package metrics provides an optional Prometheus-backed implementation of
// the disruptor package's Observer interface. The core never imports this
// package: PrometheusObserver satisfies disruptor.Observer structurally and
// is wired onto a cursor with SetObserver by whatever assembles the
// topology, same as logging or timing would be — external to the core
// contract.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// PrometheusObserver records cursor activity as Prometheus metrics. It is
// constructed against a caller-supplied registry (typically the process's
// default registry) so embedding applications control how and where
// metrics are exposed; the disruptor core has no opinion on that.
type PrometheusObserver struct {
	sequence      *prometheus.GaugeVec
	claimRejected *prometheus.CounterVec
	eof           *prometheus.CounterVec
}

// NewPrometheusObserver registers the disruptor's metrics with reg and
// returns an Observer backed by them.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	o := &PrometheusObserver{
		sequence: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "disruptor",
			Name:      "cursor_sequence",
			Help:      "Last published sequence position for a named cursor.",
		}, []string{"cursor"}),
		claimRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disruptor",
			Name:      "claim_rejected_total",
			Help:      "Count of ErrInvalidClaim rejections for a named cursor.",
		}, []string{"cursor"}),
		eof: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disruptor",
			Name:      "eof_observed_total",
			Help:      "Count of EOF propagations observed at a named cursor.",
		}, []string{"cursor"}),
	}
	for _, c := range []prometheus.Collector{o.sequence, o.claimRejected, o.eof} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *PrometheusObserver) SequenceAdvanced(name string, pos int64) {
	o.sequence.WithLabelValues(name).Set(float64(pos))
}

func (o *PrometheusObserver) ClaimRejected(name string) {
	o.claimRejected.WithLabelValues(name).Inc()
}

func (o *PrometheusObserver) EOFObserved(name string) {
	o.eof.WithLabelValues(name).Inc()
}
