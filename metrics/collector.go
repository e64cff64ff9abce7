// Package metrics exports Timeline statistics to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cathiecode/timeliner"
)

// Source is satisfied by *timeliner.Timeline and *timeliner.Guarded. Sources that are written to
// from other goroutines while being collected should be Guarded.
type Source interface {
	Stats() timeliner.Stats
	Len() int
}

type counter struct {
	desc  *prometheus.Desc
	value func(timeliner.Stats) int64
}

type Collector struct {
	source   Source
	counters []counter
	items    *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

func NewCollector(namespace string, source Source) *Collector {
	newCounter := func(name, help string, value func(timeliner.Stats) int64) counter {
		return counter{
			desc:  prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, nil, nil),
			value: value,
		}
	}
	return &Collector{
		source: source,
		counters: []counter{
			newCounter("inserts_total", "Items accepted by the timeline.",
				func(s timeliner.Stats) int64 { return s.Inserts }),
			newCounter("rejections_total", "Items rejected for overlapping a stored item.",
				func(s timeliner.Stats) int64 { return s.Rejections }),
			newCounter("removals_total", "Items removed from the timeline.",
				func(s timeliner.Stats) int64 { return s.Removals }),
			newCounter("lookups_total", "Point lookups.",
				func(s timeliner.Stats) int64 { return s.Lookups }),
			newCounter("lookup_hits_total", "Point lookups that found a covering item.",
				func(s timeliner.Stats) int64 { return s.LookupHits }),
		},
		items: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "items"),
			"Items currently stored.", nil, nil),
	}
}

func (me *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, c := range me.counters {
		ch <- c.desc
	}
	ch <- me.items
}

func (me *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := me.source.Stats()
	for _, c := range me.counters {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.CounterValue, float64(c.value(stats)))
	}
	ch <- prometheus.MustNewConstMetric(me.items, prometheus.GaugeValue, float64(me.source.Len()))
}
