// Package metrics counts what happens in a console session on a private
// prometheus registry. The numbers are shown by "spaceworld metrics".
package metrics

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "sw"

// Command outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeUnknown = "unknown"
	OutcomeStaged  = "staged"
)

// StateSource exposes the live session state sampled on every gather.
type StateSource interface {
	HistoryLen() int
	Awaiting() bool
}

type Recorder struct {
	registry      *prometheus.Registry
	commands      *prometheus.CounterVec
	completions   *prometheus.CounterVec
	confirmations *prometheus.CounterVec
	duration      prometheus.Histogram
	state         *stateCollector
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Submitted command lines by verb and outcome.",
		}, []string{"verb", "outcome"}),
		completions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "completions_total",
			Help:      "Completion requests by result kind.",
		}, []string{"kind"}),
		confirmations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "confirmations_total",
			Help:      "Answers given to staged destructive commands.",
		}, []string{"response"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Time spent running leaf actions.",
			Buckets:   []float64{.001, .005, .025, .1, .5, 2.5, 10},
		}),
		state: newStateCollector(),
	}

	r.registry.MustRegister(r.commands, r.completions, r.confirmations, r.duration, r.state)
	return r
}

// Watch makes every gather read the history and gate gauges from src.
func (r *Recorder) Watch(src StateSource) {
	if r == nil {
		return
	}
	r.state.set(src)
}

func (r *Recorder) Command(verb, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.commands.WithLabelValues(strings.ToLower(verb), outcome).Inc()
	if outcome == OutcomeOK || outcome == OutcomeError {
		r.duration.Observe(elapsed.Seconds())
	}
}

func (r *Recorder) Completion(kind string) {
	if r == nil {
		return
	}
	r.completions.WithLabelValues(kind).Inc()
}

func (r *Recorder) Confirmation(response string) {
	if r == nil {
		return
	}
	r.confirmations.WithLabelValues(response).Inc()
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Sample is one flattened metric value.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

func (s Sample) String() string {
	if s.Labels == "" {
		return fmt.Sprintf("%s %g", s.Name, s.Value)
	}
	return fmt.Sprintf("%s{%s} %g", s.Name, s.Labels, s.Value)
}

// Snapshot gathers the registry into samples sorted by name and labels.
// Histograms contribute their _count and _sum series.
func (r *Recorder) Snapshot() ([]Sample, error) {
	if r == nil {
		return nil, nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := formatLabels(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out = append(out, Sample{mf.GetName(), labels, m.GetCounter().GetValue()})
			case dto.MetricType_GAUGE:
				out = append(out, Sample{mf.GetName(), labels, m.GetGauge().GetValue()})
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				out = append(out,
					Sample{mf.GetName() + "_count", labels, float64(h.GetSampleCount())},
					Sample{mf.GetName() + "_sum", labels, h.GetSampleSum()},
				)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})
	return out, nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	return strings.Join(parts, ",")
}

// stateCollector reads the session state at gather time, the same way a
// scrape-time collector reads live tables instead of mirroring them.
type stateCollector struct {
	mu  sync.Mutex
	src StateSource

	historyEntries *prometheus.Desc
	gateAwaiting   *prometheus.Desc
}

func newStateCollector() *stateCollector {
	return &stateCollector{
		historyEntries: prometheus.NewDesc(
			namespace+"_history_entries",
			"Lines currently held in the session history.",
			nil, nil,
		),
		gateAwaiting: prometheus.NewDesc(
			namespace+"_gate_awaiting",
			"1 while a destructive command waits for y or n.",
			nil, nil,
		),
	}
}

func (c *stateCollector) set(src StateSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.src = src
}

func (c *stateCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.historyEntries
	ch <- c.gateAwaiting
}

func (c *stateCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	src := c.src
	c.mu.Unlock()
	if src == nil {
		return
	}

	awaiting := 0.0
	if src.Awaiting() {
		awaiting = 1
	}

	ch <- prometheus.MustNewConstMetric(c.historyEntries, prometheus.GaugeValue, float64(src.HistoryLen()))
	ch <- prometheus.MustNewConstMetric(c.gateAwaiting, prometheus.GaugeValue, awaiting)
}
