package vocabulary

import (
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Statistics tracks vocabulary interning activity. Stats are always
// collected; Prometheus export is opt-in via WithMetrics.
type Statistics struct {
	hits       int64
	misses     int64
	inlineHits int64

	mu       sync.RWMutex
	iris     int
	blanks   int
	literals int
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{}
}

// Hit records an insert that resolved to an existing index.
func (s *Statistics) Hit() {
	atomic.AddInt64(&s.hits, 1)
}

// Miss records an insert that extended an arena.
func (s *Statistics) Miss() {
	atomic.AddInt64(&s.misses, 1)
}

// InlineHit records an insert that classified inline, bypassing the
// arena.
func (s *Statistics) InlineHit() {
	atomic.AddInt64(&s.inlineHits, 1)
}

// UpdateSizes records the current arena sizes.
func (s *Statistics) UpdateSizes(iris, blanks, literals int) {
	s.mu.Lock()
	s.iris = iris
	s.blanks = blanks
	s.literals = literals
	s.mu.Unlock()
}

// Hits returns the number of inserts that hit an existing index.
func (s *Statistics) Hits() int64 {
	return atomic.LoadInt64(&s.hits)
}

// Misses returns the number of inserts that extended an arena.
func (s *Statistics) Misses() int64 {
	return atomic.LoadInt64(&s.misses)
}

// InlineHits returns the number of inserts that classified inline.
func (s *Statistics) InlineHits() int64 {
	return atomic.LoadInt64(&s.inlineHits)
}

// Sizes returns the recorded arena sizes.
func (s *Statistics) Sizes() (iris, blanks, literals int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.iris, s.blanks, s.literals
}

// HitRatio returns the fraction of inserts that hit an existing
// index, between 0.0 and 1.0.
func (s *Statistics) HitRatio() float64 {
	hits := s.Hits()
	total := hits + s.Misses()
	if total == 0 {
		return 0.0
	}
	return float64(hits) / float64(total)
}

// vocabularyMetrics holds Prometheus metrics for interning activity.
// A nil receiver is a no-op so the hot path never branches on
// configuration.
type vocabularyMetrics struct {
	hits       prometheus.Counter
	misses     prometheus.Counter
	inlineHits prometheus.Counter
	iris       prometheus.Gauge
	blanks     prometheus.Gauge
	literals   prometheus.Gauge
}

// WithMetrics enables Prometheus export for vocabulary statistics.
// If registry is nil or prefix is empty, this option is ignored.
func WithMetrics(registry prometheus.Registerer, prefix string) Option {
	return func(v *IndexVocabulary) {
		if registry == nil || prefix == "" {
			return
		}
		v.metrics = newVocabularyMetrics(registry, prefix)
	}
}

func newVocabularyMetrics(registry prometheus.Registerer, prefix string) *vocabularyMetrics {
	labels := prometheus.Labels{"component": prefix}
	m := &vocabularyMetrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "semterms",
			Subsystem:   "vocabulary",
			Name:        "intern_hits_total",
			ConstLabels: labels,
			Help:        "Total number of inserts that resolved to an existing index",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "semterms",
			Subsystem:   "vocabulary",
			Name:        "intern_misses_total",
			ConstLabels: labels,
			Help:        "Total number of inserts that extended an arena",
		}),
		inlineHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "semterms",
			Subsystem:   "vocabulary",
			Name:        "intern_inline_hits_total",
			ConstLabels: labels,
			Help:        "Total number of inserts that classified inline",
		}),
		iris: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "semterms",
			Subsystem:   "vocabulary",
			Name:        "iris",
			ConstLabels: labels,
			Help:        "Number of interned IRIs",
		}),
		blanks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "semterms",
			Subsystem:   "vocabulary",
			Name:        "blank_nodes",
			ConstLabels: labels,
			Help:        "Number of interned blank nodes",
		}),
		literals: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "semterms",
			Subsystem:   "vocabulary",
			Name:        "literals",
			ConstLabels: labels,
			Help:        "Number of interned literals",
		}),
	}
	registry.MustRegister(m.hits, m.misses, m.inlineHits, m.iris, m.blanks, m.literals)
	return m
}

func (m *vocabularyMetrics) hit() {
	if m == nil {
		return
	}
	m.hits.Inc()
}

func (m *vocabularyMetrics) miss() {
	if m == nil {
		return
	}
	m.misses.Inc()
}

func (m *vocabularyMetrics) inlineHit() {
	if m == nil {
		return
	}
	m.inlineHits.Inc()
}

func (m *vocabularyMetrics) updateSizes(iris, blanks, literals int) {
	if m == nil {
		return
	}
	m.iris.Set(float64(iris))
	m.blanks.Set(float64(blanks))
	m.literals.Set(float64(literals))
}
