package vocabulary

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularyMetricsIntegration(t *testing.T) {
	registry := prometheus.NewRegistry()
	voc := New(WithMetrics(registry, "test_vocabulary"))

	voc.InsertIRI("http://example.org/a")
	voc.InsertIRI("http://example.org/a")
	voc.InsertIRI("http://example.org/b")
	voc.InsertBlank("_:b0")

	families, err := registry.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily)
	for _, mf := range families {
		byName[*mf.Name] = mf
	}

	hits := byName["semterms_vocabulary_intern_hits_total"]
	require.NotNil(t, hits, "hits metric should exist")
	assert.Equal(t, float64(1), *hits.Metric[0].Counter.Value)

	misses := byName["semterms_vocabulary_intern_misses_total"]
	require.NotNil(t, misses, "misses metric should exist")
	assert.Equal(t, float64(3), *misses.Metric[0].Counter.Value)

	iris := byName["semterms_vocabulary_iris"]
	require.NotNil(t, iris, "iris gauge should exist")
	assert.Equal(t, float64(2), *iris.Metric[0].Gauge.Value)

	blanks := byName["semterms_vocabulary_blank_nodes"]
	require.NotNil(t, blanks, "blank node gauge should exist")
	assert.Equal(t, float64(1), *blanks.Metric[0].Gauge.Value)
}

func TestWithMetricsIgnoresNilRegistry(t *testing.T) {
	voc := New(WithMetrics(nil, "test_vocabulary"))

	// interning must work with metrics disabled
	voc.InsertIRI("http://example.org/a")
	assert.Equal(t, int64(1), voc.Stats().Misses())
}
