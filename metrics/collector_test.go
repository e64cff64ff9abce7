package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cathiecode/timeliner"
)

func TestCollector(t *testing.T) {
	tl := timeliner.NewGuarded[int, timeliner.Span[int]](nil)
	require.NoError(t, tl.Insert(timeliner.Span[int]{0, 5}))
	require.NoError(t, tl.Insert(timeliner.Span[int]{5, 9}))
	require.Error(t, tl.Insert(timeliner.Span[int]{3, 6}))
	tl.Get(1)
	tl.Get(9)

	c := NewCollector("timeline", tl)
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))
	assert.Equal(t, 6, testutil.CollectAndCount(c))

	const expected = `
# HELP timeline_inserts_total Items accepted by the timeline.
# TYPE timeline_inserts_total counter
timeline_inserts_total 2
# HELP timeline_rejections_total Items rejected for overlapping a stored item.
# TYPE timeline_rejections_total counter
timeline_rejections_total 1
# HELP timeline_lookup_hits_total Point lookups that found a covering item.
# TYPE timeline_lookup_hits_total counter
timeline_lookup_hits_total 1
# HELP timeline_items Items currently stored.
# TYPE timeline_items gauge
timeline_items 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"timeline_inserts_total", "timeline_rejections_total", "timeline_lookup_hits_total", "timeline_items"))

	tl.Remove(timeliner.Span[int]{0, 5})
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP timeline_items Items currently stored.
# TYPE timeline_items gauge
timeline_items 1
# HELP timeline_removals_total Items removed from the timeline.
# TYPE timeline_removals_total counter
timeline_removals_total 1
`), "timeline_items", "timeline_removals_total"))
}
