package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rail-route-service/internal/domain"
)

func TestBridge(t *testing.T) {
	west := meridianLine(-6.2, 106.8, 3, 31)
	gapEnd := northOf(west[30], 1)
	east := meridianLine(gapEnd.Lat, gapEnd.Lon, 3, 31)

	g := BuildGraph([]Segment{segmentOf("w", west), segmentOf("e", east)}, DefaultConfig())
	require.Equal(t, 2, g.ComponentCount)

	from := west[25]
	to := east[5]
	fromCands := FindCandidates(g, from, 6, 6)
	toCands := FindCandidates(g, to, 6, 6)

	t.Run("disjoint components", func(t *testing.T) {
		assert.True(t, componentsDisjoint(g, fromCands, toCands))
		assert.False(t, componentsDisjoint(g, fromCands, fromCands))
	})

	t.Run("closest pair within threshold", func(t *testing.T) {
		path, ok := Bridge(g, from, to, fromCands, toCands, DefaultConfig())
		require.True(t, ok)
		require.Len(t, path, 4)

		assert.Equal(t, from, path[0])
		assert.Equal(t, to, path[3])
		assert.Greater(t, path[1].Lat, from.Lat)
		assert.Less(t, path[2].Lat, to.Lat)
		assert.GreaterOrEqual(t, PathLength(path), Distance(from, to)-1e-9)
	})

	t.Run("threshold exceeded", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.BridgeKm = 0.5
		_, ok := Bridge(g, from, to, fromCands, toCands, cfg)
		assert.False(t, ok)
	})

	t.Run("same component is never bridged", func(t *testing.T) {
		_, ok := Bridge(g, from, west[0], fromCands, FindCandidates(g, west[0], 6, 6), DefaultConfig())
		assert.False(t, ok)
	})

	t.Run("route status", func(t *testing.T) {
		path, status, err := RoutePath(g, from, to, DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, domain.RouteStatusBridged, status)
		assert.Len(t, path, 4)
	})
}
