package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulateStats(t *testing.T) {
	t.Run("sums numeric entries as running totals", func(t *testing.T) {
		totals := StatMap{"runs": float64(40), "wickets": float64(2)}
		totals = AccumulateStats(totals, StatMap{"runs": float64(55), "wickets": float64(1), "catches": float64(3)})

		assert.Equal(t, float64(95), totals["runs"])
		assert.Equal(t, float64(3), totals["wickets"])
		assert.Equal(t, float64(3), totals["catches"])
	})

	t.Run("non-numeric entries are skipped", func(t *testing.T) {
		totals := AccumulateStats(nil, StatMap{"score": "200/5", "runs": float64(10)})
		assert.Equal(t, float64(10), totals["runs"])
		_, ok := totals["score"]
		assert.False(t, ok)
	})

	t.Run("nil destination starts fresh", func(t *testing.T) {
		totals := AccumulateStats(nil, StatMap{"goals": 2})
		assert.Equal(t, float64(2), totals["goals"])
	})
}

func TestStatMapScan(t *testing.T) {
	t.Run("round trips through JSONB bytes", func(t *testing.T) {
		var m StatMap
		require.NoError(t, m.Scan([]byte(`{"runs": 55, "notes": "strong finish"}`)))
		assert.Equal(t, float64(55), m["runs"])
		assert.Equal(t, "strong finish", m["notes"])
	})

	t.Run("NULL scans to an empty map", func(t *testing.T) {
		var m StatMap
		require.NoError(t, m.Scan(nil))
		assert.NotNil(t, m)
		assert.Empty(t, m)
	})
}

func TestRoleVocabulary(t *testing.T) {
	v := DefaultRoleVocabulary

	assert.True(t, v.KnownSport("Cricket"))
	assert.False(t, v.KnownSport("Chess"))

	assert.True(t, v.AllowsRole("Cricket", "Bowler"))
	assert.False(t, v.AllowsRole("Cricket", "Goalkeeper"))
	assert.True(t, v.AllowsRole("Cricket", ""), "the sport role is optional")
	assert.False(t, v.AllowsRole("Chess", "Bishop"))
}

func TestMatchRoomID(t *testing.T) {
	m := Match{ID: 42}
	assert.Equal(t, "match_42", m.RoomID())
}
