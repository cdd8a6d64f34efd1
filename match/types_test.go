package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matchlab/bimatch/match"
)

func TestTrend_Monotone(t *testing.T) {
	good := match.Trend{{0, 0}, {1, 0}, {2, 1}, {3, 1}}
	assert.True(t, good.Monotone())

	dropMatched := match.Trend{{0, 0}, {1, 1}, {2, 0}}
	assert.False(t, dropMatched.Monotone())

	dropRevealed := match.Trend{{0, 0}, {2, 1}, {1, 1}}
	assert.False(t, dropRevealed.Monotone())

	assert.True(t, match.Trend{}.Monotone(), "empty trend is trivially monotone")
}

func TestTrend_Final(t *testing.T) {
	assert.Equal(t, 0, match.Trend{}.Final())
	assert.Equal(t, 2, match.Trend{{0, 0}, {1, 1}, {2, 2}}.Final())
}

func TestTrend_Validate(t *testing.T) {
	ok := match.Trend{{0, 0}, {1, 1}, {2, 2}}
	assert.NoError(t, ok.Validate(2))

	// Wrong length.
	assert.ErrorIs(t, ok.Validate(3), match.ErrBadTrend)

	// Wrong baseline.
	bad := match.Trend{{1, 0}, {1, 1}, {2, 2}}
	assert.ErrorIs(t, bad.Validate(2), match.ErrBadTrend)

	// Reveal counter must step by one.
	bad = match.Trend{{0, 0}, {2, 1}, {3, 2}}
	assert.ErrorIs(t, bad.Validate(2), match.ErrBadTrend)

	// Matching size must not drop.
	bad = match.Trend{{0, 0}, {1, 1}, {2, 0}}
	assert.ErrorIs(t, bad.Validate(2), match.ErrBadTrend)
}
