package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindShowAcrossDateBuckets(t *testing.T) {
	m := &Movie{
		Schedule: Schedule{
			"2026-09-05": {
				{ID: "a", SeatsAvailable: 10},
				{ID: "b", SeatsAvailable: 20},
			},
			"2026-09-06": {
				{ID: "c", SeatsAvailable: 30},
			},
		},
	}

	show, loc, ok := m.FindShow("b")
	require.True(t, ok)
	assert.Equal(t, 20, show.SeatsAvailable)
	assert.Equal(t, ShowLocation{Date: "2026-09-05", Index: 1}, loc)

	show, loc, ok = m.FindShow("c")
	require.True(t, ok)
	assert.Equal(t, 30, show.SeatsAvailable)
	assert.Equal(t, ShowLocation{Date: "2026-09-06", Index: 0}, loc)

	_, _, ok = m.FindShow("missing")
	assert.False(t, ok)
}
