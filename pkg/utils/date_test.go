package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-08-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), *parsed)

	parsed, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, parsed.IsZero())

	_, err = ParseDate("15/08/2026")
	assert.Error(t, err)
}

func TestLastDays(t *testing.T) {
	r := LastDays(7)

	assert.WithinDuration(t, time.Now(), r.End, time.Minute)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), r.Start, time.Minute)
	assert.Equal(t, r.Start.Format(time.DateOnly), r.StartString())
	assert.Equal(t, r.End.Format(time.DateOnly), r.EndString())
}
