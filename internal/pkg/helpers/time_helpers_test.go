package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Second, ParseDuration("90s", time.Minute))
	assert.Equal(t, 12*time.Hour, ParseDuration("12h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("not-a-duration", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.August, parsed.Month())
	assert.Equal(t, 29, parsed.Day())

	_, err = ParseDate("29-08-2026")
	assert.Error(t, err)

	_, err = ParseDate("2026-13-40")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}
