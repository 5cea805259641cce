package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.May, 10)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-10"`, string(out))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-10"`), &parsed))
	assert.True(t, parsed.Equal(d))

	assert.Error(t, json.Unmarshal([]byte(`"10.05.2024"`), &parsed))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-05-10"))
	assert.Equal(t, "2024-05-10", d.String())

	// Datetime strings from the driver keep the date part only.
	require.NoError(t, d.Scan("2024-05-10 15:04:05"))
	assert.Equal(t, "2024-05-10", d.String())

	require.NoError(t, d.Scan(time.Date(2024, time.May, 10, 23, 59, 0, 0, time.Local)))
	assert.Equal(t, "2024-05-10", d.String())

	assert.Error(t, d.Scan(42))
}

func TestDateComparisons(t *testing.T) {
	earlier := NewDate(2024, time.May, 10)
	later := NewDate(2024, time.May, 11)

	assert.True(t, later.After(earlier))
	assert.True(t, earlier.Before(later))
	assert.False(t, earlier.Equal(later))
	assert.True(t, earlier.Equal(NewDate(2024, time.May, 10)))
}
