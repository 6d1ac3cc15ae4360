package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-07")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-07", d.String())

	_, err = ParseDate("07/06/2024")
	assert.Error(t, err)
}

func TestNewDateTruncatesTime(t *testing.T) {
	d := NewDate(time.Date(2024, time.June, 7, 18, 30, 15, 0, time.UTC))
	assert.Equal(t, "2024-06-07", d.String())
}

func TestDateJSON(t *testing.T) {
	b := Booking{BookingDate: NewDate(time.Date(2024, time.June, 7, 0, 0, 0, 0, time.UTC))}

	out, err := json.Marshal(b.BookingDate)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-07"`, string(out))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-13"`), &d))
	assert.Equal(t, "2024-06-13", d.String())
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, time.June, 7, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-06-07", d.String())

	require.NoError(t, d.Scan([]byte("2024-06-13")))
	assert.Equal(t, "2024-06-13", d.String())

	assert.Error(t, d.Scan(42))
}
