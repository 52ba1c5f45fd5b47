package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	at := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-05", DayKey(at))
	assert.Equal(t, "2024-03", MonthKey(at))
}

func TestValidMonthKey(t *testing.T) {
	for _, key := range []string{"2024-01", "2024-12", "1999-06"} {
		assert.True(t, ValidMonthKey(key), key)
	}
	for _, key := range []string{"", "2024-13", "2024-00", "2024-1", "2024/03", "2024-03-01", "March 2024"} {
		assert.False(t, ValidMonthKey(key), key)
	}
}

func TestMonthBounds(t *testing.T) {
	first, last, err := MonthBounds("2024-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", first)
	assert.Equal(t, "2024-02-29", last) // leap year

	first, last, err = MonthBounds("2023-02")
	require.NoError(t, err)
	assert.Equal(t, "2023-02-01", first)
	assert.Equal(t, "2023-02-28", last)

	first, last, err = MonthBounds("2024-12")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-01", first)
	assert.Equal(t, "2024-12-31", last)

	_, _, err = MonthBounds("2024-13")
	assert.Error(t, err)
}

func TestMonthBoundsAt(t *testing.T) {
	first, last := MonthBoundsAt(time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-03-01", first)
	assert.Equal(t, "2024-03-31", last)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "March 2024", MonthName("2024-03"))
	assert.Equal(t, "December 1999", MonthName("1999-12"))
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "Friday, March 1", DisplayDate("2024-03-01"))
	assert.Equal(t, "Tuesday, December 31", DisplayDate("2024-12-31"))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth("2024-02"))
	assert.Equal(t, 28, DaysInMonth("2023-02"))
	assert.Equal(t, 31, DaysInMonth("2024-07"))
	assert.Equal(t, 30, DaysInMonth("2024-04"))
}
