package dates

import (
	"testing"
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthBoundaries(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	ts := time.Date(2024, time.February, 17, 15, 4, 5, 0, loc)
	assert.Equal(t, Date(2024, time.February, 1, loc), MonthStart(ts))
	assert.Equal(t, Date(2024, time.February, 29, loc), MonthEnd(ts))
	assert.Equal(t, 29, DaysInMonth(ts))
	assert.Equal(t, 28, DaysInMonth(Date(2023, time.February, 10, loc)))
	assert.Equal(t, 31, DaysInMonth(Date(2024, time.December, 31, loc)))
	assert.Equal(t, Date(2023, time.November, 1, loc), AddMonths(ts, -3))
}

func TestAdvance(t *testing.T) {
	start := Date(2024, time.January, 15, time.UTC)
	assert.Equal(t, Date(2024, time.January, 22, time.UTC), Advance(start, domain.FrequencyWeekly))
	assert.Equal(t, Date(2024, time.February, 15, time.UTC), Advance(start, domain.FrequencyMonthly))
	assert.Equal(t, Date(2025, time.January, 15, time.UTC), Advance(start, domain.FrequencyYearly))

	// Month overflow follows calendar arithmetic.
	assert.Equal(t, Date(2024, time.March, 2, time.UTC), Advance(Date(2024, time.January, 31, time.UTC), domain.FrequencyMonthly))
	assert.Equal(t, Date(2025, time.March, 1, time.UTC), Advance(Date(2024, time.February, 29, time.UTC), domain.FrequencyYearly))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(Date(2024, 3, 10, time.UTC), Date(2024, 3, 10, time.UTC)))
	assert.Equal(t, 31, DaysBetween(Date(2024, 3, 1, time.UTC), Date(2024, 4, 1, time.UTC)))
	assert.Equal(t, -1, DaysBetween(Date(2024, 3, 2, time.UTC), Date(2024, 3, 1, time.UTC)))
}

func TestParse(t *testing.T) {
	m, err := ParseYearMonth("2024-03", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, Date(2024, time.March, 1, time.UTC), m)

	_, err = ParseYearMonth("2024-13", time.UTC)
	assert.Error(t, err)

	d, err := ParseDate("2024-01-15", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, Date(2024, time.January, 15, time.UTC), d)

	_, err = ParseDate("15/01/2024", time.UTC)
	assert.Error(t, err)
}
