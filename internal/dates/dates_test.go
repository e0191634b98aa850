package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedNow is a Friday mid-March, mid-month, so every period boundary is
// distinct from it.
var fixedNow = time.Date(2024, time.March, 15, 13, 45, 12, 0, time.UTC)

// -- RangeStart tests --

func TestRangeStart_MonthCurrent(t *testing.T) {
	got := RangeStart(fixedNow, PeriodMonth, 0)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestRangeStart_MonthNegativeOffset(t *testing.T) {
	got := RangeStart(fixedNow, PeriodMonth, -2)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestRangeStart_MonthNegativeOffsetCrossesYear(t *testing.T) {
	got := RangeStart(fixedNow, PeriodMonth, -3)
	assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestRangeStart_MonthPositiveOffsetCrossesYear(t *testing.T) {
	got := RangeStart(fixedNow, PeriodMonth, 10)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestRangeStart_EmptyPeriodDefaultsToMonth(t *testing.T) {
	got := RangeStart(fixedNow, "", 0)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestRangeStart_Day(t *testing.T) {
	got := RangeStart(fixedNow, PeriodDay, 0)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), got)

	got = RangeStart(fixedNow, PeriodDay, -1)
	assert.Equal(t, time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestRangeStart_WeekStartsSunday(t *testing.T) {
	// 2024-03-15 is a Friday; the week began Sunday 2024-03-10.
	got := RangeStart(fixedNow, PeriodWeek, 0)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), got)

	got = RangeStart(fixedNow, PeriodWeek, -1)
	assert.Equal(t, time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), got)
}

func TestRangeStart_WeekOnSunday(t *testing.T) {
	sunday := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	got := RangeStart(sunday, PeriodWeek, 0)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestRangeStart_Quarter(t *testing.T) {
	got := RangeStart(fixedNow, PeriodQuarter, 0)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), got)

	got = RangeStart(fixedNow, PeriodQuarter, -1)
	assert.Equal(t, time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC), got)

	got = RangeStart(fixedNow, PeriodQuarter, 2)
	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestRangeStart_Year(t *testing.T) {
	got := RangeStart(fixedNow, PeriodYear, 0)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), got)

	got = RangeStart(fixedNow, PeriodYear, 1)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), got)
}

// -- NextDueDate tests --

func TestNextDueDate_Daily(t *testing.T) {
	from := time.Date(2024, time.February, 28, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC), NextDueDate(from, FrequencyDaily))
}

func TestNextDueDate_Weekly(t *testing.T) {
	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC), NextDueDate(from, FrequencyWeekly))
}

func TestNextDueDate_Monthly(t *testing.T) {
	from := time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC), NextDueDate(from, FrequencyMonthly))
}

func TestNextDueDate_MonthlyEndOfMonthRollsOver(t *testing.T) {
	// Jan 31 + 1 month normalizes past February's end. 2024 is a leap
	// year, so it lands on Mar 2.
	from := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), NextDueDate(from, FrequencyMonthly))

	from = time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, time.March, 3, 0, 0, 0, 0, time.UTC), NextDueDate(from, FrequencyMonthly))
}

func TestNextDueDate_Yearly(t *testing.T) {
	from := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), NextDueDate(from, FrequencyYearly))
}

func TestPeriodValid(t *testing.T) {
	assert.True(t, Period("").Valid())
	assert.True(t, PeriodQuarter.Valid())
	assert.False(t, Period("fortnight").Valid())
}

func TestFrequencyValid(t *testing.T) {
	assert.True(t, FrequencyMonthly.Valid())
	assert.False(t, Frequency("").Valid())
	assert.False(t, Frequency("hourly").Valid())
}
