// Package dates holds the pure date arithmetic used to scope transaction
// queries and to schedule recurring transactions. Every function takes the
// current instant as a parameter so callers can inject a fixed clock.
package dates

import "time"

// Period is a reporting window used when listing transactions.
type Period string

const (
	PeriodDay     Period = "day"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// Valid reports whether p is a known period. The empty string is valid and
// treated as PeriodMonth by RangeStart.
func (p Period) Valid() bool {
	switch p {
	case "", PeriodDay, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	}
	return false
}

// Frequency is a recurrence interval for recurring transactions.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// RangeStart resolves a (period, offset) pair to the inclusive lower bound of
// the window, relative to now. Offset 0 is the current period, negative
// offsets reach into the past and positive ones into the future. Year
// rollover for month and quarter offsets uses floor division so negative
// offsets land in the correct earlier year.
func RangeStart(now time.Time, period Period, offset int) time.Time {
	switch period {
	case PeriodDay:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return midnight.AddDate(0, 0, offset)
	case PeriodWeek:
		// Weeks start on Sunday.
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		sunday := midnight.AddDate(0, 0, -int(midnight.Weekday()))
		return sunday.AddDate(0, 0, offset*7)
	case PeriodQuarter:
		quarter := (int(now.Month())-1)/3 + offset
		year := now.Year() + floorDiv(quarter, 4)
		startMonth := floorMod(quarter, 4)*3 + 1
		return time.Date(year, time.Month(startMonth), 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		return time.Date(now.Year()+offset, time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		month := int(now.Month()) - 1 + offset
		year := now.Year() + floorDiv(month, 12)
		return time.Date(year, time.Month(floorMod(month, 12)+1), 1, 0, 0, 0, 0, now.Location())
	}
}

// NextDueDate advances a due date by one recurrence period. Monthly and
// yearly steps use calendar arithmetic with Go's date normalization, so a
// month step from Jan 31 lands on Mar 2 (Mar 3 in leap-less Februaries)
// rather than clamping to the end of February.
func NextDueDate(from time.Time, frequency Frequency) time.Time {
	switch frequency {
	case FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return ((a % b) + b) % b
}
