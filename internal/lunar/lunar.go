// Package lunar converts between the Chinese lunar calendar and the
// Gregorian (solar) calendar for lunar years 1900 through 2100.
//
// The conversion is table-driven: one packed value per lunar year
// encodes the lengths of the twelve regular months, the leap month
// number (if any), and the leap month's length. Day arithmetic is
// anchored on the epoch 1900-01-31, which is lunar 1900-01-01.
package lunar

import (
	"errors"
	"fmt"
	"time"
)

const (
	// MinYear and MaxYear bound the lunar years covered by the table.
	MinYear = 1900
	MaxYear = 2100
)

// ErrInvalidDate reports a lunar or solar date outside the supported
// range, or a lunar day that does not exist in its month for that year
// (e.g. day 30 of a 29-day month).
var ErrInvalidDate = errors.New("lunar: invalid date")

// epoch is lunar 1900-01-01.
var epoch = time.Date(1900, time.January, 31, 0, 0, 0, 0, time.UTC)

// yearInfo packs one lunar year per entry, MinYear first.
//
// Bit layout per entry:
//
//	0x0000f   leap month number (0 = no leap month)
//	0x10000>>m  set if regular month m (1..12) has 30 days, else 29
//	0x10000   set if the leap month has 30 days, else 29
var yearInfo = [MaxYear - MinYear + 1]int{
	0x04bd8, 0x04ae0, 0x0a570, 0x054d5, 0x0d260, 0x0d950, 0x16554, 0x056a0, 0x09ad0, 0x055d2,
	0x04ae0, 0x0a5b6, 0x0a4d0, 0x0d250, 0x1d255, 0x0b540, 0x0d6a0, 0x0ada2, 0x095b0, 0x14977,
	0x04970, 0x0a4b0, 0x0b4b5, 0x06a50, 0x06d40, 0x1ab54, 0x02b60, 0x09570, 0x052f2, 0x04970,
	0x06566, 0x0d4a0, 0x0ea50, 0x06e95, 0x05ad0, 0x02b60, 0x186e3, 0x092e0, 0x1c8d7, 0x0c950,
	0x0d4a0, 0x1d8a6, 0x0b550, 0x056a0, 0x1a5b4, 0x025d0, 0x092d0, 0x0d2b2, 0x0a950, 0x0b557,
	0x06ca0, 0x0b550, 0x15355, 0x04da0, 0x0a5b0, 0x14573, 0x052b0, 0x0a9a8, 0x0e950, 0x06aa0,
	0x0aea6, 0x0ab50, 0x04b60, 0x0aae4, 0x0a570, 0x05260, 0x0f263, 0x0d950, 0x05b57, 0x056a0,
	0x096d0, 0x04dd5, 0x04ad0, 0x0a4d0, 0x0d4d4, 0x0d250, 0x0d558, 0x0b540, 0x0b5a0, 0x195a6,
	0x095b0, 0x049b0, 0x0a974, 0x0a4b0, 0x0b27a, 0x06a50, 0x06d40, 0x0af46, 0x0ab60, 0x09570,
	0x04af5, 0x04970, 0x064b0, 0x074a3, 0x0ea50, 0x06b58, 0x05ac0, 0x0ab60, 0x096d5, 0x092e0,
	0x0c960, 0x0d954, 0x0d4a0, 0x0da50, 0x07552, 0x056a0, 0x0abb7, 0x025d0, 0x092d0, 0x0cab5,
	0x0a950, 0x0b4a0, 0x0baa4, 0x0ad50, 0x055d9, 0x04ba0, 0x0a5b0, 0x15176, 0x052b0, 0x0a930,
	0x07954, 0x06aa0, 0x0ad50, 0x05b52, 0x04b60, 0x0a6e6, 0x0a4e0, 0x0d260, 0x0ea65, 0x0d530,
	0x05aa0, 0x076a3, 0x096d0, 0x04afb, 0x04ad0, 0x0a4d0, 0x1d0b6, 0x0d250, 0x0d520, 0x0dd45,
	0x0b5a0, 0x056d0, 0x055b2, 0x049b0, 0x0a577, 0x0a4b0, 0x0aa50, 0x1b255, 0x06d20, 0x0ada0,
	0x14b63, 0x09370, 0x049f8, 0x04970, 0x064b0, 0x168a6, 0x0ea50, 0x06b20, 0x1a6c4, 0x0aae0,
	0x0a2e0, 0x0d2e3, 0x0c960, 0x0d557, 0x0d4a0, 0x0da50, 0x05d55, 0x056a0, 0x0a6d0, 0x055d4,
	0x052d0, 0x0a9b8, 0x0a950, 0x0b4a0, 0x0b6a6, 0x0ad50, 0x055a0, 0x0aba4, 0x0a5b0, 0x052b0,
	0x0b273, 0x06930, 0x07337, 0x06aa0, 0x0ad50, 0x14b55, 0x04b60, 0x0a570, 0x054e4, 0x0d160,
	0x0e968, 0x0d520, 0x0daa0, 0x16aa6, 0x056d0, 0x04ae0, 0x0a9d4, 0x0a2d0, 0x0d150, 0x0f252,
	0x0d520,
}

// Date is a date in the lunar calendar. Leap marks a day inside the
// year's leap month (which follows the regular month of the same
// number).
type Date struct {
	Year  int
	Month int
	Day   int
	Leap  bool
}

func (d Date) String() string {
	if d.Leap {
		return fmt.Sprintf("lunar %d-%02d-%02d (leap)", d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("lunar %d-%02d-%02d", d.Year, d.Month, d.Day)
}

// LeapMonth returns the leap month number for the given lunar year, or
// 0 if the year has no leap month. Years outside the table yield 0.
func LeapMonth(year int) int {
	if year < MinYear || year > MaxYear {
		return 0
	}
	return yearInfo[year-MinYear] & 0xf
}

// LeapMonthDays returns the length of the leap month in the given
// lunar year, or 0 if the year has none.
func LeapMonthDays(year int) int {
	if LeapMonth(year) == 0 {
		return 0
	}
	if yearInfo[year-MinYear]&0x10000 != 0 {
		return 30
	}
	return 29
}

// MonthDays returns the number of days (29 or 30) in the given regular
// lunar month. Callers that need the last day of a month, such as the
// Ghost Month window, must query this before resolving the terminal
// day rather than probing with day 30.
func MonthDays(year, month int) (int, error) {
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("%w: year %d outside %d..%d", ErrInvalidDate, year, MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	if yearInfo[year-MinYear]&(0x10000>>uint(month)) != 0 {
		return 30, nil
	}
	return 29, nil
}

// yearDays returns the total number of days in the given lunar year,
// including its leap month.
func yearDays(year int) int {
	info := yearInfo[year-MinYear]
	days := 0
	for month := 1; month <= 12; month++ {
		if info&(0x10000>>uint(month)) != 0 {
			days += 30
		} else {
			days += 29
		}
	}
	if LeapMonth(year) != 0 {
		days += LeapMonthDays(year)
	}
	return days
}

// ToSolar converts a regular (non-leap) lunar date to the
// corresponding solar date at midnight UTC. The returned time is
// day-granular; callers anchor it into their own location.
func ToSolar(year, month, day int) (time.Time, error) {
	return toSolar(year, month, day, false)
}

// ToSolarLeap converts a date inside the given year's leap month. It
// fails with ErrInvalidDate if the year has no leap month, if the leap
// month number differs from month, or if the day does not exist.
func ToSolarLeap(year, month, day int) (time.Time, error) {
	return toSolar(year, month, day, true)
}

func toSolar(year, month, day int, leap bool) (time.Time, error) {
	if year < MinYear || year > MaxYear {
		return time.Time{}, fmt.Errorf("%w: year %d outside %d..%d", ErrInvalidDate, year, MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}

	limit := 0
	if leap {
		if LeapMonth(year) != month {
			return time.Time{}, fmt.Errorf("%w: year %d has no leap month %d", ErrInvalidDate, year, month)
		}
		limit = LeapMonthDays(year)
	} else {
		var err error
		limit, err = MonthDays(year, month)
		if err != nil {
			return time.Time{}, err
		}
	}
	if day < 1 || day > limit {
		return time.Time{}, fmt.Errorf("%w: day %d of %d-day lunar month %d-%d", ErrInvalidDate, day, limit, year, month)
	}

	offset := 0
	for y := MinYear; y < year; y++ {
		offset += yearDays(y)
	}
	lm := LeapMonth(year)
	for m := 1; m < month; m++ {
		n, _ := MonthDays(year, m)
		offset += n
		if m == lm {
			offset += LeapMonthDays(year)
		}
	}
	if leap {
		n, _ := MonthDays(year, month)
		offset += n
	}

	return epoch.AddDate(0, 0, offset+day-1), nil
}

// FromSolar converts a solar date (only the year, month and day are
// considered) to its lunar date. Dates before the epoch or past the
// end of lunar year MaxYear fail with ErrInvalidDate.
func FromSolar(t time.Time) (Date, error) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := int(day.Sub(epoch).Hours() / 24)
	if offset < 0 {
		return Date{}, fmt.Errorf("%w: %s precedes lunar %d-01-01", ErrInvalidDate, day.Format("2006-01-02"), MinYear)
	}

	year := MinYear
	for {
		n := yearDays(year)
		if offset < n {
			break
		}
		offset -= n
		year++
		if year > MaxYear {
			return Date{}, fmt.Errorf("%w: %s past end of lunar year %d", ErrInvalidDate, day.Format("2006-01-02"), MaxYear)
		}
	}

	lm := LeapMonth(year)
	month := 1
	leap := false
	for {
		n, _ := MonthDays(year, month)
		if offset < n {
			break
		}
		offset -= n
		if month == lm {
			if offset < LeapMonthDays(year) {
				leap = true
				break
			}
			offset -= LeapMonthDays(year)
		}
		month++
	}

	return Date{Year: year, Month: month, Day: offset + 1, Leap: leap}, nil
}
