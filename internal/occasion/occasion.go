// Package occasion holds the fixed catalog of memorial occasions and
// resolves it into concrete events for a target year.
//
// The catalog itself is data: a table of solar-calendar occasions and
// a pair of lunar-calendar generators. No occasion here requires user
// configuration.
package occasion

import (
	"fmt"
	"time"

	"memorialcal/internal/event"
	"memorialcal/internal/lunar"
)

// Entry pairs an event with the file name it is written under.
type Entry struct {
	FileName string
	Event    event.Descriptor
}

// solarOccasion is an occasion on a fixed Gregorian date.
type solarOccasion struct {
	Month       time.Month
	Day         int
	Title       string
	FileName    string
	Description string
}

var solarOccasions = []solarOccasion{
	{
		Month:    time.April,
		Day:      5,
		Title:    "Qingming Festival 清明节",
		FileName: "qingming.ics",
		Description: "清明节 - Qingming Festival\n" +
			"Traditional tomb sweeping and ancestral worship day.\n" +
			"Traditional offerings include:\n" +
			"- Incense (香)\n" +
			"- Fresh flowers (鲜花)\n" +
			"- Food offerings (食品)",
	},
	{
		Month:    time.December,
		Day:      22,
		Title:    "Winter Solstice 冬至",
		FileName: "winter_solstice.ics",
		Description: "冬至 - Winter Solstice\n" +
			"Traditional family reunion day with ancestral remembrance.\n" +
			"Common practices include family gathering and special meals.",
	},
}

const ghostMonthDescription = "中元节 - Ghost Month (鬼月)\n" +
	"The entire 7th lunar month is the Ghost Month, with the 15th day being the Ghost Festival peak.\n" +
	"Traditional practices include:\n" +
	"- Making offerings to ancestors and wandering spirits\n" +
	"- Burning joss paper and incense\n" +
	"- Avoiding major life changes or events\n\n" +
	"Peak Day (15th): 中元节\n" +
	"Traditional offerings include:\n" +
	"- Incense (香)\n" +
	"- Food offerings (食品)\n" +
	"- Joss paper (纸钱)\n" +
	"- Fruits (水果)\n" +
	"- Tea (茶)"

const newYearsEveDescription = "除夕 - Chinese New Year's Eve\n" +
	"Traditional family reunion dinner.\n" +
	"Custom includes leaving an empty seat and chopsticks for deceased family members.\n" +
	"Traditional practices include:\n" +
	"- Family reunion dinner\n" +
	"- Ancestral worship\n" +
	"- Setting out offerings"

// SolarEvents resolves the fixed solar occasions for the given year.
func SolarEvents(year int, b *event.Builder) []Entry {
	entries := make([]Entry, 0, len(solarOccasions))
	for _, occ := range solarOccasions {
		date := time.Date(year, occ.Month, occ.Day, 0, 0, 0, 0, time.UTC)
		entries = append(entries, Entry{
			FileName: occ.FileName,
			Event:    b.SingleDay(occ.Title, date, occ.Description),
		})
	}
	return entries
}

// LunarEvents resolves the fixed lunar occasions for the given year:
// the Ghost Month window and Chinese New Year's Eve. An error here
// means the year is outside the supported lunar table and the run
// cannot proceed.
func LunarEvents(year int, b *event.Builder) ([]Entry, error) {
	var entries []Entry

	// Ghost Month spans the whole 7th lunar month. The month is 29 or
	// 30 days depending on the year, so resolve its actual length
	// before asking for the terminal day.
	start, err := lunar.ToSolar(year, 7, 1)
	if err != nil {
		return nil, fmt.Errorf("resolve ghost month start: %w", err)
	}
	lastDay, err := lunar.MonthDays(year, 7)
	if err != nil {
		return nil, fmt.Errorf("resolve ghost month length: %w", err)
	}
	end, err := lunar.ToSolar(year, 7, lastDay)
	if err != nil {
		return nil, fmt.Errorf("resolve ghost month end: %w", err)
	}
	ghost, err := b.MultiDay("Ghost Month 鬼月", start, end, ghostMonthDescription)
	if err != nil {
		return nil, fmt.Errorf("build ghost month window: %w", err)
	}
	entries = append(entries, Entry{FileName: "ghost_month.ics", Event: ghost})

	// New Year's Eve is the day before lunar 1-1 of the target year,
	// i.e. the last day of month 12 of the previous lunar year.
	newYear, err := lunar.ToSolar(year, 1, 1)
	if err != nil {
		return nil, fmt.Errorf("resolve lunar new year: %w", err)
	}
	eve := newYear.AddDate(0, 0, -1)
	entries = append(entries, Entry{
		FileName: "chinese_new_year_eve.ics",
		Event:    b.SingleDay("Chinese New Year's Eve 除夕", eve, newYearsEveDescription),
	})

	return entries, nil
}
