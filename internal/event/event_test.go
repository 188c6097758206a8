package event

import (
	"errors"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
)

func TestSingleDaySpansExactlyOneDay(t *testing.T) {
	b := NewBuilder(time.UTC)
	d := b.SingleDay("Qingming Festival", time.Date(2024, time.April, 5, 13, 45, 0, 0, time.UTC), "desc")

	if want := time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC); !d.Start.Equal(want) {
		t.Fatalf("Start = %s, want %s", d.Start, want)
	}
	if want := time.Date(2024, time.April, 6, 0, 0, 0, 0, time.UTC); !d.EndExclusive.Equal(want) {
		t.Fatalf("EndExclusive = %s, want %s", d.EndExclusive, want)
	}
	if d.Days() != 1 {
		t.Fatalf("Days() = %d, want 1", d.Days())
	}
}

func TestMultiDaySpan(t *testing.T) {
	b := NewBuilder(time.UTC)
	start := time.Date(2024, time.August, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.September, 2, 0, 0, 0, 0, time.UTC)

	d, err := b.MultiDay("Ghost Month", start, end, "desc")
	if err != nil {
		t.Fatalf("MultiDay: %v", err)
	}
	if want := end.AddDate(0, 0, 1); !d.EndExclusive.Equal(want) {
		t.Fatalf("EndExclusive = %s, want %s", d.EndExclusive, want)
	}
	if d.Days() != 30 {
		t.Fatalf("Days() = %d, want 30", d.Days())
	}
}

func TestMultiDaySameDay(t *testing.T) {
	b := NewBuilder(time.UTC)
	day := time.Date(2025, time.January, 28, 0, 0, 0, 0, time.UTC)

	d, err := b.MultiDay("Eve", day, day, "")
	if err != nil {
		t.Fatalf("MultiDay: %v", err)
	}
	if d.Days() != 1 {
		t.Fatalf("Days() = %d, want 1", d.Days())
	}
}

func TestMultiDayInvalidRange(t *testing.T) {
	b := NewBuilder(time.UTC)
	start := time.Date(2024, time.September, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.August, 4, 0, 0, 0, 0, time.UTC)

	if _, err := b.MultiDay("backwards", start, end, ""); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
}

func TestBuilderAnchorsInLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	b := NewBuilder(loc)
	d := b.SingleDay("t", time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC), "")

	if d.Start.Location() != loc {
		t.Fatalf("Start location = %v, want %v", d.Start.Location(), loc)
	}
	if d.Start.Hour() != 0 || d.Start.Day() != 5 {
		t.Fatalf("Start = %s, want midnight April 5 in builder location", d.Start)
	}
}

func TestEncodeAllDayEvent(t *testing.T) {
	b := NewBuilder(time.UTC)
	d := b.SingleDay("Qingming Festival 清明节",
		time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC),
		"tomb sweeping day")

	cal, err := ics.ParseCalendar(strings.NewReader(Encode(d).Serialize()))
	if err != nil {
		t.Fatalf("re-parse encoded calendar: %v", err)
	}
	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("event count = %d, want 1", len(events))
	}
	ev := events[0]

	if p := ev.GetProperty(ics.ComponentPropertySummary); p == nil || p.Value != "Qingming Festival 清明节" {
		t.Fatalf("unexpected SUMMARY: %+v", p)
	}
	if p := ev.GetProperty(ics.ComponentPropertyDtStart); p == nil || p.Value != "20240405" {
		t.Fatalf("unexpected DTSTART: %+v", p)
	}
	if p := ev.GetProperty(ics.ComponentPropertyDtEnd); p == nil || p.Value != "20240406" {
		t.Fatalf("unexpected DTEND: %+v", p)
	}
	if p := ev.GetProperty(ics.ComponentPropertyDescription); p == nil || p.Value == "" {
		t.Fatalf("unexpected DESCRIPTION: %+v", p)
	}
	if p := ev.GetProperty(ics.ComponentPropertyUniqueId); p == nil || p.Value == "" {
		t.Fatalf("missing UID")
	}
}

func TestEncodeMultiDayEndExclusive(t *testing.T) {
	b := NewBuilder(time.UTC)
	d, err := b.MultiDay("Ghost Month 鬼月",
		time.Date(2026, time.August, 13, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		"")
	if err != nil {
		t.Fatalf("MultiDay: %v", err)
	}

	cal, err := ics.ParseCalendar(strings.NewReader(Encode(d).Serialize()))
	if err != nil {
		t.Fatalf("re-parse encoded calendar: %v", err)
	}
	ev := cal.Events()[0]

	// DTEND is the day after the last covered day.
	if p := ev.GetProperty(ics.ComponentPropertyDtEnd); p == nil || p.Value != "20260911" {
		t.Fatalf("unexpected DTEND: %+v", p)
	}
}

func TestUIDStable(t *testing.T) {
	b := NewBuilder(time.UTC)
	d := b.SingleDay("Chinese New Year's Eve 除夕",
		time.Date(2025, time.January, 28, 0, 0, 0, 0, time.UTC), "")

	got := uid(d)
	if got != uid(d) {
		t.Fatalf("uid not deterministic: %q vs %q", got, uid(d))
	}
	if want := "chinese-new-years-eve-20250128@memorialcal"; got != want {
		t.Fatalf("uid = %q, want %q", got, want)
	}
}
