// Package event builds all-day calendar event descriptors and encodes
// them as single-event iCalendar documents.
package event

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidRange reports a multi-day window whose inclusive end
// precedes its start. This is a caller defect, not a runtime condition
// to recover from.
var ErrInvalidRange = errors.New("event: invalid date range")

// Descriptor is one all-day (possibly multi-day) event. Start and
// EndExclusive are midnights in the builder's location and form the
// half-open interval [Start, EndExclusive). EndExclusive is always
// strictly after Start: a single-day event ends at the next midnight,
// which is how calendar-exchange consumers expect all-day events to be
// framed.
type Descriptor struct {
	Title        string
	Description  string
	Start        time.Time
	EndExclusive time.Time
}

// Days returns the number of calendar days the event spans.
func (d Descriptor) Days() int {
	return int(d.EndExclusive.Sub(d.Start).Hours() / 24)
}

// Builder constructs Descriptors anchored in a fixed location. The
// location only anchors the midnight timestamps; all-day events carry
// no time-of-day on the wire.
type Builder struct {
	loc *time.Location
}

// NewBuilder returns a Builder anchored in loc. A nil loc falls back
// to time.Local.
func NewBuilder(loc *time.Location) *Builder {
	if loc == nil {
		loc = time.Local
	}
	return &Builder{loc: loc}
}

// midnight truncates t to its calendar day in the builder's location.
func (b *Builder) midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, b.loc)
}

// SingleDay builds a one-day all-day event on the given date.
func (b *Builder) SingleDay(title string, date time.Time, description string) Descriptor {
	start := b.midnight(date)
	return Descriptor{
		Title:        title,
		Description:  description,
		Start:        start,
		EndExclusive: start.AddDate(0, 0, 1),
	}
}

// MultiDay builds an all-day event covering every day from start
// through endInclusive. The exclusive end lands one day past
// endInclusive, per the iCalendar all-day convention. Fails with
// ErrInvalidRange if endInclusive is an earlier day than start.
func (b *Builder) MultiDay(title string, start, endInclusive time.Time, description string) (Descriptor, error) {
	s := b.midnight(start)
	e := b.midnight(endInclusive)
	if e.Before(s) {
		return Descriptor{}, fmt.Errorf("%w: end %s before start %s",
			ErrInvalidRange, e.Format("2006-01-02"), s.Format("2006-01-02"))
	}
	return Descriptor{
		Title:        title,
		Description:  description,
		Start:        s,
		EndExclusive: e.AddDate(0, 0, 1),
	}, nil
}

// uid derives a stable event UID from the title and start date.
func uid(d Descriptor) string {
	slug := strings.ToLower(d.Title)
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	mapped = strings.Trim(mapped, "-")
	if mapped == "" {
		mapped = "event"
	}
	return fmt.Sprintf("%s-%s@memorialcal", mapped, d.Start.Format("20060102"))
}
