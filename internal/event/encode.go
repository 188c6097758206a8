package event

import (
	"time"

	ics "github.com/arran4/golang-ical"
)

const productID = "-//memorialcal//Chinese Memorial Calendar//EN"

// Encode renders a Descriptor as an iCalendar document holding exactly
// one all-day VEVENT. DTSTART and DTEND are DATE values, with DTEND
// exclusive as the format requires.
func Encode(d Descriptor) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ics.MethodPublish)

	ev := cal.AddEvent(uid(d))
	ev.SetDtStampTime(time.Now().UTC())
	ev.SetSummary(d.Title)
	ev.SetAllDayStartAt(d.Start)
	ev.SetAllDayEndAt(d.EndExclusive)
	if d.Description != "" {
		ev.SetDescription(d.Description)
	}

	return cal
}
