// Package generate assembles the full event set for a target year and
// writes one iCalendar file per event.
package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"memorialcal/internal/config"
	"memorialcal/internal/event"
	appLog "memorialcal/internal/log"
	"memorialcal/internal/lunar"
	"memorialcal/internal/occasion"
)

// Options configures a single generation run.
type Options struct {
	// Year is the target Gregorian year.
	Year int
	// OutputDir receives one .ics file per event.
	OutputDir string
	// Location anchors all-day event midnights. Nil means time.Local.
	Location *time.Location
}

// Run resolves every fixed occasion and anniversary for the target
// year and writes the resulting event files. It returns the paths of
// the files written. A failed write of one file is warned and does not
// stop the others; an unresolvable date (bad catalog entry or bad
// anniversary) aborts the run.
func Run(opts Options, anniversaries []config.Anniversary) ([]string, error) {
	b := event.NewBuilder(opts.Location)

	entries := occasion.SolarEvents(opts.Year, b)

	lunarEntries, err := occasion.LunarEvents(opts.Year, b)
	if err != nil {
		return nil, err
	}
	entries = append(entries, lunarEntries...)

	annEntries, err := anniversaryEvents(opts.Year, b, anniversaries)
	if err != nil {
		return nil, err
	}
	entries = append(entries, annEntries...)

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		path := filepath.Join(opts.OutputDir, SanitizeFileName(e.FileName))
		data := event.Encode(e.Event).Serialize()
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			appLog.Warn("failed to write event file, skipping", "path", path, "err", err)
			continue
		}
		appLog.Info("event written",
			"file", filepath.Base(path),
			"title", e.Event.Title,
			"start", e.Event.Start.Format("2006-01-02"),
			"days", e.Event.Days(),
		)
		paths = append(paths, path)
	}

	return paths, nil
}

// anniversaryEvents resolves each record's lunar date in the target
// year and builds a one-day event per record.
func anniversaryEvents(year int, b *event.Builder, records []config.Anniversary) ([]occasion.Entry, error) {
	entries := make([]occasion.Entry, 0, len(records))
	for _, a := range records {
		date, err := lunar.ToSolar(year, a.LunarMonth, a.LunarDay)
		if err != nil {
			return nil, fmt.Errorf("resolve anniversary %q: %w", a.Name, err)
		}

		title := a.Name
		if a.ChineseName != "" {
			title = fmt.Sprintf("%s (%s)", a.Name, a.ChineseName)
		}
		description := fmt.Sprintf("%s\nLunar Date: %d月%d日\n\nNotes: %s\n",
			title, a.LunarMonth, a.LunarDay, a.Notes)

		entries = append(entries, occasion.Entry{
			FileName: fmt.Sprintf("anniversary_%s.ics", a.Name),
			Event:    b.SingleDay(title, date, description),
		})
	}
	return entries, nil
}

// SanitizeFileName normalizes an event file name: lowercased, spaces
// become underscores, commas and apostrophes are stripped.
func SanitizeFileName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, ",", "")
	name = strings.ReplaceAll(name, "'", "")
	return name
}
