// Package config loads the user's death-anniversary records from a
// YAML file.
//
// Ingestion never fails the run: a missing or unparsable file degrades
// to zero records with a warning, and individual malformed entries are
// skipped with a warning while the rest are kept.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	appLog "memorialcal/internal/log"
)

// Anniversary is one death anniversary on the lunar calendar. Name,
// LunarMonth and LunarDay are required; ChineseName and Notes default
// to empty at ingestion so downstream code never probes for presence.
type Anniversary struct {
	Name        string `yaml:"name"`
	ChineseName string `yaml:"chinese_name"`
	LunarMonth  int    `yaml:"lunar_month"`
	LunarDay    int    `yaml:"lunar_day"`
	Notes       string `yaml:"notes"`
}

// validate reports why an entry is unusable, or nil.
func (a Anniversary) validate() error {
	if a.Name == "" {
		return errors.New("missing required field name")
	}
	if a.LunarMonth < 1 || a.LunarMonth > 12 {
		return fmt.Errorf("lunar_month %d missing or outside 1..12", a.LunarMonth)
	}
	if a.LunarDay < 1 || a.LunarDay > 30 {
		return fmt.Errorf("lunar_day %d missing or outside 1..30", a.LunarDay)
	}
	return nil
}

// document is the top-level YAML shape.
type document struct {
	Anniversaries []Anniversary `yaml:"anniversaries"`
}

// Parse decodes a YAML payload into anniversary records. Entries that
// fail validation are dropped and reported in the returned warnings.
// An error means the document itself could not be decoded.
func Parse(data []byte) ([]Anniversary, []string, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, err
	}

	records := make([]Anniversary, 0, len(doc.Anniversaries))
	var warnings []string
	for i, a := range doc.Anniversaries {
		if err := a.validate(); err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping anniversary entry %d: %v", i+1, err))
			continue
		}
		records = append(records, a)
	}
	return records, warnings, nil
}

// Load reads anniversary records from path. All failure modes degrade
// to warnings; the returned slice is empty in the worst case.
func Load(path string) []Anniversary {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			appLog.Warn("anniversary config not found, continuing without anniversaries", "path", path)
		} else {
			appLog.Warn("anniversary config unreadable, continuing without anniversaries", "path", path, "err", err)
		}
		return nil
	}

	records, warnings, err := Parse(data)
	if err != nil {
		appLog.Warn("anniversary config unparsable, continuing without anniversaries", "path", path, "err", err)
		return nil
	}
	for _, w := range warnings {
		appLog.Warn(w, "path", path)
	}
	if len(records) == 0 {
		appLog.Warn("no anniversaries found in config", "path", path)
	}
	return records
}
