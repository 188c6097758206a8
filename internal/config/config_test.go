package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `anniversaries:
  - name: Grandmother
    chinese_name: 祖母
    lunar_month: 3
    lunar_day: 15
    notes: Offerings at the family altar
  - name: Grandfather
    lunar_month: 8
    lunar_day: 2
`

func TestParseWellFormed(t *testing.T) {
	records, warnings, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(records) != 2 {
		t.Fatalf("record count = %d, want 2", len(records))
	}

	first := records[0]
	if first.Name != "Grandmother" || first.LunarMonth != 3 || first.LunarDay != 15 {
		t.Fatalf("unexpected record: %+v", first)
	}
	if first.ChineseName != "祖母" || first.Notes != "Offerings at the family altar" {
		t.Fatalf("optional fields not carried: %+v", first)
	}

	// Optional fields default to empty rather than being probed later.
	second := records[1]
	if second.ChineseName != "" || second.Notes != "" {
		t.Fatalf("optional fields should default empty: %+v", second)
	}
}

func TestParseSkipsMalformedEntry(t *testing.T) {
	payload := `anniversaries:
  - name: Incomplete
    lunar_month: 3
  - name: Grandmother
    lunar_month: 3
    lunar_day: 15
`
	records, warnings, err := Parse([]byte(payload))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("record count = %d, want 1", len(records))
	}
	if records[0].Name != "Grandmother" {
		t.Fatalf("kept wrong record: %+v", records[0])
	}
	if len(warnings) != 1 {
		t.Fatalf("warning count = %d, want 1 (%v)", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "lunar_day") {
		t.Fatalf("warning should name the missing field: %q", warnings[0])
	}
}

func TestParseRejectsOutOfRangeFields(t *testing.T) {
	payload := `anniversaries:
  - name: BadMonth
    lunar_month: 13
    lunar_day: 1
  - name: BadDay
    lunar_month: 1
    lunar_day: 31
  - lunar_month: 1
    lunar_day: 1
`
	records, warnings, err := Parse([]byte(payload))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("record count = %d, want 0 (%+v)", len(records), records)
	}
	if len(warnings) != 3 {
		t.Fatalf("warning count = %d, want 3 (%v)", len(warnings), warnings)
	}
}

func TestParseUnparsable(t *testing.T) {
	if _, _, err := Parse([]byte("anniversaries: [unclosed")); err == nil {
		t.Fatalf("expected parse error for malformed YAML")
	}
}

func TestLoadMissingFile(t *testing.T) {
	records := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if len(records) != 0 {
		t.Fatalf("record count = %d, want 0", len(records))
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anniversaries.yml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	records := Load(path)
	if len(records) != 2 {
		t.Fatalf("record count = %d, want 2", len(records))
	}
}

func TestLoadUnparsableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anniversaries.yml")
	if err := os.WriteFile(path, []byte("anniversaries: [unclosed"), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	records := Load(path)
	if len(records) != 0 {
		t.Fatalf("record count = %d, want 0", len(records))
	}
}
