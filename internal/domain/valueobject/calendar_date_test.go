package valueobject

import (
	"errors"
	"testing"
	"time"
)

func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected CalendarDate
	}{
		{name: "plain ISO date", raw: "2024-03-05", expected: CalendarDate{2024, time.March, 5}},
		{name: "ISO timestamp keeps written date", raw: "2024-03-05T23:30:00+07:00", expected: CalendarDate{2024, time.March, 5}},
		{name: "ISO timestamp UTC", raw: "2024-12-31T00:00:00Z", expected: CalendarDate{2024, time.December, 31}},
		{name: "ISO without zone", raw: "2024-03-05T10:11:12", expected: CalendarDate{2024, time.March, 5}},
		{name: "RFC1123", raw: "Tue, 05 Mar 2024 10:00:00 GMT", expected: CalendarDate{2024, time.March, 5}},
		{name: "day first with dashes", raw: "05-03-2024", expected: CalendarDate{2024, time.March, 5}},
		{name: "day first with slashes", raw: "05/03/2024", expected: CalendarDate{2024, time.March, 5}},
		{name: "year first unpadded", raw: "2024-3-5", expected: CalendarDate{2024, time.March, 5}},
		{name: "year first with slashes", raw: "2024/03/05", expected: CalendarDate{2024, time.March, 5}},
		{name: "surrounding whitespace", raw: "  05/03/2024 ", expected: CalendarDate{2024, time.March, 5}},
		{name: "short ambiguous value resolves day first", raw: "01/02/03", expected: CalendarDate{3, time.February, 1}},
		{name: "leap day", raw: "29-02-2024", expected: CalendarDate{2024, time.February, 29}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCalendarDate(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.raw, err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func mustParse(t *testing.T, raw string) CalendarDate {
	t.Helper()
	d, err := ParseCalendarDate(raw)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", raw, err)
	}
	return d
}

func TestParseCalendarDate_StoredFormParsesBack(t *testing.T) {
	for _, raw := range []string{"01-12-9999", "9999-12-31", "01/02/03", "1-1-0", "29/02/2024"} {
		t.Run(raw, func(t *testing.T) {
			d := mustParse(t, raw)
			stored := d.String()
			if len(stored) != len("YYYY-MM-DD") {
				t.Fatalf("expected fixed-width stored form, got %q", stored)
			}
			again, err := ParseCalendarDate(stored)
			if err != nil {
				t.Fatalf("stored form %q does not parse: %v", stored, err)
			}
			if again != d {
				t.Errorf("expected %v after reparse, got %v", d, again)
			}
		})
	}
}

func TestParseCalendarDate_Failures(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"not-a-date",
		"2024-13-01",
		"31/04/2024",
		"29-02-2023",
		"00/01/2024",
		"2024-03",
		"2024-03-05-01",
		"2024--03-05",
		"+5/03/2024",
		"05.03.2024",
		"01-01-10000",
		"10000/01/01",
		"31-12-123456789",
	}

	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseCalendarDate(raw)
			if !errors.Is(err, ErrUnparseableDate) {
				t.Errorf("expected ErrUnparseableDate for %q, got %v", raw, err)
			}
		})
	}
}

func TestCalendarDate_FormatsAgree(t *testing.T) {
	iso := mustParse(t, "2024-03-05")
	dashed := mustParse(t, "05-03-2024")
	slashed := mustParse(t, "05/03/2024")

	if iso != dashed || iso != slashed {
		t.Errorf("expected identical dates, got %v %v %v", iso, dashed, slashed)
	}
}

func TestCalendarDate_Helpers(t *testing.T) {
	d := CalendarDate{2024, time.December, 31}

	if d.String() != "2024-12-31" {
		t.Errorf("unexpected String(): %s", d.String())
	}

	if next := d.AddDays(1); next != (CalendarDate{2025, time.January, 1}) {
		t.Errorf("unexpected AddDays(1): %v", next)
	}

	year, week := d.ISOWeek()
	if year != 2025 || week != 1 {
		t.Errorf("expected ISO week 2025-W01, got %d-W%02d", year, week)
	}
}
