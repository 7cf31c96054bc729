package services

import (
	"testing"
	"time"

	"seek-trends/models"
)

func TestWeekFloor(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"wednesday buckets to monday", time.Date(2024, 1, 3, 15, 30, 0, 0, time.UTC), "2024-01-01"},
		{"monday midnight buckets to itself", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "2024-01-01"},
		{"sunday belongs to the preceding monday", time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC), "2024-01-01"},
		{"next monday starts a new week", time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), "2024-01-08"},
	}

	for _, tt := range tests {
		got := WeekFloor(tt.in)
		if got.Format("2006-01-02") != tt.want {
			t.Errorf("%s: WeekFloor(%v) = %v; want %s", tt.name, tt.in, got, tt.want)
		}
		if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
			t.Errorf("%s: WeekFloor(%v) not at midnight: %v", tt.name, tt.in, got)
		}
		if got.Location() != time.UTC {
			t.Errorf("%s: WeekFloor(%v) not UTC", tt.name, tt.in)
		}
	}
}

func TestWeeklyCountsSparse(t *testing.T) {
	records := []*models.JobRecord{
		{JobID: "1", ListingDate: time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)},
		{JobID: "2", ListingDate: time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)},
		// two-week gap, then one more posting
		{JobID: "3", ListingDate: time.Date(2024, 1, 24, 10, 0, 0, 0, time.UTC)},
	}

	counts := WeeklyCounts(records)

	if len(counts) != 2 {
		t.Fatalf("WeeklyCounts returned %d buckets; want 2 (gap weeks must be omitted)", len(counts))
	}
	if counts["2024-01-01"] != 2 {
		t.Errorf("week 2024-01-01: got %d, want 2", counts["2024-01-01"])
	}
	if counts["2024-01-22"] != 1 {
		t.Errorf("week 2024-01-22: got %d, want 1", counts["2024-01-22"])
	}
}

func TestWeeklyCountsEmpty(t *testing.T) {
	if counts := WeeklyCounts(nil); len(counts) != 0 {
		t.Errorf("expected no buckets for empty input, got %v", counts)
	}
}
