package services

import (
	"time"

	"seek-trends/models"
)

// WeekFloor returns the Monday 00:00 UTC of the week containing t.
func WeekFloor(t time.Time) time.Time {
	t = t.UTC()
	// time.Weekday is Sunday-based; shift so Monday is day zero.
	offset := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// WeeklyCounts buckets records by the Monday of their listing week. Weeks
// with no listings are omitted. Keys are ISO dates, so they marshal in
// ascending order.
func WeeklyCounts(records []*models.JobRecord) map[string]int {
	buckets := make(map[string]int)
	for _, rec := range records {
		key := WeekFloor(rec.ListingDate).Format("2006-01-02")
		buckets[key]++
	}
	return buckets
}
