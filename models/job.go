package models

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"time"
)

// JobRecord is one normalized job posting collected from the search endpoint.
// Records are immutable after collection except for Description, which is
// attached in-memory from the detail cache for skill counting.
type JobRecord struct {
	JobID       string    `json:"job_id"`
	Title       string    `json:"title"`
	ListingDate time.Time `json:"listing_date"`
	Location    string    `json:"location,omitempty"`
	Employer    string    `json:"employer,omitempty"`
	WorkType    string    `json:"work_type,omitempty"`

	Description string `json:"-"`
}

// KeywordSummary is the per-keyword entry of the run's final artifact.
// WeeklyCounts keys are ISO week-start dates (Monday, UTC), which marshal in
// ascending order.
type KeywordSummary struct {
	Keyword          string           `json:"keyword"`
	TotalPostings    int              `json:"total_postings"`
	WeeklyCounts     map[string]int   `json:"weekly_counts"`
	SkillFrequencies SkillFrequencies `json:"skill_frequencies,omitempty"`
}

// SkillCount pairs a skill label with the number of distinct postings whose
// description matched it.
type SkillCount struct {
	Label string
	Count int
}

// SkillFrequencies is an ordered list of skill counts: descending count, ties
// broken by ascending label. The order is a presentation contract, so it is
// preserved through JSON marshaling by emitting an object in slice order.
type SkillFrequencies []SkillCount

func (s SkillFrequencies) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sc := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, err := json.Marshal(sc.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(label)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(sc.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *SkillFrequencies) UnmarshalJSON(data []byte) error {
	var counts map[string]int
	if err := json.Unmarshal(data, &counts); err != nil {
		return err
	}
	out := make(SkillFrequencies, 0, len(counts))
	for label, count := range counts {
		out = append(out, SkillCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	*s = out
	return nil
}
