package domain

import (
	"sort"
	"time"
)

// dateFormats are the layouts accepted for authored and remote dates,
// tried in order.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an ISO-like date string. An empty or malformed value
// yields the zero time, which sorts as the oldest possible date. Date
// parsing must never abort a catalog build.
func ParseDate(s string) time.Time {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}

// Entry is the normalized shape shared by locally authored reviews and
// remote product records. It is the unit the catalog operates on.
type Entry struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	UpdatedDate string   `json:"updated_date,omitempty"`
	Description string   `json:"description"`
	ASIN        string   `json:"asin,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Category    string   `json:"category"`
	Rating      float64  `json:"rating,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	ExternalURL string   `json:"external_url,omitempty"`
	Pros        []string `json:"pros,omitempty"`
	Cons        []string `json:"cons,omitempty"`
	Body        string   `json:"body,omitempty"`
}

// EffectiveDate returns the later of the entry's update and creation
// timestamps. Entries whose dates cannot be parsed get the zero time and
// end up last in the catalog ordering.
func (e *Entry) EffectiveDate() time.Time {
	created := ParseDate(e.Date)
	if e.UpdatedDate == "" {
		return created
	}

	updated := ParseDate(e.UpdatedDate)
	if updated.After(created) {
		return updated
	}

	return created
}

// Catalog is an ordered sequence of entries, sorted descending by
// effective date, with at most one entry per ASIN and unique slugs.
type Catalog []Entry

// SortByEffectiveDate orders entries newest first. The sort is stable so
// entries sharing a date keep their relative input order across builds.
func SortByEffectiveDate(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EffectiveDate().After(entries[j].EffectiveDate())
	})
}
