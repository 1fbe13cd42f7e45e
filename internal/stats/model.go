// Package stats accumulates usage counters in memory and periodically
// persists them as a single JSON document. The aggregator is the sole
// owner of the snapshot: callers record events and query aggregates, and
// no error ever propagates out -- persistence failures are logged and the
// aggregator degrades to in-memory-only operation until the next flush.
package stats

import "time"

// dateFormat is the calendar-day key format used by DailyActivity.
const dateFormat = "2006-01-02"

// DefaultCategory is used when a website visit arrives without a category.
const DefaultCategory = "uncategorized"

// DayBucket holds the per-calendar-day counters.
type DayBucket struct {
	Logins   int `json:"logins"`
	Searches int `json:"searches"`
	Visits   int `json:"visits"`
}

// SearchEntry is one recorded search by a known user.
type SearchEntry struct {
	Keyword   string    `json:"keyword"`
	Timestamp time.Time `json:"timestamp"`
}

// UserActivity holds the per-user history logs.
type UserActivity struct {
	LoginTimes []time.Time   `json:"login_times"`
	Searches   []SearchEntry `json:"searches"`
}

// Snapshot is the complete statistics state. It is mirrored verbatim to
// durable storage; every field must round-trip through JSON unchanged.
type Snapshot struct {
	TotalVisits    int                      `json:"total_visits"`
	LoginCount     int                      `json:"login_count"`
	SearchCount    int                      `json:"search_count"`
	SessionMinutes int                      `json:"session_minutes"`
	LastActivity   *time.Time               `json:"last_activity,omitempty"`
	Categories     map[string]int           `json:"favorite_categories"`
	WebsiteClicks  map[string]int           `json:"website_clicks"`
	DailyActivity  map[string]*DayBucket    `json:"daily_activity"`
	UserActivity   map[string]*UserActivity `json:"user_activity"`
}

// NewSnapshot returns an empty snapshot with all maps allocated.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Categories:    make(map[string]int),
		WebsiteClicks: make(map[string]int),
		DailyActivity: make(map[string]*DayBucket),
		UserActivity:  make(map[string]*UserActivity),
	}
}

// normalize allocates any maps a hand-edited or older snapshot file left
// null, so record operations never hit a nil map.
func (s *Snapshot) normalize() {
	if s.Categories == nil {
		s.Categories = make(map[string]int)
	}
	if s.WebsiteClicks == nil {
		s.WebsiteClicks = make(map[string]int)
	}
	if s.DailyActivity == nil {
		s.DailyActivity = make(map[string]*DayBucket)
	}
	if s.UserActivity == nil {
		s.UserActivity = make(map[string]*UserActivity)
	}
}

// Entry is a (name, count) pair returned by the top-N accessors.
type Entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DayCount is a (date, visits) pair returned by RecentActivity.
type DayCount struct {
	Date   string `json:"date"`
	Visits int    `json:"visits"`
}

// Overview is the roll-up served to the admin dashboard.
type Overview struct {
	TotalVisits    int        `json:"total_visits"`
	LoginCount     int        `json:"login_count"`
	SearchCount    int        `json:"search_count"`
	SessionMinutes int        `json:"session_minutes"`
	LastActivity   *time.Time `json:"last_activity,omitempty"`
	ActiveUsers    int        `json:"active_users"`
	TrackedSites   int        `json:"tracked_sites"`
}
