package stats

import (
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Aggregator accumulates usage counters and flushes them to a Sink. All
// snapshot access is mutex-guarded: record calls arrive from concurrent
// HTTP handlers, and bucket creation is a check-then-create sequence that
// must not race.
//
// Counters only grow within a process lifetime. Website visits flush
// synchronously (they are the high-value event); everything else is picked
// up by the periodic flush or the final flush in Close.
type Aggregator struct {
	mu   sync.Mutex
	snap *Snapshot
	sink Sink

	// firstSeen assigns a stable ordinal to each category/website key the
	// first time it is counted, so top-N ties break in recording order.
	firstSeen map[string]int
	nextSeen  int

	// now is swapped out in tests to pin the calendar day.
	now func() time.Time

	stop chan struct{}
	done chan struct{}
}

// NewAggregator creates an aggregator seeded from the sink. A missing or
// unreadable document is not fatal: the aggregator starts from a zero
// snapshot and logs the cause.
func NewAggregator(sink Sink) *Aggregator {
	a := &Aggregator{
		sink:      sink,
		firstSeen: make(map[string]int),
		now:       time.Now,
	}

	snap, err := sink.Load()
	if err != nil {
		slog.Error("failed to load statistics snapshot, starting empty", slog.Any("error", err))
		snap = nil
	}
	if snap == nil {
		snap = NewSnapshot()
	}
	a.snap = snap

	// Rebuild the tie-break ordinals for keys that predate this process.
	// Recording order is unrecoverable from a JSON object, so reloaded
	// keys rank in lexical order, before anything recorded later.
	a.seedFirstSeen()

	return a
}

// seedFirstSeen assigns ordinals to every key already present in the
// loaded snapshot, categories first, in lexical order.
func (a *Aggregator) seedFirstSeen() {
	for _, m := range []map[string]int{a.snap.Categories, a.snap.WebsiteClicks} {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			a.markSeen(k)
		}
	}
}

// markSeen records the first-use ordinal for a key. Caller holds the lock
// (or is still inside the constructor).
func (a *Aggregator) markSeen(key string) {
	if _, ok := a.firstSeen[key]; !ok {
		a.firstSeen[key] = a.nextSeen
		a.nextSeen++
	}
}

// Start launches the periodic flush goroutine. Call Close to stop it.
func (a *Aggregator) Start(interval time.Duration) {
	a.stop = make(chan struct{})
	a.done = make(chan struct{})

	go func() {
		defer close(a.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				a.Flush()
			case <-a.stop:
				return
			}
		}
	}()
}

// Close stops the periodic flush and performs a final flush. Safe to call
// when Start was never called.
func (a *Aggregator) Close() {
	if a.stop != nil {
		close(a.stop)
		<-a.done
	}
	a.Flush()
}

// Flush persists the current snapshot. Failures are logged and absorbed;
// the in-memory state is kept for the next attempt.
func (a *Aggregator) Flush() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.flushLocked()
}

// flushLocked saves the snapshot. Caller holds the lock.
func (a *Aggregator) flushLocked() {
	if err := a.sink.Save(a.snap); err != nil {
		slog.Error("failed to persist statistics snapshot", slog.Any("error", err))
	}
}

// --- Record operations ---

// RecordLogin counts a successful login: the global counter, today's
// bucket, and the user's login history.
func (a *Aggregator) RecordLogin(username string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	a.snap.LoginCount++
	a.dayBucket(now).Logins++
	a.userActivity(username).LoginTimes = append(a.userActivity(username).LoginTimes, now.UTC())
}

// RecordSearch counts a search. Today's bucket is created on demand, the
// same as logins and visits. When the searcher is known, the keyword is
// appended to their search history.
func (a *Aggregator) RecordSearch(keyword, username string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	a.snap.SearchCount++
	a.dayBucket(now).Searches++

	if username != "" {
		ua := a.userActivity(username)
		ua.Searches = append(ua.Searches, SearchEntry{
			Keyword:   keyword,
			Timestamp: now.UTC(),
		})
	}
}

// RecordWebsiteVisit counts a website visit across the total, per-website,
// per-category, and per-day counters, then flushes synchronously.
func (a *Aggregator) RecordWebsiteVisit(name, category string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if category == "" {
		category = DefaultCategory
	}

	now := a.now()
	a.snap.TotalVisits++
	a.snap.WebsiteClicks[name]++
	a.markSeen(name)
	a.snap.Categories[category]++
	a.markSeen(category)
	a.dayBucket(now).Visits++

	utc := now.UTC()
	a.snap.LastActivity = &utc

	a.flushLocked()
}

// AddSessionMinutes adds elapsed session time to the running total.
func (a *Aggregator) AddSessionMinutes(minutes int) {
	if minutes <= 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.snap.SessionMinutes += minutes
}

// dayBucket returns today's bucket, creating it zeroed if absent. Caller
// holds the lock.
func (a *Aggregator) dayBucket(now time.Time) *DayBucket {
	key := now.Format(dateFormat)
	bucket, ok := a.snap.DailyActivity[key]
	if !ok {
		bucket = &DayBucket{}
		a.snap.DailyActivity[key] = bucket
	}
	return bucket
}

// userActivity returns the user's activity record, creating it if absent.
// Caller holds the lock.
func (a *Aggregator) userActivity(username string) *UserActivity {
	ua, ok := a.snap.UserActivity[username]
	if !ok {
		ua = &UserActivity{}
		a.snap.UserActivity[username] = ua
	}
	return ua
}

// --- Query accessors ---

// TopCategories returns the limit highest-count categories, descending by
// count, ties broken by the order the categories were first recorded.
func (a *Aggregator) TopCategories(limit int) []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.topN(a.snap.Categories, limit)
}

// TopWebsites returns the limit highest-count websites, same ordering
// rules as TopCategories.
func (a *Aggregator) TopWebsites(limit int) []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.topN(a.snap.WebsiteClicks, limit)
}

// topN sorts a counter map descending by count with first-seen tie-break.
// Caller holds the lock.
func (a *Aggregator) topN(counts map[string]int, limit int) []Entry {
	entries := make([]Entry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, Entry{Name: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return a.firstSeen[entries[i].Name] < a.firstSeen[entries[j].Name]
	})
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// RecentActivity returns exactly days (date, visits) pairs for the last
// days calendar days ending today, oldest first. Days with no recorded
// bucket report zero; no day is ever omitted.
func (a *Aggregator) RecentActivity(days int) []DayCount {
	a.mu.Lock()
	defer a.mu.Unlock()

	if days <= 0 {
		return nil
	}

	result := make([]DayCount, 0, days)
	today := a.now()
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(dateFormat)
		visits := 0
		if bucket, ok := a.snap.DailyActivity[date]; ok {
			visits = bucket.Visits
		}
		result = append(result, DayCount{Date: date, Visits: visits})
	}
	return result
}

// Overview returns the roll-up counters for the admin dashboard.
func (a *Aggregator) Overview() Overview {
	a.mu.Lock()
	defer a.mu.Unlock()

	return Overview{
		TotalVisits:    a.snap.TotalVisits,
		LoginCount:     a.snap.LoginCount,
		SearchCount:    a.snap.SearchCount,
		SessionMinutes: a.snap.SessionMinutes,
		LastActivity:   a.snap.LastActivity,
		ActiveUsers:    len(a.snap.UserActivity),
		TrackedSites:   len(a.snap.WebsiteClicks),
	}
}
