package stats

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileSink_LoadMissingFile(t *testing.T) {
	sink := NewFileSink(filepath.Join(t.TempDir(), "statistics.json"))

	snap, err := sink.Load()
	if err != nil {
		t.Fatalf("expected missing file to load cleanly, got %v", err)
	}
	if snap != nil {
		t.Errorf("expected nil snapshot for missing file, got %+v", snap)
	}
}

func TestFileSink_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "statistics.json")
	sink := NewFileSink(path)

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	snap := NewSnapshot()
	snap.TotalVisits = 10
	snap.LoginCount = 4
	snap.SearchCount = 2
	snap.SessionMinutes = 90
	snap.LastActivity = &now
	snap.Categories["开发工具"] = 6
	snap.WebsiteClicks["GitHub"] = 6
	snap.DailyActivity["2026-08-28"] = &DayBucket{Logins: 4, Searches: 2, Visits: 10}
	snap.UserActivity["alice_99"] = &UserActivity{
		LoginTimes: []time.Time{now},
		Searches:   []SearchEntry{{Keyword: "golang", Timestamp: now}},
	}

	if err := sink.Save(snap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := sink.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.TotalVisits != 10 || loaded.LoginCount != 4 || loaded.SessionMinutes != 90 {
		t.Errorf("counter mismatch after round trip: %+v", loaded)
	}
	if loaded.Categories["开发工具"] != 6 || loaded.WebsiteClicks["GitHub"] != 6 {
		t.Error("counter maps did not survive the round trip")
	}
	if loaded.LastActivity == nil || !loaded.LastActivity.Equal(now) {
		t.Errorf("last activity mismatch: %v", loaded.LastActivity)
	}
	bucket := loaded.DailyActivity["2026-08-28"]
	if bucket == nil || bucket.Visits != 10 {
		t.Errorf("day bucket mismatch: %+v", bucket)
	}
	ua := loaded.UserActivity["alice_99"]
	if ua == nil || len(ua.Searches) != 1 || ua.Searches[0].Keyword != "golang" {
		t.Errorf("user activity mismatch: %+v", ua)
	}
}

func TestFileSink_LoadSaveIsByteIdentical(t *testing.T) {
	// Loading and saving back without touching the snapshot must reproduce
	// the file byte for byte, so idle flush cycles never churn the document.
	path := filepath.Join(t.TempDir(), "statistics.json")
	sink := NewFileSink(path)

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	snap := NewSnapshot()
	snap.TotalVisits = 10
	snap.LastActivity = &now
	snap.Categories["开发工具"] = 6
	snap.WebsiteClicks["GitHub"] = 6
	snap.DailyActivity["2026-08-28"] = &DayBucket{Visits: 10}
	snap.UserActivity["alice_99"] = &UserActivity{LoginTimes: []time.Time{now}}

	if err := sink.Save(snap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := sink.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := sink.Save(loaded); err != nil {
		t.Fatalf("Save of loaded snapshot failed: %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(before) != string(after) {
		t.Error("load/save cycle changed the persisted document")
	}
}

func TestFileSink_SaveReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statistics.json")
	sink := NewFileSink(path)

	first := NewSnapshot()
	first.TotalVisits = 1
	if err := sink.Save(first); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	second := NewSnapshot()
	second.TotalVisits = 2
	if err := sink.Save(second); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	loaded, err := sink.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.TotalVisits != 2 {
		t.Errorf("expected latest snapshot, got visits=%d", loaded.TotalVisits)
	}

	// No temp files may be left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the snapshot file in %s, found %d entries", dir, len(entries))
	}
}

func TestFileSink_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statistics.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	sink := NewFileSink(path)
	if _, err := sink.Load(); err == nil {
		t.Error("expected an error for a corrupt snapshot file")
	}
}

func TestFileSink_LoadNormalizesNullMaps(t *testing.T) {
	// A hand-edited file with null maps must not produce nil maps.
	path := filepath.Join(t.TempDir(), "statistics.json")
	doc := `{"total_visits": 3, "favorite_categories": null}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	sink := NewFileSink(path)
	snap, err := sink.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap.Categories == nil || snap.WebsiteClicks == nil ||
		snap.DailyActivity == nil || snap.UserActivity == nil {
		t.Error("expected all maps allocated after load")
	}
	if snap.TotalVisits != 3 {
		t.Errorf("expected visits 3, got %d", snap.TotalVisits)
	}
}
