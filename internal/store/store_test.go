package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rdesai/drill/internal/ledger"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesKVTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='kv'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "kv" {
		t.Errorf("table name = %q, want 'kv'", name)
	}
}

func sampleLedger() ledger.Ledger {
	now := time.Now().UTC().Truncate(time.Second)
	l := ledger.New()
	l["q-1"] = ledger.PerformanceRecord{
		QuestionID:   "q-1",
		CorrectCount: 2,
		LastAnswered: &now,
		Last:         ledger.ResultCorrect,
	}
	l["q-2"] = ledger.PerformanceRecord{
		QuestionID:     "q-2",
		IncorrectCount: 1,
		LastAnswered:   &now,
		Last:           ledger.ResultIncorrect,
	}
	return l
}

func TestLedgerSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	want := sampleLedger()
	if err := repo.Save(ctx, "go-basics", want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, "go-basics")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("loaded %d records, want %d", len(got), len(want))
	}
	for id, rec := range want {
		lr := got[id]
		if lr.CorrectCount != rec.CorrectCount || lr.IncorrectCount != rec.IncorrectCount || lr.Last != rec.Last {
			t.Errorf("record %s = %+v, want %+v", id, lr, rec)
		}
		if lr.LastAnswered == nil || !lr.LastAnswered.Equal(*rec.LastAnswered) {
			t.Errorf("record %s LastAnswered = %v, want %v", id, lr.LastAnswered, rec.LastAnswered)
		}
	}
}

func TestLedgerLoadMissingReturnsEmpty(t *testing.T) {
	s := openTestStore(t)

	l, err := s.LedgerRepo().Load(context.Background(), "nope")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(l) != 0 {
		t.Errorf("expected empty ledger, got %d records", len(l))
	}
}

func TestLedgerLegacyKeyFallback(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	raw, err := ledger.Marshal(sampleLedger())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	_, err = s.DB().ExecContext(ctx,
		"INSERT INTO kv (key, value, updated_at) VALUES ('ledger', ?, '2026-01-01T00:00:00Z')",
		string(raw))
	if err != nil {
		t.Fatalf("seed legacy key: %v", err)
	}

	l, err := s.LedgerRepo().Load(ctx, "go-basics")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(l) != 2 {
		t.Fatalf("legacy fallback loaded %d records, want 2", len(l))
	}

	// A namespaced ledger takes priority over the legacy key.
	if err := s.LedgerRepo().Save(ctx, "go-basics", ledger.New()); err != nil {
		t.Fatalf("save: %v", err)
	}
	l, err = s.LedgerRepo().Load(ctx, "go-basics")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(l) != 0 {
		t.Errorf("namespaced key did not shadow legacy: %d records", len(l))
	}
}

func TestLedgerLoadMalformedDegradesToEmpty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.DB().ExecContext(ctx,
		"INSERT INTO kv (key, value, updated_at) VALUES ('ledger:bad', '{not json', '2026-01-01T00:00:00Z')")
	if err != nil {
		t.Fatalf("seed malformed value: %v", err)
	}

	l, err := s.LedgerRepo().Load(ctx, "bad")
	if err != nil {
		t.Fatalf("load should not fail on malformed data: %v", err)
	}
	if len(l) != 0 {
		t.Errorf("malformed data produced %d records, want 0", len(l))
	}
}

func TestLedgerDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, "go-basics", sampleLedger()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Delete(ctx, "go-basics"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	l, err := repo.Load(ctx, "go-basics")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(l) != 0 {
		t.Errorf("ledger survived delete: %d records", len(l))
	}
}

func TestLedgerBanks(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	for _, id := range []string{"go-basics", "algorithms"} {
		if err := repo.Save(ctx, id, sampleLedger()); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	ids, err := repo.Banks(ctx)
	if err != nil {
		t.Fatalf("banks: %v", err)
	}
	if len(ids) != 2 || ids[0] != "algorithms" || ids[1] != "go-basics" {
		t.Errorf("banks = %v, want [algorithms go-basics]", ids)
	}
}
