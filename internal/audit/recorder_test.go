package audit

import (
	"testing"

	"github.com/gittydia/IMS-BAO/internal/repo"
)

func TestRecord_AppendsMostRecentFirst(t *testing.T) {
	activities := repo.NewInMemoryActivityRepository()
	rec := NewRecorder(activities)
	actor := Actor{ID: 1, Email: "admin@example.com", Role: "admin"}

	rec.Record(actor, "create", "product", 10, "created product")
	rec.Record(actor, "update", "product", 10, "restocked")
	rec.Record(actor, "delete", "product", 10, "removed")

	entries, err := rec.Recent(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Action != "delete" || entries[1].Action != "update" {
		t.Errorf("expected most-recent-first order, got %q then %q", entries[0].Action, entries[1].Action)
	}
}

func TestRecord_SwallowsAppendFailure(t *testing.T) {
	activities := repo.NewInMemoryActivityRepository()
	activities.FailAppends(true)
	rec := NewRecorder(activities)

	// Must not panic or surface the failure.
	rec.Record(Actor{ID: 1, Email: "admin@example.com"}, "update", "order", 5, "status changed")

	entries, err := rec.Recent(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries after failed append, got %d", len(entries))
	}
}
