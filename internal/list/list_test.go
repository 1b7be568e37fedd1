package list

import (
	"reflect"
	"testing"
	"time"

	"github.com/sahilkr24/jobtrackr/internal/models"
)

func makeRecords(n int) []models.JobApplication {
	records := make([]models.JobApplication, 0, n)
	for i := 1; i <= n; i++ {
		status := models.StatusApplied
		if i%2 == 0 {
			status = models.StatusInterview
		}
		records = append(records, models.JobApplication{
			ID:          uint(i),
			Company:     "Company",
			Position:    "Position",
			Status:      status,
			DateApplied: time.Date(2024, time.January, i, 0, 0, 0, 0, time.UTC),
		})
	}
	return records
}

func TestFilterPreservesOrder(t *testing.T) {
	s := NewState()
	s.SetRecords(makeRecords(10))

	s.SetFilter(models.StatusInterview)
	filtered := s.Filtered()
	if len(filtered) != 5 {
		t.Fatalf("got %d records, want 5", len(filtered))
	}
	wantIDs := []uint{2, 4, 6, 8, 10}
	for i, rec := range filtered {
		if rec.Status != models.StatusInterview {
			t.Fatalf("record %d has status %d", rec.ID, rec.Status)
		}
		if rec.ID != wantIDs[i] {
			t.Fatalf("order not preserved: got id %d at %d", rec.ID, i)
		}
	}
}

func TestPagination(t *testing.T) {
	s := NewState()
	s.SetRecords(makeRecords(12))

	if got := s.TotalPages(); got != 3 {
		t.Fatalf("got %d pages, want 3", got)
	}

	page1 := s.Visible()
	if len(page1) != 5 || page1[0].ID != 1 || page1[4].ID != 5 {
		t.Fatalf("unexpected page 1: %+v", page1)
	}

	s.NextPage()
	s.NextPage()
	page3 := s.Visible()
	if len(page3) != 2 || page3[0].ID != 11 || page3[1].ID != 12 {
		t.Fatalf("unexpected page 3: %+v", page3)
	}

	// already at the last page
	s.NextPage()
	if s.Page() != 3 {
		t.Fatalf("page advanced past the end: %d", s.Page())
	}
	if s.CanNextPage() {
		t.Fatal("CanNextPage at the last page")
	}
}

func TestEmptyFilteredSetHasZeroPages(t *testing.T) {
	s := NewState()
	s.SetRecords(nil)
	if got := s.TotalPages(); got != 0 {
		t.Fatalf("got %d pages, want 0", got)
	}
	if visible := s.Visible(); len(visible) != 0 {
		t.Fatalf("unexpected visible records: %+v", visible)
	}
}

func TestFilterChangeResetsPage(t *testing.T) {
	s := NewState()
	s.SetRecords(makeRecords(12))
	s.NextPage()
	s.NextPage()
	if s.Page() != 3 {
		t.Fatalf("setup failed, page %d", s.Page())
	}

	s.SetFilter(models.StatusApplied)
	if s.Page() != 1 {
		t.Fatalf("page not reset: %d", s.Page())
	}

	// clearing the filter resets too
	s.NextPage()
	s.SetFilter(StatusFilterNone)
	if s.Page() != 1 {
		t.Fatalf("page not reset on clear: %d", s.Page())
	}
}

func TestInsertAtFront(t *testing.T) {
	s := NewState()
	original := makeRecords(3)
	s.SetRecords(original)

	created := models.JobApplication{ID: 42, Company: "Acme", Position: "Engineer", Status: models.StatusApplied}
	s.InsertAtFront(created)

	records := s.Records()
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	if records[0].ID != 42 {
		t.Fatalf("created record not at front: %+v", records[0])
	}
	for i, rec := range records[1:] {
		if !reflect.DeepEqual(rec, original[i]) {
			t.Fatalf("record %d mutated: %+v", rec.ID, rec)
		}
	}
}

func TestReplaceByID(t *testing.T) {
	s := NewState()
	s.SetRecords(makeRecords(3))

	updated := models.JobApplication{ID: 2, Company: "Globex", Position: "SRE", Status: models.StatusOffer}
	s.ReplaceByID(updated)

	records := s.Records()
	if !reflect.DeepEqual(records[1], updated) {
		t.Fatalf("record not replaced: %+v", records[1])
	}
	if records[0].ID != 1 || records[2].ID != 3 {
		t.Fatal("neighboring records disturbed")
	}
}

func TestMergeStatusTouchesOnlyStatus(t *testing.T) {
	s := NewState()
	s.SetRecords(makeRecords(3))
	before := s.Records()[1]

	s.MergeStatus(2, models.StatusOffer)

	after := s.Records()[1]
	if after.Status != models.StatusOffer {
		t.Fatalf("status not merged: %d", after.Status)
	}
	want := before
	want.Status = models.StatusOffer
	if !reflect.DeepEqual(after, want) {
		t.Fatalf("fields beyond status changed: %+v vs %+v", after, want)
	}
}

func TestDeleteConfirmationFlow(t *testing.T) {
	s := NewState()
	s.SetRecords(makeRecords(3))
	target := s.Records()[1]

	s.RequestDelete(target)
	staged, ok := s.PendingDelete()
	if !ok || staged.ID != target.ID {
		t.Fatalf("staging failed: %+v %v", staged, ok)
	}

	// cancel discards the target without touching the list
	s.CancelDelete()
	if _, ok := s.PendingDelete(); ok {
		t.Fatal("target still staged after cancel")
	}
	if s.Len() != 3 {
		t.Fatalf("list changed on cancel: %d", s.Len())
	}

	// a successful delete removes exactly the staged record
	s.RequestDelete(target)
	s.ApplyDelete()
	if s.Len() != 2 {
		t.Fatalf("got %d records, want 2", s.Len())
	}
	for _, rec := range s.Records() {
		if rec.ID == target.ID {
			t.Fatal("staged record still present")
		}
	}
	if _, ok := s.PendingDelete(); ok {
		t.Fatal("prompt still open after apply")
	}
}

func TestErrorLifecycle(t *testing.T) {
	s := NewState()
	s.SetError("first")
	s.SetError("second") // overwrites, never stacks
	if s.Error() != "second" {
		t.Fatalf("got %q", s.Error())
	}
	s.DismissError()
	if s.Error() != "" {
		t.Fatalf("error survived dismiss: %q", s.Error())
	}
}
