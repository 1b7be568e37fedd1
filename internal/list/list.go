// Package list owns the authoritative in-memory set of job application
// records and derives the filtered, paginated view from it. Mutations are
// local patches applied by the caller after a successful API call; the
// derivations themselves never touch the network.
package list

import "github.com/sahilkr24/jobtrackr/internal/models"

// PageSize is fixed; the API returns everything and paging is client-side.
const PageSize = 5

// StatusFilterNone means no status filter is active.
const StatusFilterNone models.ApplicationStatus = 0

type State struct {
	records []models.JobApplication
	filter  models.ApplicationStatus
	page    int

	// pendingDelete is the record staged by the delete confirmation
	// prompt. Nothing is removed until the delete call succeeds.
	pendingDelete *models.JobApplication

	errMsg string
}

func NewState() *State {
	return &State{page: 1}
}

// SetRecords replaces the authoritative list, e.g. after the initial load.
func (s *State) SetRecords(records []models.JobApplication) {
	s.records = append([]models.JobApplication(nil), records...)
	s.page = 1
}

func (s *State) Records() []models.JobApplication { return s.records }
func (s *State) Len() int                         { return len(s.records) }

func (s *State) Filter() models.ApplicationStatus { return s.filter }

// SetFilter switches the status filter and unconditionally resets the page
// back to 1. StatusFilterNone clears the filter.
func (s *State) SetFilter(status models.ApplicationStatus) {
	s.filter = status
	s.page = 1
}

// Filtered returns the records matching the active filter, preserving
// their original relative order.
func (s *State) Filtered() []models.JobApplication {
	if s.filter == StatusFilterNone {
		return s.records
	}
	filtered := make([]models.JobApplication, 0, len(s.records))
	for _, rec := range s.records {
		if rec.Status == s.filter {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// TotalPages is ceil(filtered/PageSize); an empty filtered set has 0 pages
// and the pagination controls are hidden at <= 1.
func (s *State) TotalPages() int {
	return (len(s.Filtered()) + PageSize - 1) / PageSize
}

func (s *State) Page() int { return s.page }

// Visible is the current page slice of the filtered records.
func (s *State) Visible() []models.JobApplication {
	filtered := s.Filtered()
	start := (s.page - 1) * PageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

func (s *State) CanPrevPage() bool { return s.page > 1 }
func (s *State) CanNextPage() bool { return s.page < s.TotalPages() }

func (s *State) PrevPage() {
	if s.CanPrevPage() {
		s.page--
	}
}

func (s *State) NextPage() {
	if s.CanNextPage() {
		s.page++
	}
}

// InsertAtFront prepends a freshly created record.
func (s *State) InsertAtFront(rec models.JobApplication) {
	s.records = append([]models.JobApplication{rec}, s.records...)
}

// ReplaceByID swaps the full record in place after an update.
func (s *State) ReplaceByID(rec models.JobApplication) {
	for i := range s.records {
		if s.records[i].ID == rec.ID {
			s.records[i] = rec
			return
		}
	}
}

// RemoveByID drops the record, keeping everything else in order.
func (s *State) RemoveByID(id uint) {
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return
		}
	}
}

// MergeStatus overwrites only the status of the matching local record,
// leaving every other field as the pre-existing client copy. This mirrors
// the inline status-change path, which intentionally does not replace the
// full record the server returned.
func (s *State) MergeStatus(id uint, status models.ApplicationStatus) {
	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].Status = status
			return
		}
	}
}

// RequestDelete stages a record and opens the confirmation prompt.
func (s *State) RequestDelete(rec models.JobApplication) {
	staged := rec
	s.pendingDelete = &staged
}

// CancelDelete discards the staged target without any API call.
func (s *State) CancelDelete() {
	s.pendingDelete = nil
}

func (s *State) PendingDelete() (models.JobApplication, bool) {
	if s.pendingDelete == nil {
		return models.JobApplication{}, false
	}
	return *s.pendingDelete, true
}

// ApplyDelete removes the staged record and closes the prompt. Call it
// only after the delete API call succeeded; on failure the prompt stays
// open with the error surfaced instead.
func (s *State) ApplyDelete() {
	if s.pendingDelete == nil {
		return
	}
	s.RemoveByID(s.pendingDelete.ID)
	s.pendingDelete = nil
}

func (s *State) Error() string { return s.errMsg }

// SetError overwrites any prior display error; success of later unrelated
// actions does not clear it, only DismissError does.
func (s *State) SetError(msg string) { s.errMsg = msg }

func (s *State) DismissError() { s.errMsg = "" }
