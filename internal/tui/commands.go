package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sahilkr24/jobtrackr/internal/client"
	"github.com/sahilkr24/jobtrackr/internal/form"
	"github.com/sahilkr24/jobtrackr/internal/models"
)

// Result messages for the API commands. There is no de-duplication or
// cancellation of in-flight calls: a stale completion simply applies after
// a newer one. Accepted behavior, e.g. rapid status changes on one row.

type recordsLoadedMsg struct {
	records []models.JobApplication
}

type loadFailedMsg struct{ err error }

type recordSavedMsg struct {
	created bool
	record  models.JobApplication
}

type submitFailedMsg struct{ err error }

type statusChangedMsg struct {
	id     uint
	status models.ApplicationStatus
}

type statusChangeFailedMsg struct{ err error }

type deleteDoneMsg struct{}

type deleteFailedMsg struct{ err error }

func loadRecords(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		records, err := c.List(context.Background())
		if err != nil {
			return loadFailedMsg{err}
		}
		return recordsLoadedMsg{records}
	}
}

func submitDraft(c *client.Client, sub form.Submission) tea.Cmd {
	return func() tea.Msg {
		if sub.Create {
			record, err := c.Create(context.Background(), sub.CreateRequest())
			if err != nil {
				return submitFailedMsg{err}
			}
			return recordSavedMsg{created: true, record: record}
		}
		record, err := c.Update(context.Background(), sub.RecordID, sub.UpdateRequest())
		if err != nil {
			return submitFailedMsg{err}
		}
		return recordSavedMsg{created: false, record: record}
	}
}

// changeStatus drops the record the server sends back; only the status is
// merged into the local copy (the inline-status path keeps the rest of the
// client copy as is).
func changeStatus(c *client.Client, id uint, status models.ApplicationStatus) tea.Cmd {
	return func() tea.Msg {
		if _, err := c.UpdateStatus(context.Background(), id, status); err != nil {
			return statusChangeFailedMsg{err}
		}
		return statusChangedMsg{id: id, status: status}
	}
}

func deleteRecord(c *client.Client, id uint) tea.Cmd {
	return func() tea.Msg {
		if err := c.Delete(context.Background(), id); err != nil {
			return deleteFailedMsg{err}
		}
		return deleteDoneMsg{}
	}
}
