// Package tui is the terminal front-end for the tracker: a paginated table
// of job applications with a status filter, a modal create/edit form, an
// inline status picker and a delete confirmation prompt.
//
// It is also the coordinator between the API client, the form state and
// the list state: API calls run as commands, and on a success message the
// update loop applies the matching local patch (prepend after create,
// replace after update, status merge after an inline change, removal after
// delete) without reloading the whole list.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sahilkr24/jobtrackr/internal/client"
	"github.com/sahilkr24/jobtrackr/internal/form"
	"github.com/sahilkr24/jobtrackr/internal/list"
	"github.com/sahilkr24/jobtrackr/internal/models"
)

// Form field order: company, position, status, date applied.
const (
	fieldCompany = iota
	fieldPosition
	fieldStatus
	fieldDate
	fieldCount
)

// inputs slots; the status field is a selector, not a text input.
const (
	inputCompany = iota
	inputPosition
	inputDate
	inputCount
)

type Model struct {
	client *client.Client
	keys   keyMap

	list *list.State
	form *form.Form

	inputs []textinput.Model
	focus  int

	statusPickOpen bool
	statusPickID   uint
	statusCursor   int

	cursor  int // selection within the visible page
	loading bool

	width  int
	height int
}

func New(c *client.Client) Model {
	inputs := make([]textinput.Model, inputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 0
		inputs[i].Width = 40
	}
	inputs[inputCompany].Placeholder = "Company"
	inputs[inputPosition].Placeholder = "Position"
	inputs[inputDate].Placeholder = "YYYY-MM-DD"

	return Model{
		client:  c,
		keys:    defaultKeyMap(),
		list:    list.NewState(),
		form:    form.New(),
		inputs:  inputs,
		loading: true,
	}
}

// Init kicks off the one full load; everything afterwards is local patches.
func (m Model) Init() tea.Cmd {
	return loadRecords(m.client)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case recordsLoadedMsg:
		m.list.SetRecords(msg.records)
		m.loading = false
		m.cursor = 0
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.list.SetError(msg.err.Error())
		return m, nil

	case recordSavedMsg:
		if msg.created {
			m.list.InsertAtFront(msg.record)
		} else {
			m.list.ReplaceByID(msg.record)
		}
		m.form.HandleSuccess()
		return m, nil

	case submitFailedMsg:
		m.form.HandleFailure(msg.err.Error())
		return m, nil

	case statusChangedMsg:
		m.list.MergeStatus(msg.id, msg.status)
		return m, nil

	case statusChangeFailedMsg:
		m.list.SetError(msg.err.Error())
		return m, nil

	case deleteDoneMsg:
		m.list.ApplyDelete()
		m.clampCursor()
		return m, nil

	case deleteFailedMsg:
		// prompt stays open, only the error banner changes
		m.list.SetError(msg.err.Error())
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.statusPickOpen:
			return m.updateStatusPick(msg)
		case m.form.IsOpen():
			return m.updateForm(msg)
		case m.hasPendingDelete():
			return m.updateConfirmDelete(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, loadRecords(m.client)

	case key.Matches(msg, m.keys.DismissError):
		m.list.DismissError()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.list.Visible())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.PrevPage):
		m.list.PrevPage()
		m.cursor = 0

	case key.Matches(msg, m.keys.NextPage):
		m.list.NextPage()
		m.cursor = 0

	case key.Matches(msg, m.keys.CycleFilter):
		next := models.ApplicationStatus((int(m.list.Filter()) + 1) % (len(models.StatusOptions()) + 1))
		m.list.SetFilter(next)
		m.cursor = 0

	case key.Matches(msg, m.keys.Add):
		m.form.OpenCreate()
		m.syncInputsFromForm()
		m.setFocus(fieldCompany)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if rec, ok := m.selectedRecord(); ok {
			m.form.OpenEdit(rec)
			m.syncInputsFromForm()
			m.setFocus(fieldCompany)
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Delete):
		if rec, ok := m.selectedRecord(); ok {
			m.list.RequestDelete(rec)
		}

	case key.Matches(msg, m.keys.ChangeStatus):
		if rec, ok := m.selectedRecord(); ok {
			m.statusPickOpen = true
			m.statusPickID = rec.ID
			m.statusCursor = 0
			if rec.Status.IsValid() {
				m.statusCursor = int(rec.Status) - 1
			}
		}
	}
	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if rec, ok := m.list.PendingDelete(); ok {
			return m, deleteRecord(m.client, rec.ID)
		}
	case key.Matches(msg, m.keys.Cancel):
		m.list.CancelDelete()
	}
	return m, nil
}

func (m Model) updateStatusPick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := models.StatusOptions()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.statusCursor > 0 {
			m.statusCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.statusCursor < len(options)-1 {
			m.statusCursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		m.statusPickOpen = false
		return m, changeStatus(m.client, m.statusPickID, options[m.statusCursor].Value)
	case key.Matches(msg, m.keys.Cancel):
		m.statusPickOpen = false
	}
	return m, nil
}

func (m *Model) selectedRecord() (models.JobApplication, bool) {
	visible := m.list.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return models.JobApplication{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) hasPendingDelete() bool {
	_, ok := m.list.PendingDelete()
	return ok
}

func (m *Model) clampCursor() {
	visible := len(m.list.Visible())
	if m.cursor >= visible {
		m.cursor = visible - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
