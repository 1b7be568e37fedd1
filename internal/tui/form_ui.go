package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sahilkr24/jobtrackr/internal/form"
	"github.com/sahilkr24/jobtrackr/internal/models"
)

func (m *Model) syncInputsFromForm() {
	m.inputs[inputCompany].SetValue(m.form.Company)
	m.inputs[inputPosition].SetValue(m.form.Position)
	m.inputs[inputDate].SetValue(m.form.DateApplied)
}

func (m *Model) syncFormFromInputs() {
	m.form.Company = m.inputs[inputCompany].Value()
	m.form.Position = m.inputs[inputPosition].Value()
	m.form.DateApplied = m.inputs[inputDate].Value()
}

func (m *Model) setFocus(field int) {
	m.focus = field
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	switch field {
	case fieldCompany:
		m.inputs[inputCompany].Focus()
	case fieldPosition:
		m.inputs[inputPosition].Focus()
	case fieldDate:
		m.inputs[inputDate].Focus()
	}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// In-flight submits cannot be cancelled; key input is ignored until
	// the result message lands.
	if m.form.Mode() == form.ModeSubmitting {
		return m, nil
	}

	switch {
	case msg.Type == tea.KeyEsc:
		m.form.Cancel()
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.syncFormFromInputs()
		sub, ok := m.form.BeginSubmit()
		if !ok {
			return m, nil
		}
		return m, submitDraft(m.client, sub)

	case key.Matches(msg, m.keys.NextField):
		m.setFocus((m.focus + 1) % fieldCount)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.PrevField):
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, textinput.Blink
	}

	if m.focus == fieldStatus {
		options := models.StatusOptions()
		switch msg.String() {
		case "left", "h":
			idx := statusIndex(m.form.Status)
			m.form.Status = options[(idx+len(options)-1)%len(options)].Value
		case "right", "l", " ":
			idx := statusIndex(m.form.Status)
			m.form.Status = options[(idx+1)%len(options)].Value
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldCompany:
		m.inputs[inputCompany], cmd = m.inputs[inputCompany].Update(msg)
	case fieldPosition:
		m.inputs[inputPosition], cmd = m.inputs[inputPosition].Update(msg)
	case fieldDate:
		m.inputs[inputDate], cmd = m.inputs[inputDate].Update(msg)
	}
	m.syncFormFromInputs()
	return m, cmd
}

func statusIndex(status models.ApplicationStatus) int {
	if status.IsValid() {
		return int(status) - 1
	}
	return 0
}
