package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sahilkr24/jobtrackr/internal/form"
	"github.com/sahilkr24/jobtrackr/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("244"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	fieldErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	labelStyle = lipgloss.NewStyle().Bold(true).Width(14)
)

const dateDisplayLayout = "2006-01-02"

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Job Applications"))
	b.WriteString("\n\n")

	if errMsg := m.list.Error(); errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+errMsg) + dimStyle.Render("  (x to dismiss)"))
		b.WriteString("\n\n")
	}

	switch {
	case m.statusPickOpen:
		b.WriteString(m.statusPickView())
	case m.form.IsOpen():
		b.WriteString(m.formView())
	case m.hasPendingDelete():
		b.WriteString(m.confirmDeleteView())
	default:
		b.WriteString(m.tableView())
	}

	return b.String()
}

func (m Model) tableView() string {
	if m.loading {
		return dimStyle.Render("Loading applications...")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(tableRow("Company", "Position", "Status", "Date Applied")))
	b.WriteString("\n")

	visible := m.list.Visible()
	if len(visible) == 0 {
		b.WriteString(dimStyle.Render("No applications to show."))
		b.WriteString("\n")
	}
	for i, rec := range visible {
		row := tableRow(rec.Company, rec.Position, rec.Status.Label(), rec.DateApplied.Format(dateDisplayLayout))
		if i == m.cursor {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) footerView() string {
	var parts []string

	filterLabel := "all"
	if f := m.list.Filter(); f != 0 {
		filterLabel = f.Label()
	}
	parts = append(parts, "filter: "+filterLabel)

	// pagination controls hidden with a single page or less
	if total := m.list.TotalPages(); total > 1 {
		parts = append(parts, fmt.Sprintf("page %d/%d", m.list.Page(), total))
	}

	help := "a add · e edit · s status · d delete · f filter · ←/→ page · r reload · q quit"
	return dimStyle.Render(strings.Join(parts, "  |  ") + "\n" + help)
}

func (m Model) formView() string {
	var b strings.Builder

	title := "Add Application"
	if m.form.RecordID() != 0 {
		title = "Edit Application"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")

	if m.form.SubmitError != "" {
		b.WriteString(errorStyle.Render(m.form.SubmitError))
		b.WriteString("\n\n")
	}

	b.WriteString(m.fieldView("Company", m.inputs[inputCompany].View(), "company"))
	b.WriteString(m.fieldView("Position", m.inputs[inputPosition].View(), "position"))
	b.WriteString(m.fieldView("Status", m.statusFieldView(), "status"))
	b.WriteString(m.fieldView("Date Applied", m.inputs[inputDate].View(), "dateApplied"))

	b.WriteString("\n")
	if m.form.Mode() == form.ModeSubmitting {
		b.WriteString(dimStyle.Render("Submitting..."))
	} else {
		b.WriteString(dimStyle.Render("enter save · esc cancel · tab next field"))
	}

	return boxStyle.Render(b.String())
}

func (m Model) fieldView(label, value, errKey string) string {
	line := labelStyle.Render(label) + value + "\n"
	if msg, ok := m.form.FieldErrors[errKey]; ok {
		line += labelStyle.Render("") + fieldErrStyle.Render(msg) + "\n"
	}
	return line
}

func (m Model) statusFieldView() string {
	marker := "  "
	if m.focus == fieldStatus {
		marker = "< "
	}
	out := marker + m.form.Status.Label()
	if m.focus == fieldStatus {
		out += " >"
	}
	return out
}

func (m Model) confirmDeleteView() string {
	rec, _ := m.list.PendingDelete()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Delete the application at %q for %q?\n\n", rec.Company, rec.Position))
	b.WriteString(dimStyle.Render("enter/y delete · esc/n keep"))
	return boxStyle.Render(b.String())
}

func (m Model) statusPickView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Change Status"))
	b.WriteString("\n\n")
	for i, opt := range models.StatusOptions() {
		line := "  " + opt.Label
		if i == m.statusCursor {
			line = selectedStyle.Render("> " + opt.Label)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter apply · esc cancel"))
	return boxStyle.Render(b.String())
}

func tableRow(company, position, status, date string) string {
	return fmt.Sprintf("%-26s %-26s %-14s %-12s", truncate(company, 24), truncate(position, 24), status, date)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
