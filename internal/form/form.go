// Package form owns the create/edit draft for a single job application:
// its mode, field values, validation errors, and the submit lifecycle.
// The draft never aliases a record from the list; opening edit mode copies
// the record's fields so edits stay staged until the API call succeeds.
package form

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sahilkr24/jobtrackr/internal/dtos"
	"github.com/sahilkr24/jobtrackr/internal/models"
)

const dateLayout = "2006-01-02"

type Mode int

const (
	ModeClosed Mode = iota
	ModeCreateDraft
	ModeEditDraft
	ModeSubmitting
)

type Form struct {
	mode     Mode
	recordID uint // only meaningful in edit mode
	// draftMode remembers which draft we were submitting from so a failed
	// submit can land back there with the fields intact.
	draftMode Mode

	Company     string
	Position    string
	Status      models.ApplicationStatus
	DateApplied string // calendar date, YYYY-MM-DD

	FieldErrors map[string]string
	SubmitError string

	now func() time.Time
}

func New() *Form {
	f := &Form{now: time.Now}
	f.resetFields()
	return f
}

func (f *Form) Mode() Mode     { return f.mode }
func (f *Form) RecordID() uint { return f.recordID }
func (f *Form) IsOpen() bool   { return f.mode != ModeClosed }

// OpenCreate starts a fresh draft: empty strings, Applied, dated today.
func (f *Form) OpenCreate() {
	f.resetFields()
	f.mode = ModeCreateDraft
}

// OpenEdit stages a copy of the record's fields for editing.
func (f *Form) OpenEdit(rec models.JobApplication) {
	f.resetFields()
	f.mode = ModeEditDraft
	f.recordID = rec.ID
	f.Company = rec.Company
	f.Position = rec.Position
	f.Status = rec.Status
	f.DateApplied = rec.DateApplied.Format(dateLayout)
}

// Cancel closes the form from any mode, dropping fields and errors.
func (f *Form) Cancel() {
	f.resetFields()
	f.mode = ModeClosed
}

func (f *Form) resetFields() {
	f.recordID = 0
	f.Company = ""
	f.Position = ""
	f.Status = models.StatusApplied
	f.DateApplied = f.todayFn().Format(dateLayout)
	f.FieldErrors = map[string]string{}
	f.SubmitError = ""
}

func (f *Form) todayFn() time.Time {
	if f.now == nil {
		return time.Now()
	}
	return f.now()
}

// Validate runs every field rule independently and reports all violations
// together in FieldErrors. Returns true when the draft is clean.
func (f *Form) Validate() bool {
	f.FieldErrors = map[string]string{}

	now := f.todayFn()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	v := validator.New()
	_ = v.RegisterValidation("appstatus", func(fl validator.FieldLevel) bool {
		return models.ApplicationStatus(fl.Field().Int()).IsValid()
	})
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(time.Time)
		return ok && !d.After(today)
	})
	_ = v.RegisterValidation("withinlastyear", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(time.Time)
		// the boundary exactly one year back is still valid
		return ok && !d.Before(today.AddDate(-1, 0, 0))
	})

	payload := struct {
		Company     string    `validate:"required,max=200"`
		Position    string    `validate:"required,max=200"`
		Status      int       `validate:"appstatus"`
		DateApplied time.Time `validate:"required,notfuture,withinlastyear"`
	}{
		Company:  strings.TrimSpace(f.Company),
		Position: strings.TrimSpace(f.Position),
		Status:   int(f.Status),
	}

	rawDate := strings.TrimSpace(f.DateApplied)
	dateUnparseable := false
	if rawDate != "" {
		parsed, err := time.Parse(dateLayout, rawDate)
		if err != nil {
			dateUnparseable = true
		} else {
			payload.DateApplied = parsed
		}
	}

	if err := v.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				field, msg := fieldMessage(fe)
				f.FieldErrors[field] = msg
			}
		}
	}
	if dateUnparseable {
		f.FieldErrors["dateApplied"] = "Date applied must be a valid date (YYYY-MM-DD)"
	}
	return len(f.FieldErrors) == 0
}

func fieldMessage(fe validator.FieldError) (string, string) {
	switch fe.StructField() {
	case "Company":
		if fe.Tag() == "max" {
			return "company", "Company must be at most 200 characters"
		}
		return "company", "Company is required"
	case "Position":
		if fe.Tag() == "max" {
			return "position", "Position must be at most 200 characters"
		}
		return "position", "Position is required"
	case "Status":
		return "status", "Status is not a valid value"
	case "DateApplied":
		switch fe.Tag() {
		case "notfuture":
			return "dateApplied", "Date applied cannot be in the future"
		case "withinlastyear":
			return "dateApplied", "Date applied cannot be more than a year ago"
		}
		return "dateApplied", "Date applied is required"
	}
	return fe.StructField(), "Invalid value"
}

// Submission is the validated, trimmed payload handed to whoever performs
// the API call.
type Submission struct {
	Create      bool
	RecordID    uint
	Company     string
	Position    string
	Status      models.ApplicationStatus
	DateApplied time.Time
}

func (s Submission) CreateRequest() dtos.CreateApplicationRequest {
	return dtos.CreateApplicationRequest{
		Company:     s.Company,
		Position:    s.Position,
		Status:      s.Status,
		DateApplied: s.DateApplied,
	}
}

func (s Submission) UpdateRequest() dtos.UpdateApplicationRequest {
	return dtos.UpdateApplicationRequest{
		Company:     s.Company,
		Position:    s.Position,
		Status:      s.Status,
		DateApplied: s.DateApplied,
	}
}

// BeginSubmit validates the draft and, when clean, moves the form to
// Submitting and returns the payload. The calendar date becomes a UTC
// midnight timestamp, which is what the transport expects.
func (f *Form) BeginSubmit() (Submission, bool) {
	if f.mode != ModeCreateDraft && f.mode != ModeEditDraft {
		return Submission{}, false
	}
	if !f.Validate() {
		return Submission{}, false
	}

	date, _ := time.Parse(dateLayout, strings.TrimSpace(f.DateApplied))
	sub := Submission{
		Create:      f.mode == ModeCreateDraft,
		RecordID:    f.recordID,
		Company:     strings.TrimSpace(f.Company),
		Position:    strings.TrimSpace(f.Position),
		Status:      f.Status,
		DateApplied: date,
	}

	f.draftMode = f.mode
	f.mode = ModeSubmitting
	f.SubmitError = ""
	return sub, true
}

// HandleSuccess closes the form. A create draft resets to fresh defaults
// right away so reopening the form never shows stale data; an edit draft
// just closes.
func (f *Form) HandleSuccess() {
	if f.draftMode == ModeCreateDraft {
		f.resetFields()
	}
	f.mode = ModeClosed
	f.draftMode = ModeClosed
}

// HandleFailure lands back on the draft with fields preserved for retry
// and the general error message set.
func (f *Form) HandleFailure(msg string) {
	if f.mode == ModeSubmitting {
		f.mode = f.draftMode
	}
	f.SubmitError = msg
}
