package dtos

import (
	"time"

	"github.com/sahilkr24/jobtrackr/internal/models"
)

type CreateApplicationRequest struct {
	Company     string                   `json:"company" binding:"required,max=200"`
	Position    string                   `json:"position" binding:"required,max=200"`
	Status      models.ApplicationStatus `json:"status" binding:"required,min=1,max=6"`
	DateApplied time.Time                `json:"dateApplied" binding:"required"`
}

// UpdateApplicationRequest is a full replacement: every business field is
// required on every update, there is no partial patch.
type UpdateApplicationRequest struct {
	Company     string                   `json:"company" binding:"required,max=200"`
	Position    string                   `json:"position" binding:"required,max=200"`
	Status      models.ApplicationStatus `json:"status" binding:"required,min=1,max=6"`
	DateApplied time.Time                `json:"dateApplied" binding:"required"`
}
