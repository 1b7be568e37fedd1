package services

import (
	"github.com/sahilkr24/jobtrackr/internal/dtos"
	"github.com/sahilkr24/jobtrackr/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{
		DB: db,
	}
}

// List returns every application, newest first, so fresh records land at
// the top of the tracker the same way the UI prepends them.
func (s *ApplicationService) List() ([]models.JobApplication, error) {
	var apps []models.JobApplication
	if err := s.DB.Order("id desc").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *ApplicationService) Get(id uint) (*models.JobApplication, error) {
	var app models.JobApplication
	if err := s.DB.First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *ApplicationService) Create(req *dtos.CreateApplicationRequest) (*models.JobApplication, error) {
	app := &models.JobApplication{
		Company:     req.Company,
		Position:    req.Position,
		Status:      req.Status,
		DateApplied: req.DateApplied,
	}
	if err := s.DB.Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// Update is a full replacement of the four business fields.
func (s *ApplicationService) Update(id uint, req *dtos.UpdateApplicationRequest) (*models.JobApplication, error) {
	var app models.JobApplication
	if err := s.DB.First(&app, id).Error; err != nil {
		return nil, err
	}
	app.Company = req.Company
	app.Position = req.Position
	app.Status = req.Status
	app.DateApplied = req.DateApplied
	if err := s.DB.Save(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// Delete removes a record; deleting an id that is already gone comes back
// as gorm.ErrRecordNotFound so repeat deletes surface as 404, not success.
func (s *ApplicationService) Delete(id uint) error {
	var app models.JobApplication
	if err := s.DB.First(&app, id).Error; err != nil {
		return err
	}
	return s.DB.Delete(&app).Error
}
