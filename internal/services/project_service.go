package services

import (
	"errors"

	"github.com/staffdesk/company-platform/internal/models"
	"gorm.io/gorm"
)

// ProjectService enforces the one-project-per-team rule and keeps each
// project's typed detail row in step with its type discriminator.
type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// ProjectInput carries the base project fields for creation.
type ProjectInput struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	EstimatedTime int     `json:"estimated_time" binding:"required"`
	Price         float64 `json:"price" binding:"required"`
	TeamID        uint    `json:"team_id" binding:"required"`
}

// ProjectUpdate applies only the fields that are present.
type ProjectUpdate struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	EstimatedTime *int     `json:"estimated_time"`
	Price         *float64 `json:"price"`
	TeamID        *uint    `json:"team_id"`
}

func validateProjectInput(in ProjectInput) error {
	if in.Name == "" {
		return validationf("name is required")
	}
	if in.EstimatedTime <= 0 {
		return validationf("estimated_time must be positive")
	}
	if in.Price <= 0 {
		return validationf("price must be positive")
	}
	return nil
}

// checkTeamFree verifies the team exists and has no project other than
// excludeProjectID.
func (s *ProjectService) checkTeamFree(tx *gorm.DB, teamID uint, excludeProjectID uint) error {
	var team models.Team
	if err := tx.First(&team, teamID).Error; err != nil {
		return notFoundf("team %d not found", teamID)
	}
	var existing models.Project
	query := tx.Where("team_id = ?", teamID)
	if excludeProjectID != 0 {
		query = query.Where("id <> ?", excludeProjectID)
	}
	if err := query.First(&existing).Error; err == nil {
		return conflictf("team %d already has a project assigned", teamID)
	}
	return nil
}

// Create inserts a base project row after the team checks.
func (s *ProjectService) Create(in ProjectInput, projectType models.ProjectType) (*models.Project, error) {
	if err := validateProjectInput(in); err != nil {
		return nil, err
	}
	if projectType != models.ProjectTypeManagement && projectType != models.ProjectTypeMultimedia {
		return nil, validationf("type must be management or multimedia")
	}
	if err := s.checkTeamFree(s.db, in.TeamID, 0); err != nil {
		return nil, err
	}

	teamID := in.TeamID
	project := &models.Project{
		Name:          in.Name,
		Description:   in.Description,
		EstimatedTime: in.EstimatedTime,
		Price:         in.Price,
		Type:          projectType,
		TeamID:        &teamID,
	}
	if err := s.db.Create(project).Error; err != nil {
		return nil, internalf("creating project: %v", err)
	}
	return project, nil
}

// CreateManagement inserts the base project (type forced to management)
// and its detail row in one transaction.
func (s *ProjectService) CreateManagement(in ProjectInput, databaseType, programmingLanguage, framework string) (*models.ProjectWithDetails, error) {
	if err := validateProjectInput(in); err != nil {
		return nil, err
	}
	if databaseType == "" || programmingLanguage == "" || framework == "" {
		return nil, validationf("database_type, programming_language and framework are required")
	}
	if err := s.checkTeamFree(s.db, in.TeamID, 0); err != nil {
		return nil, err
	}

	var projectID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		teamID := in.TeamID
		project := &models.Project{
			Name:          in.Name,
			Description:   in.Description,
			EstimatedTime: in.EstimatedTime,
			Price:         in.Price,
			Type:          models.ProjectTypeManagement,
			TeamID:        &teamID,
		}
		if err := tx.Create(project).Error; err != nil {
			return internalf("creating project: %v", err)
		}
		detail := &models.ManagementProject{
			ProjectID:           project.ID,
			DatabaseType:        databaseType,
			ProgrammingLanguage: programmingLanguage,
			Framework:           framework,
		}
		if err := tx.Create(detail).Error; err != nil {
			return internalf("creating management details: %v", err)
		}
		projectID = project.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.WithDetails(projectID)
}

// CreateMultimedia inserts the base project (type forced to multimedia)
// and its detail row in one transaction.
func (s *ProjectService) CreateMultimedia(in ProjectInput, tool models.DevelopmentTool) (*models.ProjectWithDetails, error) {
	if err := validateProjectInput(in); err != nil {
		return nil, err
	}
	if tool != models.ToolFlash && tool != models.ToolDirector {
		return nil, validationf("development_tool must be flash or director")
	}
	if err := s.checkTeamFree(s.db, in.TeamID, 0); err != nil {
		return nil, err
	}

	var projectID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		teamID := in.TeamID
		project := &models.Project{
			Name:          in.Name,
			Description:   in.Description,
			EstimatedTime: in.EstimatedTime,
			Price:         in.Price,
			Type:          models.ProjectTypeMultimedia,
			TeamID:        &teamID,
		}
		if err := tx.Create(project).Error; err != nil {
			return internalf("creating project: %v", err)
		}
		detail := &models.MultimediaProject{
			ProjectID:       project.ID,
			DevelopmentTool: tool,
		}
		if err := tx.Create(detail).Error; err != nil {
			return internalf("creating multimedia details: %v", err)
		}
		projectID = project.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.WithDetails(projectID)
}

// Get returns the project or nil when absent.
func (s *ProjectService) Get(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.Preload("Team").First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internalf("fetching project: %v", err)
	}
	return &project, nil
}

// List returns projects with offset/limit pagination.
func (s *ProjectService) List(offset, limit int) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Order("id").Offset(offset).Limit(limit).Find(&projects).Error; err != nil {
		return nil, internalf("listing projects: %v", err)
	}
	return projects, nil
}

// Update applies present fields. A team change re-validates that the new
// team exists and has no other project.
func (s *ProjectService) Update(id uint, upd ProjectUpdate) (*models.Project, error) {
	project, err := s.Get(id)
	if err != nil || project == nil {
		return project, err
	}

	if upd.TeamID != nil && (project.TeamID == nil || *upd.TeamID != *project.TeamID) {
		if err := s.checkTeamFree(s.db, *upd.TeamID, id); err != nil {
			return nil, err
		}
		project.TeamID = upd.TeamID
	}
	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, validationf("name is required")
		}
		project.Name = *upd.Name
	}
	if upd.Description != nil {
		project.Description = *upd.Description
	}
	if upd.EstimatedTime != nil {
		if *upd.EstimatedTime <= 0 {
			return nil, validationf("estimated_time must be positive")
		}
		project.EstimatedTime = *upd.EstimatedTime
	}
	if upd.Price != nil {
		if *upd.Price <= 0 {
			return nil, validationf("price must be positive")
		}
		project.Price = *upd.Price
	}

	if err := s.db.Save(project).Error; err != nil {
		return nil, internalf("updating project: %v", err)
	}
	return s.Get(id)
}

// UpdateManagement updates the management detail row. A project of another
// type is a conflict; an absent project or detail row returns nil.
func (s *ProjectService) UpdateManagement(id uint, databaseType, programmingLanguage, framework *string) (*models.ManagementProject, error) {
	project, err := s.Get(id)
	if err != nil || project == nil {
		return nil, err
	}
	if project.Type != models.ProjectTypeManagement {
		return nil, conflictf("project %d is not a management project", id)
	}

	var detail models.ManagementProject
	if err := s.db.First(&detail, "project_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internalf("fetching management details: %v", err)
	}

	if databaseType != nil {
		if *databaseType == "" {
			return nil, validationf("database_type is required")
		}
		detail.DatabaseType = *databaseType
	}
	if programmingLanguage != nil {
		if *programmingLanguage == "" {
			return nil, validationf("programming_language is required")
		}
		detail.ProgrammingLanguage = *programmingLanguage
	}
	if framework != nil {
		if *framework == "" {
			return nil, validationf("framework is required")
		}
		detail.Framework = *framework
	}

	if err := s.db.Save(&detail).Error; err != nil {
		return nil, internalf("updating management details: %v", err)
	}
	return &detail, nil
}

// UpdateMultimedia updates the multimedia detail row under the same rules
// as UpdateManagement.
func (s *ProjectService) UpdateMultimedia(id uint, tool *models.DevelopmentTool) (*models.MultimediaProject, error) {
	project, err := s.Get(id)
	if err != nil || project == nil {
		return nil, err
	}
	if project.Type != models.ProjectTypeMultimedia {
		return nil, conflictf("project %d is not a multimedia project", id)
	}

	var detail models.MultimediaProject
	if err := s.db.First(&detail, "project_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internalf("fetching multimedia details: %v", err)
	}

	if tool != nil {
		if *tool != models.ToolFlash && *tool != models.ToolDirector {
			return nil, validationf("development_tool must be flash or director")
		}
		detail.DevelopmentTool = *tool
	}

	if err := s.db.Save(&detail).Error; err != nil {
		return nil, internalf("updating multimedia details: %v", err)
	}
	return &detail, nil
}

// Delete removes whichever detail row exists and then the base row, in one
// transaction.
func (s *ProjectService) Delete(id uint) error {
	project, err := s.Get(id)
	if err != nil {
		return err
	}
	if project == nil {
		return notFoundf("project %d not found", id)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ManagementProject{}).Error; err != nil {
			return internalf("deleting management details: %v", err)
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.MultimediaProject{}).Error; err != nil {
			return internalf("deleting multimedia details: %v", err)
		}
		if err := tx.Delete(&models.Project{}, id).Error; err != nil {
			return internalf("deleting project: %v", err)
		}
		return nil
	})
}

// ByType returns all projects of one type.
func (s *ProjectService) ByType(projectType models.ProjectType) ([]models.Project, error) {
	if projectType != models.ProjectTypeManagement && projectType != models.ProjectTypeMultimedia {
		return nil, validationf("type must be management or multimedia")
	}
	var projects []models.Project
	if err := s.db.Where("type = ?", projectType).Order("id").Find(&projects).Error; err != nil {
		return nil, internalf("listing projects by type: %v", err)
	}
	return projects, nil
}

// WithDetails joins the detail row selected by the project's type. Returns
// nil when the project is absent.
func (s *ProjectService) WithDetails(id uint) (*models.ProjectWithDetails, error) {
	project, err := s.Get(id)
	if err != nil || project == nil {
		return nil, err
	}

	result := &models.ProjectWithDetails{Project: *project}
	switch project.Type {
	case models.ProjectTypeManagement:
		var detail models.ManagementProject
		if err := s.db.First(&detail, "project_id = ?", id).Error; err == nil {
			result.ManagementDetails = &detail
		}
	case models.ProjectTypeMultimedia:
		var detail models.MultimediaProject
		if err := s.db.First(&detail, "project_id = ?", id).Error; err == nil {
			result.MultimediaDetails = &detail
		}
	}
	return result, nil
}

// EarliestFinishing returns the project with the smallest estimated time;
// ties go to the earliest stored row. Returns nil when there are none.
func (s *ProjectService) EarliestFinishing() (*models.Project, error) {
	var project models.Project
	err := s.db.Order("estimated_time ASC, id ASC").First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internalf("fetching earliest project: %v", err)
	}
	return &project, nil
}
