package services

import (
	"errors"
	"sort"

	"github.com/staffdesk/company-platform/internal/models"
	"gorm.io/gorm"
)

// Salary bonus rates. A programmer earns a flat bonus per mastered
// language; a leader earns flat bonuses per year of experience and per
// project led.
const (
	languageBonus   = 200.0
	experienceBonus = 300.0
	projectsBonus   = 500.0
)

// AnalyticsService computes read-only derivations over the business graph.
type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// SalaryInfo is one row of the salary ranking.
type SalaryInfo struct {
	EmployeeID  uint    `json:"employee_id"`
	Name        string  `json:"name"`
	TotalSalary float64 `json:"total_salary"`
}

// CalculateSalary derives the total salary from the employee's role data:
// programmer = base + 200 per language, leader = base + 300 per year of
// experience + 500 per project led.
func (s *AnalyticsService) CalculateSalary(employeeID uint) (float64, error) {
	var employee models.Employee
	if err := s.db.First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, notFoundf("employee %d not found", employeeID)
		}
		return 0, internalf("fetching employee: %v", err)
	}

	total := employee.BaseSalary

	switch employee.Type {
	case models.EmployeeTypeProgrammer:
		var languageCount int64
		if err := s.db.Model(&models.ProgrammerLanguage{}).
			Where("programmer_id = ?", employeeID).
			Count(&languageCount).Error; err != nil {
			return 0, internalf("counting languages: %v", err)
		}
		total += float64(languageCount) * languageBonus
	case models.EmployeeTypeLeader:
		var leader models.Leader
		if err := s.db.First(&leader, "employee_id = ?", employeeID).Error; err == nil {
			total += float64(leader.YearsExperience) * experienceBonus
			total += float64(leader.ProjectsLed) * projectsBonus
		}
	}

	return total, nil
}

// CountProjectsByType groups projects by type, one bucket per type present.
func (s *AnalyticsService) CountProjectsByType() ([]models.ProjectTypeCount, error) {
	var counts []models.ProjectTypeCount
	err := s.db.Model(&models.Project{}).
		Select("type AS project_type, COUNT(id) AS count").
		Group("type").
		Order("type").
		Scan(&counts).Error
	if err != nil {
		return nil, internalf("counting projects: %v", err)
	}
	return counts, nil
}

// HighestPaidEmployees computes the salary of every employee, sorts
// descending and truncates. The sort is stable so retrieval order breaks
// ties.
func (s *AnalyticsService) HighestPaidEmployees(limit int) ([]SalaryInfo, error) {
	if limit <= 0 {
		return nil, validationf("limit must be positive")
	}

	var employees []models.Employee
	if err := s.db.Order("id").Find(&employees).Error; err != nil {
		return nil, internalf("listing employees: %v", err)
	}

	infos := make([]SalaryInfo, 0, len(employees))
	for _, employee := range employees {
		total, err := s.CalculateSalary(employee.ID)
		if err != nil {
			return nil, err
		}
		infos = append(infos, SalaryInfo{
			EmployeeID:  employee.ID,
			Name:        employee.Name,
			TotalSalary: total,
		})
	}

	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].TotalSalary > infos[j].TotalSalary
	})

	if len(infos) > limit {
		infos = infos[:limit]
	}
	return infos, nil
}

// ProgrammersByFramework walks Programmer -> TeamMember -> Team -> Project
// -> ManagementProject and returns the distinct programmers working on
// projects built with the given framework.
func (s *AnalyticsService) ProgrammersByFramework(framework string) ([]models.Programmer, error) {
	if framework == "" {
		return nil, validationf("framework is required")
	}

	var programmers []models.Programmer
	err := s.db.Preload("Employee").Preload("Languages").
		Joins("JOIN team_members ON team_members.programmer_id = programmers.employee_id").
		Joins("JOIN teams ON teams.id = team_members.team_id").
		Joins("JOIN projects ON projects.team_id = teams.id").
		Joins("JOIN management_projects ON management_projects.project_id = projects.id").
		Where("management_projects.framework = ?", framework).
		Distinct().
		Order("programmers.employee_id").
		Find(&programmers).Error
	if err != nil {
		return nil, internalf("querying programmers by framework: %v", err)
	}
	return programmers, nil
}

// ProgrammersByProject returns the programmers on the team assigned to the
// given project.
func (s *AnalyticsService) ProgrammersByProject(projectID uint) ([]models.Programmer, error) {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		return nil, notFoundf("project %d not found", projectID)
	}
	if project.TeamID == nil {
		return []models.Programmer{}, nil
	}

	var programmers []models.Programmer
	err := s.db.Preload("Employee").Preload("Languages").
		Joins("JOIN team_members ON team_members.programmer_id = programmers.employee_id").
		Where("team_members.team_id = ?", *project.TeamID).
		Order("programmers.employee_id").
		Find(&programmers).Error
	if err != nil {
		return nil, internalf("querying programmers by project: %v", err)
	}
	return programmers, nil
}

// ProjectByProgrammerIdentity resolves the programmer by identity card,
// follows the membership to the team and returns the team's project.
// Returns nil when the programmer has no team or the team has no project.
func (s *AnalyticsService) ProjectByProgrammerIdentity(identityCard string) (*models.Project, error) {
	var employee models.Employee
	err := s.db.Where("identity_card = ? AND type = ?", identityCard, models.EmployeeTypeProgrammer).
		First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("no programmer with identity card %q", identityCard)
		}
		return nil, internalf("fetching employee: %v", err)
	}

	var membership models.TeamMember
	if err := s.db.Where("programmer_id = ?", employee.ID).First(&membership).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internalf("fetching membership: %v", err)
	}

	var project models.Project
	if err := s.db.Where("team_id = ?", membership.TeamID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internalf("fetching project: %v", err)
	}
	return &project, nil
}
