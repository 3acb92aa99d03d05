package services

import (
	"errors"

	"github.com/staffdesk/company-platform/internal/models"
	"gorm.io/gorm"
)

// LeaderService manages the leader role row joined 1:1 to an Employee.
type LeaderService struct {
	db *gorm.DB
}

func NewLeaderService(db *gorm.DB) *LeaderService {
	return &LeaderService{db: db}
}

// Create inserts the employee and the leader row in a single transaction.
func (s *LeaderService) Create(in EmployeeInput, yearsExperience, projectsLed int) (*models.Leader, error) {
	if err := validateEmployeeInput(in); err != nil {
		return nil, err
	}
	if yearsExperience < 1 {
		return nil, validationf("years_experience must be at least 1")
	}
	if projectsLed < 0 {
		return nil, validationf("projects_led must not be negative")
	}

	var existing models.Employee
	if err := s.db.Where("identity_card = ?", in.IdentityCard).First(&existing).Error; err == nil {
		return nil, conflictf("identity card %q already registered", in.IdentityCard)
	}

	var leader *models.Leader
	err := s.db.Transaction(func(tx *gorm.DB) error {
		employee := &models.Employee{
			IdentityCard: in.IdentityCard,
			Name:         in.Name,
			Age:          in.Age,
			Sex:          in.Sex,
			BaseSalary:   in.BaseSalary,
			Type:         models.EmployeeTypeLeader,
		}
		if err := tx.Create(employee).Error; err != nil {
			return internalf("creating employee: %v", err)
		}

		leader = &models.Leader{
			EmployeeID:      employee.ID,
			YearsExperience: yearsExperience,
			ProjectsLed:     projectsLed,
		}
		if err := tx.Create(leader).Error; err != nil {
			return internalf("creating leader: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(leader.EmployeeID)
}

// Get returns the leader with employee data, or nil.
func (s *LeaderService) Get(id uint) (*models.Leader, error) {
	var leader models.Leader
	err := s.db.Preload("Employee").First(&leader, "employee_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internalf("fetching leader: %v", err)
	}
	return &leader, nil
}

// List returns leaders with offset/limit pagination.
func (s *LeaderService) List(offset, limit int) ([]models.Leader, error) {
	var leaders []models.Leader
	err := s.db.Preload("Employee").
		Order("employee_id").Offset(offset).Limit(limit).Find(&leaders).Error
	if err != nil {
		return nil, internalf("listing leaders: %v", err)
	}
	return leaders, nil
}

// Update applies field-level partial updates. Returns nil when absent.
func (s *LeaderService) Update(id uint, yearsExperience, projectsLed *int) (*models.Leader, error) {
	leader, err := s.Get(id)
	if err != nil || leader == nil {
		return leader, err
	}

	if yearsExperience != nil {
		if *yearsExperience < 1 {
			return nil, validationf("years_experience must be at least 1")
		}
		leader.YearsExperience = *yearsExperience
	}
	if projectsLed != nil {
		if *projectsLed < 0 {
			return nil, validationf("projects_led must not be negative")
		}
		leader.ProjectsLed = *projectsLed
	}

	if err := s.db.Save(leader).Error; err != nil {
		return nil, internalf("updating leader: %v", err)
	}
	return s.Get(id)
}

// Delete removes the leader and its employee row in one transaction. A
// leader still assigned to a team cannot be deleted.
func (s *LeaderService) Delete(id uint) error {
	leader, err := s.Get(id)
	if err != nil {
		return err
	}
	if leader == nil {
		return notFoundf("leader %d not found", id)
	}

	var team models.Team
	if err := s.db.Where("leader_id = ?", id).First(&team).Error; err == nil {
		return conflictf("leader %d is assigned to team %d", id, team.ID)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Leader{}, "employee_id = ?", id).Error; err != nil {
			return internalf("deleting leader: %v", err)
		}
		if err := tx.Delete(&models.Employee{}, id).Error; err != nil {
			return internalf("deleting employee: %v", err)
		}
		return nil
	})
}
