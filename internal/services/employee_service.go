package services

import (
	"errors"
	"regexp"

	"github.com/staffdesk/company-platform/internal/models"
	"gorm.io/gorm"
)

var identityCardPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// EmployeeService owns the base Employee lifecycle. Referential guards for
// role deletion live in ProgrammerService/LeaderService; Delete here is an
// unconditional physical delete.
type EmployeeService struct {
	db *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

// EmployeeInput carries the base employee fields for creation.
type EmployeeInput struct {
	IdentityCard string  `json:"identity_card" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Age          int     `json:"age" binding:"required"`
	Sex          string  `json:"sex" binding:"required"`
	BaseSalary   float64 `json:"base_salary" binding:"required"`
}

// EmployeeUpdate applies only the fields that are present.
type EmployeeUpdate struct {
	IdentityCard *string  `json:"identity_card"`
	Name         *string  `json:"name"`
	Age          *int     `json:"age"`
	Sex          *string  `json:"sex"`
	BaseSalary   *float64 `json:"base_salary"`
}

// validateEmployeeInput re-checks the field constraints regardless of what
// the transport-layer schema validated.
func validateEmployeeInput(in EmployeeInput) error {
	if in.IdentityCard == "" || !identityCardPattern.MatchString(in.IdentityCard) {
		return validationf("identity_card must be non-empty alphanumeric")
	}
	if in.Name == "" {
		return validationf("name is required")
	}
	if in.Age < 18 || in.Age > 70 {
		return validationf("age must be between 18 and 70")
	}
	if in.BaseSalary <= 0 {
		return validationf("base_salary must be positive")
	}
	return nil
}

// Create inserts a new base employee with the given role tag.
func (s *EmployeeService) Create(in EmployeeInput, empType models.EmployeeType) (*models.Employee, error) {
	if err := validateEmployeeInput(in); err != nil {
		return nil, err
	}
	if empType != models.EmployeeTypeProgrammer && empType != models.EmployeeTypeLeader {
		return nil, validationf("type must be programmer or leader")
	}

	var existing models.Employee
	if err := s.db.Where("identity_card = ?", in.IdentityCard).First(&existing).Error; err == nil {
		return nil, conflictf("identity card %q already registered", in.IdentityCard)
	}

	employee := &models.Employee{
		IdentityCard: in.IdentityCard,
		Name:         in.Name,
		Age:          in.Age,
		Sex:          in.Sex,
		BaseSalary:   in.BaseSalary,
		Type:         empType,
	}
	if err := s.db.Create(employee).Error; err != nil {
		return nil, internalf("creating employee: %v", err)
	}
	return employee, nil
}

// Get returns the employee or nil when absent.
func (s *EmployeeService) Get(id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := s.db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internalf("fetching employee: %v", err)
	}
	return &employee, nil
}

// GetByIdentityCard returns the employee with that identity card or nil.
func (s *EmployeeService) GetByIdentityCard(identityCard string) (*models.Employee, error) {
	var employee models.Employee
	if err := s.db.Where("identity_card = ?", identityCard).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internalf("fetching employee: %v", err)
	}
	return &employee, nil
}

// List returns employees in insertion order with offset/limit pagination.
func (s *EmployeeService) List(offset, limit int) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.Order("id").Offset(offset).Limit(limit).Find(&employees).Error; err != nil {
		return nil, internalf("listing employees: %v", err)
	}
	return employees, nil
}

// Update applies present fields only. Returns nil when the id is absent.
func (s *EmployeeService) Update(id uint, upd EmployeeUpdate) (*models.Employee, error) {
	employee, err := s.Get(id)
	if err != nil || employee == nil {
		return employee, err
	}

	if upd.IdentityCard != nil {
		if !identityCardPattern.MatchString(*upd.IdentityCard) {
			return nil, validationf("identity_card must be non-empty alphanumeric")
		}
		var other models.Employee
		if err := s.db.Where("identity_card = ? AND id <> ?", *upd.IdentityCard, id).First(&other).Error; err == nil {
			return nil, conflictf("identity card %q already registered", *upd.IdentityCard)
		}
		employee.IdentityCard = *upd.IdentityCard
	}
	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, validationf("name is required")
		}
		employee.Name = *upd.Name
	}
	if upd.Age != nil {
		if *upd.Age < 18 || *upd.Age > 70 {
			return nil, validationf("age must be between 18 and 70")
		}
		employee.Age = *upd.Age
	}
	if upd.Sex != nil {
		employee.Sex = *upd.Sex
	}
	if upd.BaseSalary != nil {
		if *upd.BaseSalary <= 0 {
			return nil, validationf("base_salary must be positive")
		}
		employee.BaseSalary = *upd.BaseSalary
	}

	if err := s.db.Save(employee).Error; err != nil {
		return nil, internalf("updating employee: %v", err)
	}
	return employee, nil
}

// Delete removes the employee row. No referential pre-checks happen here;
// role services guard their own references before calling down.
func (s *EmployeeService) Delete(id uint) error {
	employee, err := s.Get(id)
	if err != nil {
		return err
	}
	if employee == nil {
		return notFoundf("employee %d not found", id)
	}
	if err := s.db.Delete(&models.Employee{}, id).Error; err != nil {
		return internalf("deleting employee: %v", err)
	}
	return nil
}
