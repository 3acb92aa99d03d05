package services

import (
	"errors"

	"github.com/staffdesk/company-platform/internal/models"
	"gorm.io/gorm"
)

// ProgrammerService manages the programmer role row joined 1:1 to an
// Employee, including the many-valued language set.
type ProgrammerService struct {
	db *gorm.DB
}

func NewProgrammerService(db *gorm.DB) *ProgrammerService {
	return &ProgrammerService{db: db}
}

func validCategory(c models.ProgrammerCategory) bool {
	return c == models.CategoryA || c == models.CategoryB || c == models.CategoryC
}

// dedupeLanguages keeps first occurrence order while dropping duplicates.
func dedupeLanguages(languages []string) []string {
	seen := make(map[string]bool, len(languages))
	out := make([]string, 0, len(languages))
	for _, lang := range languages {
		if lang == "" || seen[lang] {
			continue
		}
		seen[lang] = true
		out = append(out, lang)
	}
	return out
}

// Create inserts the employee, the programmer row and one language row per
// distinct language in a single transaction. A failure at any step leaves
// no orphaned employee behind.
func (s *ProgrammerService) Create(in EmployeeInput, category models.ProgrammerCategory, languages []string) (*models.Programmer, error) {
	if err := validateEmployeeInput(in); err != nil {
		return nil, err
	}
	if !validCategory(category) {
		return nil, validationf("category must be A, B or C")
	}

	var existing models.Employee
	if err := s.db.Where("identity_card = ?", in.IdentityCard).First(&existing).Error; err == nil {
		return nil, conflictf("identity card %q already registered", in.IdentityCard)
	}

	var programmer *models.Programmer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		employee := &models.Employee{
			IdentityCard: in.IdentityCard,
			Name:         in.Name,
			Age:          in.Age,
			Sex:          in.Sex,
			BaseSalary:   in.BaseSalary,
			Type:         models.EmployeeTypeProgrammer,
		}
		if err := tx.Create(employee).Error; err != nil {
			return internalf("creating employee: %v", err)
		}

		programmer = &models.Programmer{
			EmployeeID: employee.ID,
			Category:   category,
		}
		if err := tx.Create(programmer).Error; err != nil {
			return internalf("creating programmer: %v", err)
		}

		for _, lang := range dedupeLanguages(languages) {
			row := models.ProgrammerLanguage{ProgrammerID: employee.ID, Language: lang}
			if err := tx.Create(&row).Error; err != nil {
				return internalf("creating programmer language: %v", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(programmer.EmployeeID)
}

// Get returns the programmer with employee and languages, or nil.
func (s *ProgrammerService) Get(id uint) (*models.Programmer, error) {
	var programmer models.Programmer
	err := s.db.Preload("Employee").Preload("Languages").
		First(&programmer, "employee_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internalf("fetching programmer: %v", err)
	}
	return &programmer, nil
}

// List returns programmers with offset/limit pagination.
func (s *ProgrammerService) List(offset, limit int) ([]models.Programmer, error) {
	var programmers []models.Programmer
	err := s.db.Preload("Employee").Preload("Languages").
		Order("employee_id").Offset(offset).Limit(limit).Find(&programmers).Error
	if err != nil {
		return nil, internalf("listing programmers: %v", err)
	}
	return programmers, nil
}

// Update changes the category when given and, when languages is non-nil,
// replaces the entire language set. An empty non-nil slice clears it.
func (s *ProgrammerService) Update(id uint, category *models.ProgrammerCategory, languages *[]string) (*models.Programmer, error) {
	programmer, err := s.Get(id)
	if err != nil || programmer == nil {
		return programmer, err
	}

	if category != nil && !validCategory(*category) {
		return nil, validationf("category must be A, B or C")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if category != nil {
			if err := tx.Model(&models.Programmer{}).
				Where("employee_id = ?", id).
				Update("category", *category).Error; err != nil {
				return internalf("updating programmer: %v", err)
			}
		}
		if languages != nil {
			if err := tx.Where("programmer_id = ?", id).
				Delete(&models.ProgrammerLanguage{}).Error; err != nil {
				return internalf("clearing languages: %v", err)
			}
			for _, lang := range dedupeLanguages(*languages) {
				row := models.ProgrammerLanguage{ProgrammerID: id, Language: lang}
				if err := tx.Create(&row).Error; err != nil {
					return internalf("creating programmer language: %v", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes languages, the programmer row and the employee row in one
// transaction. A programmer still on a team cannot be deleted.
func (s *ProgrammerService) Delete(id uint) error {
	programmer, err := s.Get(id)
	if err != nil {
		return err
	}
	if programmer == nil {
		return notFoundf("programmer %d not found", id)
	}

	var membership models.TeamMember
	if err := s.db.Where("programmer_id = ?", id).First(&membership).Error; err == nil {
		return conflictf("programmer %d still belongs to team %d", id, membership.TeamID)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("programmer_id = ?", id).Delete(&models.ProgrammerLanguage{}).Error; err != nil {
			return internalf("deleting languages: %v", err)
		}
		if err := tx.Delete(&models.Programmer{}, "employee_id = ?", id).Error; err != nil {
			return internalf("deleting programmer: %v", err)
		}
		if err := tx.Delete(&models.Employee{}, id).Error; err != nil {
			return internalf("deleting employee: %v", err)
		}
		return nil
	})
}

// Languages returns the language set in insertion order.
func (s *ProgrammerService) Languages(id uint) ([]string, error) {
	programmer, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if programmer == nil {
		return nil, notFoundf("programmer %d not found", id)
	}
	languages := make([]string, 0, len(programmer.Languages))
	for _, l := range programmer.Languages {
		languages = append(languages, l.Language)
	}
	return languages, nil
}

// AddLanguage adds a single language to the set.
func (s *ProgrammerService) AddLanguage(id uint, language string) error {
	if language == "" {
		return validationf("language is required")
	}
	programmer, err := s.Get(id)
	if err != nil {
		return err
	}
	if programmer == nil {
		return notFoundf("programmer %d not found", id)
	}
	for _, l := range programmer.Languages {
		if l.Language == language {
			return conflictf("programmer %d already knows %s", id, language)
		}
	}
	row := models.ProgrammerLanguage{ProgrammerID: id, Language: language}
	if err := s.db.Create(&row).Error; err != nil {
		return internalf("creating programmer language: %v", err)
	}
	return nil
}

// RemoveLanguage removes a single language from the set.
func (s *ProgrammerService) RemoveLanguage(id uint, language string) error {
	res := s.db.Where("programmer_id = ? AND language = ?", id, language).
		Delete(&models.ProgrammerLanguage{})
	if res.Error != nil {
		return internalf("deleting programmer language: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFoundf("programmer %d does not know %s", id, language)
	}
	return nil
}
