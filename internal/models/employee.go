package models

type EmployeeType string

const (
	EmployeeTypeProgrammer EmployeeType = "programmer"
	EmployeeTypeLeader     EmployeeType = "leader"
)

type ProgrammerCategory string

const (
	CategoryA ProgrammerCategory = "A"
	CategoryB ProgrammerCategory = "B"
	CategoryC ProgrammerCategory = "C"
)

// Employee is the polymorphic base for Programmer and Leader. The Type
// discriminator decides which 1:1 extension row must exist.
type Employee struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	IdentityCard string       `gorm:"size:20;uniqueIndex;not null" json:"identity_card"`
	Name         string       `gorm:"size:100;not null" json:"name"`
	Age          int          `gorm:"not null" json:"age"`
	Sex          string       `gorm:"size:10;not null" json:"sex"`
	BaseSalary   float64      `gorm:"not null" json:"base_salary"`
	Type         EmployeeType `gorm:"size:20;not null" json:"type"`
}

// Programmer extends Employee (Type=programmer) with a category and a
// many-valued language set.
type Programmer struct {
	EmployeeID uint               `gorm:"primaryKey" json:"employee_id"`
	Category   ProgrammerCategory `gorm:"size:1;not null" json:"category"`

	// Relations
	Employee  *Employee            `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Languages []ProgrammerLanguage `gorm:"foreignKey:ProgrammerID" json:"languages,omitempty"`
}

// ProgrammerLanguage holds one language of one programmer. The composite
// primary key keeps the set free of duplicates.
type ProgrammerLanguage struct {
	ProgrammerID uint   `gorm:"primaryKey" json:"programmer_id"`
	Language     string `gorm:"size:50;primaryKey" json:"language"`
}

// Leader extends Employee (Type=leader).
type Leader struct {
	EmployeeID      uint `gorm:"primaryKey" json:"employee_id"`
	YearsExperience int  `gorm:"not null" json:"years_experience"`
	ProjectsLed     int  `gorm:"not null" json:"projects_led"`

	// Relations
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// ProgrammerResponse is the composed read view: employee fields plus the
// category and the flattened language list.
type ProgrammerResponse struct {
	EmployeeID   uint               `json:"employee_id"`
	IdentityCard string             `json:"identity_card"`
	Name         string             `json:"name"`
	Age          int                `json:"age"`
	Sex          string             `json:"sex"`
	BaseSalary   float64            `json:"base_salary"`
	Category     ProgrammerCategory `json:"category"`
	Languages    []string           `json:"languages"`
}

func (p *Programmer) ToResponse() ProgrammerResponse {
	resp := ProgrammerResponse{
		EmployeeID: p.EmployeeID,
		Category:   p.Category,
		Languages:  []string{},
	}
	if p.Employee != nil {
		resp.IdentityCard = p.Employee.IdentityCard
		resp.Name = p.Employee.Name
		resp.Age = p.Employee.Age
		resp.Sex = p.Employee.Sex
		resp.BaseSalary = p.Employee.BaseSalary
	}
	for _, l := range p.Languages {
		resp.Languages = append(resp.Languages, l.Language)
	}
	return resp
}

type LeaderResponse struct {
	EmployeeID      uint    `json:"employee_id"`
	IdentityCard    string  `json:"identity_card"`
	Name            string  `json:"name"`
	Age             int     `json:"age"`
	Sex             string  `json:"sex"`
	BaseSalary      float64 `json:"base_salary"`
	YearsExperience int     `json:"years_experience"`
	ProjectsLed     int     `json:"projects_led"`
}

func (l *Leader) ToResponse() LeaderResponse {
	resp := LeaderResponse{
		EmployeeID:      l.EmployeeID,
		YearsExperience: l.YearsExperience,
		ProjectsLed:     l.ProjectsLed,
	}
	if l.Employee != nil {
		resp.IdentityCard = l.Employee.IdentityCard
		resp.Name = l.Employee.Name
		resp.Age = l.Employee.Age
		resp.Sex = l.Employee.Sex
		resp.BaseSalary = l.Employee.BaseSalary
	}
	return resp
}
