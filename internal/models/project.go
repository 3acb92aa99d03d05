package models

type ProjectType string

const (
	ProjectTypeManagement ProjectType = "management"
	ProjectTypeMultimedia ProjectType = "multimedia"
)

type DevelopmentTool string

const (
	ToolFlash    DevelopmentTool = "flash"
	ToolDirector DevelopmentTool = "director"
)

// Project is the base row; exactly one detail row (management or
// multimedia) exists, matching Type. The unique index on TeamID enforces
// at most one project per team; a detached project keeps TeamID nil.
type Project struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Name          string      `gorm:"size:100;not null" json:"name"`
	Description   string      `gorm:"type:text" json:"description"`
	EstimatedTime int         `gorm:"not null" json:"estimated_time"`
	Price         float64     `gorm:"not null" json:"price"`
	Type          ProjectType `gorm:"size:20;not null" json:"type"`
	TeamID        *uint       `gorm:"uniqueIndex" json:"team_id,omitempty"`

	// Relations
	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

// ManagementProject is the detail row for Type=management.
type ManagementProject struct {
	ProjectID           uint   `gorm:"primaryKey" json:"project_id"`
	DatabaseType        string `gorm:"size:50;not null" json:"database_type"`
	ProgrammingLanguage string `gorm:"size:50;not null" json:"programming_language"`
	Framework           string `gorm:"size:50;not null" json:"framework"`
}

// MultimediaProject is the detail row for Type=multimedia.
type MultimediaProject struct {
	ProjectID       uint            `gorm:"primaryKey" json:"project_id"`
	DevelopmentTool DevelopmentTool `gorm:"size:20;not null" json:"development_tool"`
}

// ProjectWithDetails joins the base project with whichever detail row its
// type selects.
type ProjectWithDetails struct {
	Project           Project            `json:"project"`
	ManagementDetails *ManagementProject `json:"management_details,omitempty"`
	MultimediaDetails *MultimediaProject `json:"multimedia_details,omitempty"`
}

// ProjectTypeCount is one group-by bucket of the project count analytics.
type ProjectTypeCount struct {
	ProjectType ProjectType `json:"project_type"`
	Count       int64       `json:"count"`
}
