package models

// Team groups programmers under an optional leader. A team carries at most
// one project; that side of the relation lives on Project.TeamID.
type Team struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	LeaderID *uint  `gorm:"index" json:"leader_id,omitempty"`

	// Relations
	Leader *Leader `gorm:"foreignKey:LeaderID" json:"leader,omitempty"`
}

// TeamMember links one programmer to one team. The unique index on
// ProgrammerID is the store-level arbiter for the one-team-per-programmer
// invariant; the service pre-check alone would race under concurrent adds.
type TeamMember struct {
	TeamID       uint `gorm:"primaryKey" json:"team_id"`
	ProgrammerID uint `gorm:"primaryKey;uniqueIndex" json:"programmer_id"`
}
