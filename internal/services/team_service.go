package services

import (
	"errors"

	"github.com/staffdesk/company-platform/internal/models"
	"gorm.io/gorm"
)

// TeamService orchestrates team composition: one active team per
// programmer, at most one leader per team, and the delete cascade that
// detaches the team's project before removing membership rows.
type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// Create inserts a team. Members are managed only through AddMember and
// RemoveMember after creation.
func (s *TeamService) Create(name string, leaderID *uint) (*models.Team, error) {
	if name == "" {
		return nil, validationf("name is required")
	}
	if leaderID != nil {
		var leader models.Leader
		if err := s.db.First(&leader, "employee_id = ?", *leaderID).Error; err != nil {
			return nil, notFoundf("leader %d not found", *leaderID)
		}
	}

	team := &models.Team{Name: name, LeaderID: leaderID}
	if err := s.db.Create(team).Error; err != nil {
		return nil, internalf("creating team: %v", err)
	}
	return s.Get(team.ID)
}

// Get returns the team with its leader composed in, or nil.
func (s *TeamService) Get(id uint) (*models.Team, error) {
	var team models.Team
	err := s.db.Preload("Leader.Employee").First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internalf("fetching team: %v", err)
	}
	return &team, nil
}

// List returns teams with offset/limit pagination.
func (s *TeamService) List(offset, limit int) ([]models.Team, error) {
	var teams []models.Team
	err := s.db.Preload("Leader.Employee").
		Order("id").Offset(offset).Limit(limit).Find(&teams).Error
	if err != nil {
		return nil, internalf("listing teams: %v", err)
	}
	return teams, nil
}

// Update replaces name and leader. Returns nil when the team is absent.
func (s *TeamService) Update(id uint, name string, leaderID *uint) (*models.Team, error) {
	team, err := s.Get(id)
	if err != nil || team == nil {
		return team, err
	}
	if name == "" {
		return nil, validationf("name is required")
	}
	if leaderID != nil {
		var leader models.Leader
		if err := s.db.First(&leader, "employee_id = ?", *leaderID).Error; err != nil {
			return nil, notFoundf("leader %d not found", *leaderID)
		}
	}

	// Column-level update. Save on the preloaded struct would restore
	// LeaderID from the Leader association when clearing it.
	updates := map[string]interface{}{"name": name, "leader_id": leaderID}
	if err := s.db.Model(&models.Team{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, internalf("updating team: %v", err)
	}
	return s.Get(id)
}

// Delete detaches the team's project, removes its members and deletes the
// team row, all in one transaction. The project row survives with a nil
// team_id.
func (s *TeamService) Delete(id uint) error {
	team, err := s.Get(id)
	if err != nil {
		return err
	}
	if team == nil {
		return notFoundf("team %d not found", id)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Project{}).
			Where("team_id = ?", id).
			Update("team_id", nil).Error; err != nil {
			return internalf("detaching project: %v", err)
		}
		if err := tx.Where("team_id = ?", id).Delete(&models.TeamMember{}).Error; err != nil {
			return internalf("deleting team members: %v", err)
		}
		if err := tx.Delete(&models.Team{}, id).Error; err != nil {
			return internalf("deleting team: %v", err)
		}
		return nil
	})
}

// AddMember puts a programmer on a team. A programmer already on any team
// is rejected; the unique index on team_members.programmer_id backs this
// check up under concurrent adds.
func (s *TeamService) AddMember(teamID, programmerID uint) error {
	team, err := s.Get(teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return notFoundf("team %d not found", teamID)
	}

	var programmer models.Programmer
	if err := s.db.First(&programmer, "employee_id = ?", programmerID).Error; err != nil {
		return notFoundf("programmer %d not found", programmerID)
	}

	var existing models.TeamMember
	if err := s.db.Where("programmer_id = ?", programmerID).First(&existing).Error; err == nil {
		return conflictf("programmer %d already belongs to team %d", programmerID, existing.TeamID)
	}

	member := models.TeamMember{TeamID: teamID, ProgrammerID: programmerID}
	if err := s.db.Create(&member).Error; err != nil {
		// Lost the race against a concurrent add; the unique index decides.
		return conflictf("programmer %d already belongs to a team", programmerID)
	}
	return nil
}

// RemoveMember drops the membership row.
func (s *TeamService) RemoveMember(teamID, programmerID uint) error {
	team, err := s.Get(teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return notFoundf("team %d not found", teamID)
	}

	var programmer models.Programmer
	if err := s.db.First(&programmer, "employee_id = ?", programmerID).Error; err != nil {
		return notFoundf("programmer %d not found", programmerID)
	}

	res := s.db.Where("team_id = ? AND programmer_id = ?", teamID, programmerID).
		Delete(&models.TeamMember{})
	if res.Error != nil {
		return internalf("removing team member: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFoundf("programmer %d is not a member of team %d", programmerID, teamID)
	}
	return nil
}

// Members returns the composed member view for a team: programmer id,
// employee fields, category and languages.
func (s *TeamService) Members(teamID uint) ([]models.ProgrammerResponse, error) {
	team, err := s.Get(teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, notFoundf("team %d not found", teamID)
	}

	var programmers []models.Programmer
	err = s.db.Preload("Employee").Preload("Languages").
		Joins("JOIN team_members ON team_members.programmer_id = programmers.employee_id").
		Where("team_members.team_id = ?", teamID).
		Order("programmers.employee_id").
		Find(&programmers).Error
	if err != nil {
		return nil, internalf("listing team members: %v", err)
	}

	members := make([]models.ProgrammerResponse, 0, len(programmers))
	for i := range programmers {
		members = append(members, programmers[i].ToResponse())
	}
	return members, nil
}

// ByLeader returns the team led by the given leader, or nil.
func (s *TeamService) ByLeader(leaderID uint) (*models.Team, error) {
	var team models.Team
	err := s.db.Preload("Leader.Employee").
		Where("leader_id = ?", leaderID).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internalf("fetching team by leader: %v", err)
	}
	return &team, nil
}
