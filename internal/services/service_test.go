package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/staffdesk/company-platform/internal/database"
	"github.com/staffdesk/company-platform/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testEmployeeInput(identityCard string) EmployeeInput {
	return EmployeeInput{
		IdentityCard: identityCard,
		Name:         "Employee " + identityCard,
		Age:          30,
		Sex:          "male",
		BaseSalary:   1000,
	}
}

func createTestProgrammer(t *testing.T, db *gorm.DB, identityCard string, languages ...string) *models.Programmer {
	t.Helper()
	programmer, err := NewProgrammerService(db).Create(testEmployeeInput(identityCard), models.CategoryA, languages)
	require.NoError(t, err)
	return programmer
}

func createTestLeader(t *testing.T, db *gorm.DB, identityCard string) *models.Leader {
	t.Helper()
	leader, err := NewLeaderService(db).Create(testEmployeeInput(identityCard), 4, 2)
	require.NoError(t, err)
	return leader
}

func createTestTeam(t *testing.T, db *gorm.DB, name string, leaderID *uint) *models.Team {
	t.Helper()
	team, err := NewTeamService(db).Create(name, leaderID)
	require.NoError(t, err)
	return team
}

func testProjectInput(teamID uint) ProjectInput {
	return ProjectInput{
		Name:          "Project",
		Description:   "A project",
		EstimatedTime: 12,
		Price:         50000,
		TeamID:        teamID,
	}
}
