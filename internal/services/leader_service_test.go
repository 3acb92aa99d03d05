package services

import (
	"testing"

	"github.com/staffdesk/company-platform/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderCreate(t *testing.T) {
	svc := NewLeaderService(newTestDB(t))

	leader, err := svc.Create(testEmployeeInput("LD1"), 4, 2)
	require.NoError(t, err)
	require.NotNil(t, leader.Employee)
	assert.Equal(t, models.EmployeeTypeLeader, leader.Employee.Type)
	assert.Equal(t, 4, leader.YearsExperience)
	assert.Equal(t, 2, leader.ProjectsLed)
}

func TestLeaderCreateValidation(t *testing.T) {
	svc := NewLeaderService(newTestDB(t))

	_, err := svc.Create(testEmployeeInput("LD2"), 0, 2)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(testEmployeeInput("LD2"), 1, -1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLeaderUpdatePartial(t *testing.T) {
	svc := NewLeaderService(newTestDB(t))

	leader, err := svc.Create(testEmployeeInput("LD3"), 4, 2)
	require.NoError(t, err)

	years := 6
	updated, err := svc.Update(leader.EmployeeID, &years, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.YearsExperience)
	assert.Equal(t, 2, updated.ProjectsLed)
}

func TestLeaderDeleteBlockedByTeam(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderService(db)

	leader := createTestLeader(t, db, "LD4")
	leaderID := leader.EmployeeID
	team := createTestTeam(t, db, "Alpha", &leaderID)

	err := svc.Delete(leaderID)
	assert.ErrorIs(t, err, ErrConflict)

	// No mutation happened: both the leader and the team survive.
	kept, err := svc.Get(leaderID)
	require.NoError(t, err)
	assert.NotNil(t, kept)

	keptTeam, err := NewTeamService(db).Get(team.ID)
	require.NoError(t, err)
	assert.NotNil(t, keptTeam)
}

func TestLeaderDeleteRemovesEmployee(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderService(db)

	leader := createTestLeader(t, db, "LD5")
	require.NoError(t, svc.Delete(leader.EmployeeID))

	var empCount, leaderCount int64
	db.Model(&models.Employee{}).Count(&empCount)
	db.Model(&models.Leader{}).Count(&leaderCount)
	assert.Zero(t, empCount)
	assert.Zero(t, leaderCount)
}
