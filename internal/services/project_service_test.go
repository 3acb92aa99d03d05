package services

import (
	"testing"

	"github.com/staffdesk/company-platform/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCreateRequiresTeam(t *testing.T) {
	svc := NewProjectService(newTestDB(t))

	_, err := svc.Create(testProjectInput(999), models.ProjectTypeManagement)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	team := createTestTeam(t, db, "Alpha", nil)

	in := testProjectInput(team.ID)
	in.EstimatedTime = 0
	_, err := svc.Create(in, models.ProjectTypeManagement)
	assert.ErrorIs(t, err, ErrValidation)

	in = testProjectInput(team.ID)
	in.Price = 0
	_, err = svc.Create(in, models.ProjectTypeManagement)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(testProjectInput(team.ID), "research")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTeamHasAtMostOneProject(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	team := createTestTeam(t, db, "Alpha", nil)

	first, err := svc.Create(testProjectInput(team.ID), models.ProjectTypeManagement)
	require.NoError(t, err)

	_, err = svc.Create(testProjectInput(team.ID), models.ProjectTypeMultimedia)
	assert.ErrorIs(t, err, ErrConflict)

	// First project untouched.
	kept, err := svc.Get(first.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
	require.NotNil(t, kept.TeamID)
	assert.Equal(t, team.ID, *kept.TeamID)

	var count int64
	db.Model(&models.Project{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateManagementProject(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	team := createTestTeam(t, db, "Alpha", nil)

	details, err := svc.CreateManagement(testProjectInput(team.ID), "postgres", "go", "gin")
	require.NoError(t, err)
	assert.Equal(t, models.ProjectTypeManagement, details.Project.Type)
	require.NotNil(t, details.ManagementDetails)
	assert.Equal(t, "gin", details.ManagementDetails.Framework)
	assert.Nil(t, details.MultimediaDetails)
}

func TestCreateMultimediaProject(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	team := createTestTeam(t, db, "Alpha", nil)

	details, err := svc.CreateMultimedia(testProjectInput(team.ID), models.ToolFlash)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectTypeMultimedia, details.Project.Type)
	require.NotNil(t, details.MultimediaDetails)
	assert.Equal(t, models.ToolFlash, details.MultimediaDetails.DevelopmentTool)

	_, err = svc.CreateMultimedia(testProjectInput(team.ID), "unity")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateManagementTypeMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	team := createTestTeam(t, db, "Alpha", nil)

	details, err := svc.CreateMultimedia(testProjectInput(team.ID), models.ToolDirector)
	require.NoError(t, err)

	framework := "django"
	_, err = svc.UpdateManagement(details.Project.ID, nil, nil, &framework)
	assert.ErrorIs(t, err, ErrConflict)

	// Nothing mutated.
	after, err := svc.WithDetails(details.Project.ID)
	require.NoError(t, err)
	require.NotNil(t, after.MultimediaDetails)
	assert.Equal(t, models.ToolDirector, after.MultimediaDetails.DevelopmentTool)
}

func TestUpdateManagementAbsentReturnsNil(t *testing.T) {
	svc := NewProjectService(newTestDB(t))

	framework := "gin"
	detail, err := svc.UpdateManagement(999, nil, nil, &framework)
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestUpdateMultimediaTool(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	team := createTestTeam(t, db, "Alpha", nil)

	details, err := svc.CreateMultimedia(testProjectInput(team.ID), models.ToolFlash)
	require.NoError(t, err)

	tool := models.ToolDirector
	updated, err := svc.UpdateMultimedia(details.Project.ID, &tool)
	require.NoError(t, err)
	assert.Equal(t, models.ToolDirector, updated.DevelopmentTool)
}

func TestProjectUpdateTeamChange(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)

	alpha := createTestTeam(t, db, "Alpha", nil)
	beta := createTestTeam(t, db, "Beta", nil)

	project, err := svc.Create(testProjectInput(alpha.ID), models.ProjectTypeManagement)
	require.NoError(t, err)

	// Move to a free team.
	updated, err := svc.Update(project.ID, ProjectUpdate{TeamID: &beta.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.TeamID)
	assert.Equal(t, beta.ID, *updated.TeamID)

	// An occupied team is a conflict.
	other, err := svc.Create(testProjectInput(alpha.ID), models.ProjectTypeManagement)
	require.NoError(t, err)
	_, err = svc.Update(other.ID, ProjectUpdate{TeamID: &beta.ID})
	assert.ErrorIs(t, err, ErrConflict)

	// Re-saving with its own team is not a conflict.
	name := "Renamed"
	_, err = svc.Update(project.ID, ProjectUpdate{Name: &name, TeamID: &beta.ID})
	require.NoError(t, err)
}

func TestProjectDeleteRemovesDetailRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	team := createTestTeam(t, db, "Alpha", nil)

	details, err := svc.CreateManagement(testProjectInput(team.ID), "postgres", "go", "gin")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(details.Project.ID))

	var projCount, mgmtCount int64
	db.Model(&models.Project{}).Count(&projCount)
	db.Model(&models.ManagementProject{}).Count(&mgmtCount)
	assert.Zero(t, projCount)
	assert.Zero(t, mgmtCount)
}

func TestProjectByType(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)

	alpha := createTestTeam(t, db, "Alpha", nil)
	beta := createTestTeam(t, db, "Beta", nil)

	_, err := svc.CreateManagement(testProjectInput(alpha.ID), "postgres", "go", "gin")
	require.NoError(t, err)
	_, err = svc.CreateMultimedia(testProjectInput(beta.ID), models.ToolFlash)
	require.NoError(t, err)

	management, err := svc.ByType(models.ProjectTypeManagement)
	require.NoError(t, err)
	assert.Len(t, management, 1)

	_, err = svc.ByType("research")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEarliestFinishingProject(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)

	none, err := svc.EarliestFinishing()
	require.NoError(t, err)
	assert.Nil(t, none)

	alpha := createTestTeam(t, db, "Alpha", nil)
	beta := createTestTeam(t, db, "Beta", nil)
	gamma := createTestTeam(t, db, "Gamma", nil)

	slow := testProjectInput(alpha.ID)
	slow.EstimatedTime = 20
	_, err = svc.Create(slow, models.ProjectTypeManagement)
	require.NoError(t, err)

	fast := testProjectInput(beta.ID)
	fast.EstimatedTime = 5
	first, err := svc.Create(fast, models.ProjectTypeManagement)
	require.NoError(t, err)

	// Same estimated time: the earlier stored row wins.
	tied := testProjectInput(gamma.ID)
	tied.EstimatedTime = 5
	_, err = svc.Create(tied, models.ProjectTypeMultimedia)
	require.NoError(t, err)

	earliest, err := svc.EarliestFinishing()
	require.NoError(t, err)
	require.NotNil(t, earliest)
	assert.Equal(t, first.ID, earliest.ID)
}
