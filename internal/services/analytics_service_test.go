package services

import (
	"testing"

	"github.com/staffdesk/company-platform/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSalaryLeader(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)

	// base 1000, 4 years experience, 2 projects led.
	leader := createTestLeader(t, db, "SAL1")

	salary, err := svc.CalculateSalary(leader.EmployeeID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0+300*4+500*2, salary)
	assert.Equal(t, 3200.0, salary)
}

func TestCalculateSalaryProgrammer(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)

	programmer := createTestProgrammer(t, db, "SAL2", "Go", "Rust")

	salary, err := svc.CalculateSalary(programmer.EmployeeID)
	require.NoError(t, err)
	assert.Equal(t, 1400.0, salary)

	// Derivation is pure: a second call gives the same answer.
	again, err := svc.CalculateSalary(programmer.EmployeeID)
	require.NoError(t, err)
	assert.Equal(t, salary, again)
}

func TestCalculateSalaryNoLanguages(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)

	programmer := createTestProgrammer(t, db, "SAL3")

	salary, err := svc.CalculateSalary(programmer.EmployeeID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, salary)
}

func TestCalculateSalaryNotFound(t *testing.T) {
	svc := NewAnalyticsService(newTestDB(t))

	_, err := svc.CalculateSalary(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCountProjectsByType(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)
	projects := NewProjectService(db)

	empty, err := svc.CountProjectsByType()
	require.NoError(t, err)
	assert.Empty(t, empty)

	for i, name := range []string{"Alpha", "Beta", "Gamma"} {
		team := createTestTeam(t, db, name, nil)
		projectType := models.ProjectTypeManagement
		if i == 2 {
			projectType = models.ProjectTypeMultimedia
		}
		_, err := projects.Create(testProjectInput(team.ID), projectType)
		require.NoError(t, err)
	}

	counts, err := svc.CountProjectsByType()
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, models.ProjectTypeManagement, counts[0].ProjectType)
	assert.EqualValues(t, 2, counts[0].Count)
	assert.Equal(t, models.ProjectTypeMultimedia, counts[1].ProjectType)
	assert.EqualValues(t, 1, counts[1].Count)
}

func TestHighestPaidEmployees(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)

	// 1000 + 2*200 = 1400
	createTestProgrammer(t, db, "HP1", "Go", "Rust")
	// 1000 + 4*300 + 2*500 = 3200
	leader := createTestLeader(t, db, "HP2")
	// 1000, ties with HP4 below
	plain := createTestProgrammer(t, db, "HP3")
	createTestProgrammer(t, db, "HP4")

	infos, err := svc.HighestPaidEmployees(10)
	require.NoError(t, err)
	require.Len(t, infos, 4)
	assert.Equal(t, leader.EmployeeID, infos[0].EmployeeID)
	assert.Equal(t, 3200.0, infos[0].TotalSalary)
	assert.Equal(t, 1400.0, infos[1].TotalSalary)

	// Equal salaries keep their id order.
	assert.Equal(t, plain.EmployeeID, infos[2].EmployeeID)

	top, err := svc.HighestPaidEmployees(1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, leader.EmployeeID, top[0].EmployeeID)

	_, err = svc.HighestPaidEmployees(0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProjectByProgrammerIdentity(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)

	_, err := svc.ProjectByProgrammerIdentity("NOBODY")
	assert.ErrorIs(t, err, ErrNotFound)

	programmer := createTestProgrammer(t, db, "PBI1", "Go")

	// No team yet.
	project, err := svc.ProjectByProgrammerIdentity("PBI1")
	require.NoError(t, err)
	assert.Nil(t, project)

	team := createTestTeam(t, db, "Alpha", nil)
	require.NoError(t, NewTeamService(db).AddMember(team.ID, programmer.EmployeeID))

	// Team without a project.
	project, err = svc.ProjectByProgrammerIdentity("PBI1")
	require.NoError(t, err)
	assert.Nil(t, project)

	created, err := NewProjectService(db).Create(testProjectInput(team.ID), models.ProjectTypeManagement)
	require.NoError(t, err)

	project, err = svc.ProjectByProgrammerIdentity("PBI1")
	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, created.ID, project.ID)
}

func TestProgrammersByFramework(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)
	teams := NewTeamService(db)

	_, err := svc.ProgrammersByFramework("")
	assert.ErrorIs(t, err, ErrValidation)

	alpha := createTestTeam(t, db, "Alpha", nil)
	beta := createTestTeam(t, db, "Beta", nil)

	inTeam := createTestProgrammer(t, db, "PF1", "Go")
	require.NoError(t, teams.AddMember(alpha.ID, inTeam.EmployeeID))
	other := createTestProgrammer(t, db, "PF2", "Python")
	require.NoError(t, teams.AddMember(beta.ID, other.EmployeeID))

	projects := NewProjectService(db)
	_, err = projects.CreateManagement(testProjectInput(alpha.ID), "postgres", "go", "gin")
	require.NoError(t, err)
	_, err = projects.CreateManagement(testProjectInput(beta.ID), "mysql", "python", "django")
	require.NoError(t, err)

	found, err := svc.ProgrammersByFramework("gin")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, inTeam.EmployeeID, found[0].EmployeeID)
	require.NotNil(t, found[0].Employee)
	assert.Equal(t, "PF1", found[0].Employee.IdentityCard)

	none, err := svc.ProgrammersByFramework("rails")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProgrammersByProject(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)
	teams := NewTeamService(db)

	_, err := svc.ProgrammersByProject(999)
	assert.ErrorIs(t, err, ErrNotFound)

	team := createTestTeam(t, db, "Alpha", nil)
	first := createTestProgrammer(t, db, "PP1", "Go")
	second := createTestProgrammer(t, db, "PP2", "Rust")
	require.NoError(t, teams.AddMember(team.ID, first.EmployeeID))
	require.NoError(t, teams.AddMember(team.ID, second.EmployeeID))

	project, err := NewProjectService(db).Create(testProjectInput(team.ID), models.ProjectTypeManagement)
	require.NoError(t, err)

	programmers, err := svc.ProgrammersByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, programmers, 2)
	assert.Equal(t, first.EmployeeID, programmers[0].EmployeeID)
	assert.Equal(t, second.EmployeeID, programmers[1].EmployeeID)
}
