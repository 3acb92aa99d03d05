package services

import (
	"os"
	"strings"
	"testing"

	"github.com/staffdesk/company-platform/internal/config"
	"github.com/staffdesk/company-platform/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportBuild(t *testing.T) {
	db := newTestDB(t)

	leader := createTestLeader(t, db, "RPT1")
	leaderID := leader.EmployeeID
	team := createTestTeam(t, db, "Alpha", &leaderID)

	programmer := createTestProgrammer(t, db, "RPT2", "Go")
	require.NoError(t, NewTeamService(db).AddMember(team.ID, programmer.EmployeeID))

	details, err := NewProjectService(db).CreateManagement(testProjectInput(team.ID), "postgres", "go", "gin")
	require.NoError(t, err)

	svc := NewReportService(db, &config.Config{})
	report, err := svc.Build(details.Project.ID)
	require.NoError(t, err)

	assert.Equal(t, "Alpha", report.TeamName)
	assert.Equal(t, "Employee RPT1", report.LeaderName)
	assert.Equal(t, []string{"Employee RPT2"}, report.MemberNames)
	require.NotNil(t, report.Project.ManagementDetails)
}

func TestReportBuildNotFound(t *testing.T) {
	svc := NewReportService(newTestDB(t), &config.Config{})

	_, err := svc.Build(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFormatProjectReportDeterministic(t *testing.T) {
	report := &ProjectReport{
		Project: models.ProjectWithDetails{
			Project: models.Project{
				Name:          "Billing",
				Description:   "Invoicing backend",
				Type:          models.ProjectTypeManagement,
				EstimatedTime: 12,
				Price:         50000,
			},
			ManagementDetails: &models.ManagementProject{
				DatabaseType:        "postgres",
				ProgrammingLanguage: "go",
				Framework:           "gin",
			},
		},
		TeamName:    "Alpha",
		LeaderName:  "Ana",
		MemberNames: []string{"Bob", "Carol"},
	}

	first := FormatProjectReport(report)
	second := FormatProjectReport(report)
	assert.Equal(t, first, second)

	assert.True(t, strings.HasPrefix(first, "PROJECT REPORT\n"))
	assert.Contains(t, first, "Name:           Billing\n")
	assert.Contains(t, first, "Price:          50000.00\n")
	assert.Contains(t, first, "Framework: gin\n")
	assert.Contains(t, first, "Team:   Alpha\n")
	assert.Contains(t, first, "  - Bob\n")
	assert.Contains(t, first, "  - Carol\n")
}

func TestFormatProjectReportPlaceholders(t *testing.T) {
	report := &ProjectReport{
		Project: models.ProjectWithDetails{
			Project: models.Project{
				Name: "Orphan",
				Type: models.ProjectTypeMultimedia,
			},
			MultimediaDetails: &models.MultimediaProject{
				DevelopmentTool: models.ToolFlash,
			},
		},
		MemberNames: []string{},
	}

	out := FormatProjectReport(report)
	assert.Contains(t, out, "Team:   (unassigned)\n")
	assert.Contains(t, out, "Leader: (no leader)\n")
	assert.Contains(t, out, "  (none)\n")
	assert.Contains(t, out, "Development tool: flash\n")
}

func TestExportPDF(t *testing.T) {
	db := newTestDB(t)

	team := createTestTeam(t, db, "Alpha", nil)
	details, err := NewProjectService(db).CreateMultimedia(testProjectInput(team.ID), models.ToolDirector)
	require.NoError(t, err)

	cfg := &config.Config{ExportDir: t.TempDir()}
	svc := NewReportService(db, cfg)

	report, err := svc.Build(details.Project.ID)
	require.NoError(t, err)

	path, err := svc.ExportPDF(report)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
	assert.True(t, strings.HasSuffix(path, ".pdf"))
}
