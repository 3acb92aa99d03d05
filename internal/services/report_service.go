package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/staffdesk/company-platform/internal/config"
	"github.com/staffdesk/company-platform/internal/models"
	"gorm.io/gorm"
)

// ReportService assembles and renders project reports, as plain text and
// as downloadable PDF files.
type ReportService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewReportService(db *gorm.DB, cfg *config.Config) *ReportService {
	return &ReportService{db: db, cfg: cfg}
}

// ProjectReport is the fully composed input of the report renderers.
type ProjectReport struct {
	Project     models.ProjectWithDetails `json:"project"`
	TeamName    string                    `json:"team_name"`
	LeaderName  string                    `json:"leader_name"`
	MemberNames []string                  `json:"member_names"`
}

// Build gathers the project, its detail block, the assigned team, the
// leader name and the member names.
func (s *ReportService) Build(projectID uint) (*ProjectReport, error) {
	projects := NewProjectService(s.db)
	details, err := projects.WithDetails(projectID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, notFoundf("project %d not found", projectID)
	}

	report := &ProjectReport{
		Project:     *details,
		MemberNames: []string{},
	}

	if details.Project.TeamID != nil {
		teams := NewTeamService(s.db)
		team, err := teams.Get(*details.Project.TeamID)
		if err != nil {
			return nil, err
		}
		if team != nil {
			report.TeamName = team.Name
			if team.Leader != nil && team.Leader.Employee != nil {
				report.LeaderName = team.Leader.Employee.Name
			}
			members, err := teams.Members(team.ID)
			if err != nil {
				return nil, err
			}
			for _, m := range members {
				report.MemberNames = append(report.MemberNames, m.Name)
			}
		}
	}
	return report, nil
}

// FormatProjectReport renders the report as plain text. The output is a
// pure function of the report: the same state always yields the same
// bytes.
func FormatProjectReport(r *ProjectReport) string {
	var b strings.Builder

	p := r.Project.Project
	fmt.Fprintf(&b, "PROJECT REPORT\n")
	fmt.Fprintf(&b, "==============\n\n")
	fmt.Fprintf(&b, "Name:           %s\n", p.Name)
	fmt.Fprintf(&b, "Description:    %s\n", p.Description)
	fmt.Fprintf(&b, "Type:           %s\n", p.Type)
	fmt.Fprintf(&b, "Estimated time: %d\n", p.EstimatedTime)
	fmt.Fprintf(&b, "Price:          %.2f\n", p.Price)

	switch {
	case r.Project.ManagementDetails != nil:
		d := r.Project.ManagementDetails
		fmt.Fprintf(&b, "\nManagement details\n")
		fmt.Fprintf(&b, "  Database:  %s\n", d.DatabaseType)
		fmt.Fprintf(&b, "  Language:  %s\n", d.ProgrammingLanguage)
		fmt.Fprintf(&b, "  Framework: %s\n", d.Framework)
	case r.Project.MultimediaDetails != nil:
		d := r.Project.MultimediaDetails
		fmt.Fprintf(&b, "\nMultimedia details\n")
		fmt.Fprintf(&b, "  Development tool: %s\n", d.DevelopmentTool)
	}

	teamName := r.TeamName
	if teamName == "" {
		teamName = "(unassigned)"
	}
	leaderName := r.LeaderName
	if leaderName == "" {
		leaderName = "(no leader)"
	}
	fmt.Fprintf(&b, "\nTeam:   %s\n", teamName)
	fmt.Fprintf(&b, "Leader: %s\n", leaderName)

	fmt.Fprintf(&b, "\nMembers:\n")
	if len(r.MemberNames) == 0 {
		fmt.Fprintf(&b, "  (none)\n")
	}
	for _, name := range r.MemberNames {
		fmt.Fprintf(&b, "  - %s\n", name)
	}

	return b.String()
}

// ExportPDF renders the report into a PDF file under the export directory
// and returns the file path.
func (s *ReportService) ExportPDF(r *ProjectReport) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(190, 10, "PROJECT REPORT", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(190, 6, FormatProjectReport(r), "", "", false)

	if err := os.MkdirAll(s.cfg.ExportDir, 0755); err != nil {
		return "", internalf("creating export directory: %v", err)
	}

	filename := fmt.Sprintf("project_%d_%s.pdf", r.Project.Project.ID, uuid.New().String()[:8])
	filePath := filepath.Join(s.cfg.ExportDir, filename)

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", internalf("writing pdf: %v", err)
	}
	return filePath, nil
}
