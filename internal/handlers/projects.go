package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/company-platform/internal/models"
	"github.com/staffdesk/company-platform/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	reportService  *services.ReportService
}

func NewProjectHandler(projectService *services.ProjectService, reportService *services.ReportService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		reportService:  reportService,
	}
}

// CreateProjectRequest is the body of POST /projects.
type CreateProjectRequest struct {
	services.ProjectInput
	Type models.ProjectType `json:"type" binding:"required,oneof=management multimedia"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Create(req.ProjectInput, req.Type)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// CreateManagementRequest is the body of POST /projects/management.
type CreateManagementRequest struct {
	ProjectData         services.ProjectInput `json:"project_data" binding:"required"`
	DatabaseType        string                `json:"database_type" binding:"required"`
	ProgrammingLanguage string                `json:"programming_language" binding:"required"`
	Framework           string                `json:"framework" binding:"required"`
}

func (h *ProjectHandler) CreateManagement(c *gin.Context) {
	var req CreateManagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.CreateManagement(
		req.ProjectData, req.DatabaseType, req.ProgrammingLanguage, req.Framework)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// CreateMultimediaRequest is the body of POST /projects/multimedia.
type CreateMultimediaRequest struct {
	ProjectData     services.ProjectInput  `json:"project_data" binding:"required"`
	DevelopmentTool models.DevelopmentTool `json:"development_tool" binding:"required,oneof=flash director"`
}

func (h *ProjectHandler) CreateMultimedia(c *gin.Context) {
	var req CreateMultimediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.CreateMultimedia(req.ProjectData, req.DevelopmentTool)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// List returns projects; a type query filters by project type.
func (h *ProjectHandler) List(c *gin.Context) {
	if projectType := c.Query("type"); projectType != "" {
		projects, err := h.projectService.ByType(models.ProjectType(projectType))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, projects)
		return
	}

	offset, limit := pagination(c)

	projects, err := h.projectService.List(offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req services.ProjectUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateManagementRequest carries field-level partial updates.
type UpdateManagementRequest struct {
	DatabaseType        *string `json:"database_type"`
	ProgrammingLanguage *string `json:"programming_language"`
	Framework           *string `json:"framework"`
}

func (h *ProjectHandler) UpdateManagement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateManagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := h.projectService.UpdateManagement(id, req.DatabaseType, req.ProgrammingLanguage, req.Framework)
	if err != nil {
		respondError(c, err)
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Management project not found"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateMultimediaRequest carries the optional development tool change.
type UpdateMultimediaRequest struct {
	DevelopmentTool *models.DevelopmentTool `json:"development_tool"`
}

func (h *ProjectHandler) UpdateMultimedia(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateMultimediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := h.projectService.UpdateMultimedia(id, req.DevelopmentTool)
	if err != nil {
		respondError(c, err)
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Multimedia project not found"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

func (h *ProjectHandler) WithDetails(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	details, err := h.projectService.WithDetails(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if details == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, details)
}

// Report renders the plain-text project report.
func (h *ProjectHandler) Report(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	report, err := h.reportService.Build(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusOK, services.FormatProjectReport(report))
}

// ReportPDF renders the report as a PDF and serves the file.
func (h *ProjectHandler) ReportPDF(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	report, err := h.reportService.Build(id)
	if err != nil {
		respondError(c, err)
		return
	}

	path, err := h.reportService.ExportPDF(report)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, "project_report.pdf")
}
