package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/company-platform/internal/models"
	"github.com/staffdesk/company-platform/internal/services"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
	projectService   *services.ProjectService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService, projectService *services.ProjectService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		projectService:   projectService,
	}
}

func (h *AnalyticsHandler) EarliestProject(c *gin.Context) {
	project, err := h.projectService.EarliestFinishing()
	if err != nil {
		respondError(c, err)
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No projects found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *AnalyticsHandler) ProjectsCount(c *gin.Context) {
	counts, err := h.analyticsService.CountProjectsByType()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *AnalyticsHandler) HighestPaidEmployees(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	infos, eErr := h.analyticsService.HighestPaidEmployees(limit)
	if eErr != nil {
		respondError(c, eErr)
		return
	}
	c.JSON(http.StatusOK, infos)
}

func (h *AnalyticsHandler) Salary(c *gin.Context) {
	id, ok := parseID(c, "employee_id")
	if !ok {
		return
	}

	total, err := h.analyticsService.CalculateSalary(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"employee_id":  id,
		"total_salary": total,
	})
}

func (h *AnalyticsHandler) ProgrammersByFramework(c *gin.Context) {
	programmers, err := h.analyticsService.ProgrammersByFramework(c.Param("framework"))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.ProgrammerResponse, 0, len(programmers))
	for i := range programmers {
		responses = append(responses, programmers[i].ToResponse())
	}
	c.JSON(http.StatusOK, responses)
}

func (h *AnalyticsHandler) ProgrammersByProject(c *gin.Context) {
	id, ok := parseID(c, "project_id")
	if !ok {
		return
	}

	programmers, err := h.analyticsService.ProgrammersByProject(id)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.ProgrammerResponse, 0, len(programmers))
	for i := range programmers {
		responses = append(responses, programmers[i].ToResponse())
	}
	c.JSON(http.StatusOK, responses)
}

func (h *AnalyticsHandler) ProjectByProgrammerIdentity(c *gin.Context) {
	project, err := h.analyticsService.ProjectByProgrammerIdentity(c.Param("identity_card"))
	if err != nil {
		respondError(c, err)
		return
	}
	if project == nil {
		c.JSON(http.StatusOK, gin.H{"project": nil, "message": "Programmer has no assigned project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}
