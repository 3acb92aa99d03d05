package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/company-platform/internal/models"
	"github.com/staffdesk/company-platform/internal/services"
)

type LeaderHandler struct {
	leaderService *services.LeaderService
	teamService   *services.TeamService
}

func NewLeaderHandler(leaderService *services.LeaderService, teamService *services.TeamService) *LeaderHandler {
	return &LeaderHandler{
		leaderService: leaderService,
		teamService:   teamService,
	}
}

// CreateLeaderRequest is the body of POST /leaders.
type CreateLeaderRequest struct {
	EmployeeData    services.EmployeeInput `json:"employee_data" binding:"required"`
	YearsExperience int                    `json:"years_experience" binding:"required,min=1"`
	ProjectsLed     int                    `json:"projects_led" binding:"min=0"`
}

func (h *LeaderHandler) Create(c *gin.Context) {
	var req CreateLeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leader, err := h.leaderService.Create(req.EmployeeData, req.YearsExperience, req.ProjectsLed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, leader.ToResponse())
}

func (h *LeaderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	leader, err := h.leaderService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if leader == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Leader not found"})
		return
	}
	c.JSON(http.StatusOK, leader.ToResponse())
}

func (h *LeaderHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	leaders, err := h.leaderService.List(offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.LeaderResponse, 0, len(leaders))
	for i := range leaders {
		responses = append(responses, leaders[i].ToResponse())
	}
	c.JSON(http.StatusOK, responses)
}

// UpdateLeaderRequest carries field-level partial updates.
type UpdateLeaderRequest struct {
	YearsExperience *int `json:"years_experience"`
	ProjectsLed     *int `json:"projects_led"`
}

func (h *LeaderHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateLeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leader, err := h.leaderService.Update(id, req.YearsExperience, req.ProjectsLed)
	if err != nil {
		respondError(c, err)
		return
	}
	if leader == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Leader not found"})
		return
	}
	c.JSON(http.StatusOK, leader.ToResponse())
}

func (h *LeaderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.leaderService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Leader deleted"})
}

// Team returns the team led by this leader.
func (h *LeaderHandler) Team(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.ByLeader(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if team == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Leader has no team"})
		return
	}
	c.JSON(http.StatusOK, team)
}
