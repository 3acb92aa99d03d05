package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/company-platform/internal/models"
	"github.com/staffdesk/company-platform/internal/services"
)

type ProgrammerHandler struct {
	programmerService *services.ProgrammerService
}

func NewProgrammerHandler(programmerService *services.ProgrammerService) *ProgrammerHandler {
	return &ProgrammerHandler{programmerService: programmerService}
}

// CreateProgrammerRequest is the body of POST /programmers.
type CreateProgrammerRequest struct {
	EmployeeData services.EmployeeInput    `json:"employee_data" binding:"required"`
	Category     models.ProgrammerCategory `json:"category" binding:"required,oneof=A B C"`
	Languages    []string                  `json:"languages"`
}

func (h *ProgrammerHandler) Create(c *gin.Context) {
	var req CreateProgrammerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	programmer, err := h.programmerService.Create(req.EmployeeData, req.Category, req.Languages)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, programmer.ToResponse())
}

func (h *ProgrammerHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	programmer, err := h.programmerService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if programmer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Programmer not found"})
		return
	}
	c.JSON(http.StatusOK, programmer.ToResponse())
}

func (h *ProgrammerHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	programmers, err := h.programmerService.List(offset, limit)
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

// UpdateProgrammerRequest carries optional category and a full replacement
// language set. A present empty languages array clears the set.
type UpdateProgrammerRequest struct {
	Category  *models.ProgrammerCategory `json:"category"`
	Languages *[]string                  `json:"languages"`
}

func (h *ProgrammerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateProgrammerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	programmer, err := h.programmerService.Update(id, req.Category, req.Languages)
	if err != nil {
		respondError(c, err)
		return
	}
	if programmer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Programmer not found"})
		return
	}
	c.JSON(http.StatusOK, programmer.ToResponse())
}

func (h *ProgrammerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.programmerService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Programmer deleted"})
}

func (h *ProgrammerHandler) Languages(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	languages, err := h.programmerService.Languages(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"languages": languages})
}

// LanguageRequest is the body of POST /programmers/:id/languages.
type LanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

func (h *ProgrammerHandler) AddLanguage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.programmerService.AddLanguage(id, req.Language); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Language added"})
}

func (h *ProgrammerHandler) RemoveLanguage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.programmerService.RemoveLanguage(id, c.Param("language")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Language removed"})
}
