package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/company-platform/internal/models"
	"github.com/staffdesk/company-platform/internal/services"
)

type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// CreateEmployeeRequest is the body of POST /employees.
type CreateEmployeeRequest struct {
	services.EmployeeInput
	Type models.EmployeeType `json:"type" binding:"required,oneof=programmer leader"`
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.employeeService.Create(req.EmployeeInput, req.Type)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	employee, err := h.employeeService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if employee == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	c.JSON(http.StatusOK, employee)
}

// List returns employees; an identity_card query narrows the result to
// that single employee.
func (h *EmployeeHandler) List(c *gin.Context) {
	if identityCard := c.Query("identity_card"); identityCard != "" {
		employee, err := h.employeeService.GetByIdentityCard(identityCard)
		if err != nil {
			respondError(c, err)
			return
		}
		if employee == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.JSON(http.StatusOK, []models.Employee{*employee})
		return
	}

	offset, limit := pagination(c)

	employees, err := h.employeeService.List(offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req services.EmployeeUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.employeeService.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	if employee == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.employeeService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}
