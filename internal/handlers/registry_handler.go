package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zspldev/Webapp-NotesMate/internal/models"
	"github.com/zspldev/Webapp-NotesMate/internal/services"
	"github.com/zspldev/Webapp-NotesMate/pkg/utils"
)

type RegisterRequest struct {
	OrgID        uint   `json:"orgId"`
	OrgName      string `json:"orgName"`
	Shortname    string `json:"shortname"`
	Address      string `json:"address"`
	OrgPhone     string `json:"orgPhone"`
	OrgEmail     string `json:"orgEmail"`
	EmpID        uint   `json:"empId"`
	EmpName      string `json:"empName"`
	EmpShortname string `json:"empShortname"`
	EmpPhone     string `json:"empPhone"`
	EmpEmail     string `json:"empEmail"`
}

type RegisterClientRequest struct {
	OrgID           uint   `json:"orgId"`
	ClientName      string `json:"clientName"`
	ClientShortname string `json:"clientShortname"`
	ClientPhone     string `json:"clientPhone"`
	ClientEmail     string `json:"clientEmail"`
}

type FetchClientsRequest struct {
	OrgID uint `json:"orgId"`
}

// RegistryHandler exposes organization, employee and client registration.
type RegistryHandler struct {
	registry *services.RegistryService
}

func NewRegistryHandler(registry *services.RegistryService) *RegistryHandler {
	return &RegistryHandler{registry: registry}
}

// Register handles POST /api/register. All eleven fields are mandatory.
// Registration is idempotent on the organization but the employee must be
// new; both inserts share one transaction.
func (h *RegistryHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "All fields are required")
		return
	}

	var required utils.RequiredFields
	required.ID("orgId", req.OrgID).
		String("orgName", req.OrgName).
		String("shortname", req.Shortname).
		String("address", req.Address).
		String("orgPhone", req.OrgPhone).
		Email("orgEmail", req.OrgEmail).
		ID("empId", req.EmpID).
		String("empName", req.EmpName).
		String("empShortname", req.EmpShortname).
		String("empPhone", req.EmpPhone).
		Email("empEmail", req.EmpEmail)
	if missing := required.Missing(); missing != nil {
		respondServiceError(c, services.NewValidationError(missing...))
		return
	}

	org := models.Organization{
		OrgID:     req.OrgID,
		OrgName:   req.OrgName,
		Shortname: req.Shortname,
		Address:   req.Address,
		Phone:     req.OrgPhone,
		Email:     req.OrgEmail,
	}
	emp := models.Employee{
		OrgID:        req.OrgID,
		EmpID:        req.EmpID,
		EmpName:      req.EmpName,
		EmpShortname: req.EmpShortname,
		EmpPhone:     req.EmpPhone,
		EmpEmail:     req.EmpEmail,
	}

	if err := h.registry.RegisterOrganizationAndEmployee(c.Request.Context(), &org, &emp); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageJSON(c, "Registration successful")
}

// RegisterClient handles POST /api/register-client and returns the assigned
// per-organization client id.
func (h *RegistryHandler) RegisterClient(c *gin.Context) {
	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "orgId, clientName, and clientEmail are required")
		return
	}

	var required utils.RequiredFields
	required.ID("orgId", req.OrgID).
		String("clientName", req.ClientName).
		Email("clientEmail", req.ClientEmail)
	if missing := required.Missing(); missing != nil {
		respondServiceError(c, services.NewValidationError(missing...))
		return
	}

	client := models.Client{
		OrgID:           req.OrgID,
		ClientName:      req.ClientName,
		ClientShortname: req.ClientShortname,
		ClientPhone:     req.ClientPhone,
		ClientEmail:     req.ClientEmail,
	}

	clientID, err := h.registry.RegisterClient(c.Request.Context(), &client)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message":  "Client registered successfully",
		"clientId": clientID,
	})
}

// FetchClients handles POST /api/fetch-clients.
func (h *RegistryHandler) FetchClients(c *gin.Context) {
	var req FetchClientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "orgId is required")
		return
	}

	var required utils.RequiredFields
	required.ID("orgId", req.OrgID)
	if missing := required.Missing(); missing != nil {
		respondServiceError(c, services.NewValidationError(missing...))
		return
	}

	clients, err := h.registry.FetchClients(c.Request.Context(), req.OrgID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"clients": clients})
}
