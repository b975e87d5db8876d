package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zspldev/Webapp-NotesMate/internal/services"
	"github.com/zspldev/Webapp-NotesMate/pkg/utils"
)

type RequestOTPRequest struct {
	OrgID uint `json:"orgId"`
	EmpID uint `json:"empId"`
}

type ValidateOTPRequest struct {
	OrgID uint   `json:"orgId"`
	EmpID uint   `json:"empId"`
	OTP   string `json:"otp"`
}

// AuthHandler exposes the OTP issuance and validation endpoints.
type AuthHandler struct {
	otpService *services.OTPService
}

func NewAuthHandler(otpService *services.OTPService) *AuthHandler {
	return &AuthHandler{otpService: otpService}
}

// RequestOTP handles POST /api/request-otp. Email delivery failure still
// returns 200 with a fallback message; the code is persisted either way.
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "orgId and empId are required")
		return
	}

	var required utils.RequiredFields
	required.ID("orgId", req.OrgID).ID("empId", req.EmpID)
	if missing := required.Missing(); missing != nil {
		respondServiceError(c, services.NewValidationError(missing...))
		return
	}

	result, err := h.otpService.RequestOTP(c.Request.Context(), req.OrgID, req.EmpID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageJSON(c, result.Message)
}

// ValidateOTP handles POST /api/validate-otp. A matching code is consumed;
// the success body echoes the pair so the frontend can scope its session.
func (h *AuthHandler) ValidateOTP(c *gin.Context) {
	var req ValidateOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "orgId, empId, and otp are required")
		return
	}

	var required utils.RequiredFields
	required.ID("orgId", req.OrgID).ID("empId", req.EmpID).String("otp", req.OTP)
	if missing := required.Missing(); missing != nil {
		respondServiceError(c, services.NewValidationError(missing...))
		return
	}

	if err := h.otpService.ValidateOTP(c.Request.Context(), req.OrgID, req.EmpID, req.OTP); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message": "OTP validated successfully",
		"orgId":   req.OrgID,
		"empId":   req.EmpID,
	})
}
