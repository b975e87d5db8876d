package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/zspldev/Webapp-NotesMate/internal/services"
	"github.com/zspldev/Webapp-NotesMate/pkg/utils"
)

// respondServiceError is the single place service errors become HTTP
// statuses: validation problems and conflicts are 400, missing referenced
// entities are 404, everything unexpected is 500 with the error text echoed.
// OTP validation failures are all 400 regardless of cause, matching the wire
// contract.
func respondServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		utils.BadRequest(c, vErr.Error())
		return
	}

	switch {
	case errors.Is(err, services.ErrEmployeeNotFound):
		utils.NotFound(c, "No employee found with this orgid and empid")
	case errors.Is(err, services.ErrEmployeeNoEmail):
		utils.BadRequest(c, "Employee email not found")
	case errors.Is(err, services.ErrEmployeeExists):
		utils.BadRequest(c, "Employee with this empid already exists in this organization")
	case errors.Is(err, services.ErrOrganizationNotFound):
		utils.NotFound(c, "Organization not found")
	case errors.Is(err, services.ErrClientExists):
		utils.BadRequest(c, "Client with this clientid already exists in this organization")
	case errors.Is(err, services.ErrClientNotFound):
		utils.NotFound(c, "Invalid clientid for this organization")
	case errors.Is(err, services.ErrOTPNotFound):
		utils.BadRequest(c, "OTP not found or expired")
	case errors.Is(err, services.ErrOTPExpired):
		utils.BadRequest(c, "OTP expired")
	case errors.Is(err, services.ErrOTPMismatch):
		utils.BadRequest(c, "Invalid OTP")
	case errors.Is(err, services.ErrNoteNotFound):
		utils.NotFound(c, "No matching note found to update")
	default:
		utils.InternalServerError(c, fmt.Sprintf("Unexpected error: %s", err.Error()))
	}
}
