package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zspldev/Webapp-NotesMate/internal/services"
	"github.com/zspldev/Webapp-NotesMate/pkg/utils"
)

type SaveTranscriptionRequest struct {
	OrgID             uint   `json:"orgId"`
	EmpID             uint   `json:"empId"`
	ClientID          uint   `json:"clientId"`
	TranscriptionText string `json:"transcriptionText"`
	AudioData         string `json:"audioData"`
}

type FetchNotesRequest struct {
	OrgID        uint   `json:"orgId"`
	EmpID        uint   `json:"empId"`
	ClientID     uint   `json:"clientId"`
	SelectedDate string `json:"selectedDate"`
}

type UpdateNoteRequest struct {
	OrgID    uint   `json:"orgId"`
	EmpID    uint   `json:"empId"`
	ClientID uint   `json:"clientId"`
	DateTime string `json:"dateTime"`
	NewText  string `json:"newText"`
}

// NotesHandler exposes transcription storage and retrieval.
type NotesHandler struct {
	notes *services.NotesService
}

func NewNotesHandler(notes *services.NotesService) *NotesHandler {
	return &NotesHandler{notes: notes}
}

// SaveTranscription handles POST /api/save-transcription. Audio is optional
// base64; text is mandatory.
func (h *NotesHandler) SaveTranscription(c *gin.Context) {
	var req SaveTranscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "orgId, empId, clientId, and transcriptionText are required")
		return
	}

	var required utils.RequiredFields
	required.ID("orgId", req.OrgID).
		ID("empId", req.EmpID).
		ID("clientId", req.ClientID).
		String("transcriptionText", req.TranscriptionText)
	if missing := required.Missing(); missing != nil {
		respondServiceError(c, services.NewValidationError(missing...))
		return
	}

	err := h.notes.SaveTranscription(c.Request.Context(), req.OrgID, req.EmpID, req.ClientID, req.TranscriptionText, req.AudioData)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageJSON(c, "Transcription saved successfully")
}

// FetchNotes handles POST /api/fetch-notes. selectedDate, when present,
// narrows the result to one calendar date.
func (h *NotesHandler) FetchNotes(c *gin.Context) {
	var req FetchNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "orgId, empId, and clientId are required")
		return
	}

	var required utils.RequiredFields
	required.ID("orgId", req.OrgID).ID("empId", req.EmpID).ID("clientId", req.ClientID)
	if missing := required.Missing(); missing != nil {
		respondServiceError(c, services.NewValidationError(missing...))
		return
	}

	notes, err := h.notes.FetchNotes(c.Request.Context(), req.OrgID, req.EmpID, req.ClientID, req.SelectedDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"notes": notes})
}

// UpdateNote handles POST /api/update-note. The dateTime must reproduce the
// stored timestamp exactly, microseconds included.
func (h *NotesHandler) UpdateNote(c *gin.Context) {
	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "orgId, empId, clientId, dateTime, and newText are required")
		return
	}

	var required utils.RequiredFields
	required.ID("orgId", req.OrgID).
		ID("empId", req.EmpID).
		ID("clientId", req.ClientID).
		String("dateTime", req.DateTime).
		String("newText", req.NewText)
	if missing := required.Missing(); missing != nil {
		respondServiceError(c, services.NewValidationError(missing...))
		return
	}

	err := h.notes.UpdateNote(c.Request.Context(), req.OrgID, req.EmpID, req.ClientID, req.DateTime, req.NewText)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageJSON(c, "Transcription updated successfully")
}
