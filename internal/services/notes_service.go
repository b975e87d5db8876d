package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/zspldev/Webapp-NotesMate/internal/models"
)

// NotesService stores and retrieves meeting transcriptions. Notes are
// append-mostly: creation and a text-only update matched on the exact stored
// timestamp, never deletion.
type NotesService struct {
	db *gorm.DB
}

// NoteView is the fetch-notes wire projection. AudioNotes is nil when the
// note has no audio, which serializes as JSON null.
type NoteView struct {
	DateTime   string  `json:"DateTime"`
	TextNotes  string  `json:"TextNotes"`
	AudioNotes *string `json:"AudioNotes"`
}

func NewNotesService(db *gorm.DB) *NotesService {
	return &NotesService{db: db}
}

// SaveTranscription decodes the optional base64 audio payload and inserts a
// new note with a fresh meeting id. The client must already be registered
// under the organization.
func (s *NotesService) SaveTranscription(ctx context.Context, orgID, empID, clientID uint, text, audioBase64 string) error {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("orgid = ? AND clientid = ?", orgID, clientID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to look up client: %w", err)
	}
	if count == 0 {
		return ErrClientNotFound
	}

	var audio []byte
	if audioBase64 != "" {
		audio, err = base64.StdEncoding.DecodeString(audioBase64)
		if err != nil {
			return NewValidationError("audioData")
		}
	}

	note := models.Note{
		OrgID:      orgID,
		EmpID:      empID,
		ClientID:   clientID,
		DateTime:   time.Now().UTC().Truncate(time.Microsecond),
		AudioNotes: audio,
		TextNotes:  text,
	}

	if err := s.db.WithContext(ctx).Create(&note).Error; err != nil {
		return fmt.Errorf("failed to save transcription: %w", err)
	}
	return nil
}

// FetchNotes returns the notes for an (org, employee, client) triple,
// newest first, optionally narrowed to one calendar date (YYYY-MM-DD).
// Audio comes back base64-encoded.
func (s *NotesService) FetchNotes(ctx context.Context, orgID, empID, clientID uint, selectedDate string) ([]NoteView, error) {
	query := s.db.WithContext(ctx).
		Model(&models.Note{}).
		Where("orgid = ? AND empid = ? AND clientid = ?", orgID, empID, clientID)

	if selectedDate != "" {
		query = query.Where("DATE(datetime) = ?", selectedDate)
	}

	var notes []models.Note
	if err := query.Order("datetime DESC").Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch notes: %w", err)
	}

	views := make([]NoteView, 0, len(notes))
	for _, note := range notes {
		// Drivers may hand back timestamps in the session zone. The wire
		// string must carry UTC digits or the update-by-datetime match
		// breaks.
		view := NoteView{
			DateTime:  note.DateTime.UTC().Format(models.WireDateTimeLayout),
			TextNotes: note.TextNotes,
		}
		if len(note.AudioNotes) > 0 {
			encoded := base64.StdEncoding.EncodeToString(note.AudioNotes)
			view.AudioNotes = &encoded
		}
		views = append(views, view)
	}
	return views, nil
}

// UpdateNote replaces the text of the note matching the tuple exactly. The
// datetime must reproduce the stored value to the microsecond; anything less
// matches zero rows and reports not-found. Audio and datetime are never
// touched.
func (s *NotesService) UpdateNote(ctx context.Context, orgID, empID, clientID uint, dateTime, newText string) error {
	parsed, err := time.Parse(models.WireDateTimeLayout, dateTime)
	if err != nil {
		return NewValidationError("dateTime")
	}

	result := s.db.WithContext(ctx).
		Model(&models.Note{}).
		Where("orgid = ? AND empid = ? AND clientid = ? AND datetime = ?", orgID, empID, clientID, parsed).
		Update("textnotes", newText)
	if result.Error != nil {
		return fmt.Errorf("failed to update note: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}
