package services

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zspldev/Webapp-NotesMate/internal/models"
)

func setupNotes(t *testing.T) *NotesService {
	t.Helper()

	db := newTestDB(t)
	seedOrgAndEmployee(t, db, 1, 7, "jordan@acme.test")

	registry := NewRegistryService(db)
	client := models.Client{OrgID: 1, ClientName: "Acme", ClientEmail: "acme@client.test"}
	_, err := registry.RegisterClient(context.Background(), &client)
	require.NoError(t, err)

	return NewNotesService(db)
}

func TestSaveTranscriptionUnknownClient(t *testing.T) {
	notes := setupNotes(t)

	err := notes.SaveTranscription(context.Background(), 1, 7, 99, "hello", "")
	assert.ErrorIs(t, err, ErrClientNotFound)

	fetched, err := notes.FetchNotes(context.Background(), 1, 7, 99, "")
	require.NoError(t, err)
	assert.Empty(t, fetched, "Failed save must not write a row")
}

func TestSaveTranscriptionMalformedAudio(t *testing.T) {
	notes := setupNotes(t)

	err := notes.SaveTranscription(context.Background(), 1, 7, 1, "hello", "not-base64!!!")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"audioData"}, vErr.Fields)

	fetched, err := notes.FetchNotes(context.Background(), 1, 7, 1, "")
	require.NoError(t, err)
	assert.Empty(t, fetched)
}

func TestSaveAndFetchTextOnlyNote(t *testing.T) {
	notes := setupNotes(t)

	require.NoError(t, notes.SaveTranscription(context.Background(), 1, 7, 1, "hello", ""))

	fetched, err := notes.FetchNotes(context.Background(), 1, 7, 1, "")
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	assert.Equal(t, "hello", fetched[0].TextNotes)
	assert.Nil(t, fetched[0].AudioNotes, "Absent audio serializes as null")

	_, err = time.Parse(models.WireDateTimeLayout, fetched[0].DateTime)
	assert.NoError(t, err, "DateTime should use the microsecond wire layout")
}

func TestSaveAndFetchAudioRoundTrip(t *testing.T) {
	notes := setupNotes(t)

	audio := base64.StdEncoding.EncodeToString([]byte("pcm-bytes"))
	require.NoError(t, notes.SaveTranscription(context.Background(), 1, 7, 1, "with audio", audio))

	fetched, err := notes.FetchNotes(context.Background(), 1, 7, 1, "")
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	require.NotNil(t, fetched[0].AudioNotes)
	assert.Equal(t, audio, *fetched[0].AudioNotes)
}

func TestFetchNotesNewestFirst(t *testing.T) {
	notes := setupNotes(t)
	ctx := context.Background()

	older := models.Note{
		OrgID: 1, EmpID: 7, ClientID: 1,
		DateTime:  time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC),
		TextNotes: "older",
	}
	newer := models.Note{
		OrgID: 1, EmpID: 7, ClientID: 1,
		DateTime:  time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC),
		TextNotes: "newer",
	}
	require.NoError(t, notes.db.Create(&older).Error)
	require.NoError(t, notes.db.Create(&newer).Error)

	fetched, err := notes.FetchNotes(ctx, 1, 7, 1, "")
	require.NoError(t, err)
	require.Len(t, fetched, 2)
	assert.Equal(t, "newer", fetched[0].TextNotes)
	assert.Equal(t, "older", fetched[1].TextNotes)
}

func TestFetchNotesDateFilter(t *testing.T) {
	notes := setupNotes(t)
	ctx := context.Background()

	day1 := models.Note{
		OrgID: 1, EmpID: 7, ClientID: 1,
		DateTime:  time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC),
		TextNotes: "day one",
	}
	day2 := models.Note{
		OrgID: 1, EmpID: 7, ClientID: 1,
		DateTime:  time.Date(2026, 8, 27, 14, 15, 0, 0, time.UTC),
		TextNotes: "day two",
	}
	require.NoError(t, notes.db.Create(&day1).Error)
	require.NoError(t, notes.db.Create(&day2).Error)

	fetched, err := notes.FetchNotes(ctx, 1, 7, 1, "2026-08-27")
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	assert.Equal(t, "day two", fetched[0].TextNotes)
}

func TestUpdateNoteExactDateTimeMatch(t *testing.T) {
	notes := setupNotes(t)
	ctx := context.Background()

	audio := base64.StdEncoding.EncodeToString([]byte("pcm-bytes"))
	require.NoError(t, notes.SaveTranscription(ctx, 1, 7, 1, "original", audio))

	fetched, err := notes.FetchNotes(ctx, 1, 7, 1, "")
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	wireDT := fetched[0].DateTime

	require.NoError(t, notes.UpdateNote(ctx, 1, 7, 1, wireDT, "revised"))

	// Only textnotes changes; datetime and audio survive untouched.
	fetched, err = notes.FetchNotes(ctx, 1, 7, 1, "")
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	assert.Equal(t, "revised", fetched[0].TextNotes)
	assert.Equal(t, wireDT, fetched[0].DateTime)
	require.NotNil(t, fetched[0].AudioNotes)
	assert.Equal(t, audio, *fetched[0].AudioNotes)
}

func TestUpdateNoteMicrosecondMismatch(t *testing.T) {
	notes := setupNotes(t)
	ctx := context.Background()

	stored := models.Note{
		OrgID: 1, EmpID: 7, ClientID: 1,
		DateTime:  time.Date(2026, 8, 27, 14, 15, 9, 123456000, time.UTC),
		TextNotes: "original",
	}
	require.NoError(t, notes.db.Create(&stored).Error)

	// Same second, different microseconds: no match allowed.
	err := notes.UpdateNote(ctx, 1, 7, 1, "2026-08-27T14:15:09.123457", "revised")
	assert.ErrorIs(t, err, ErrNoteNotFound)

	fetched, err := notes.FetchNotes(ctx, 1, 7, 1, "")
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	assert.Equal(t, "original", fetched[0].TextNotes)

	require.NoError(t, notes.UpdateNote(ctx, 1, 7, 1, "2026-08-27T14:15:09.123456", "revised"))
}

func TestFetchNotesEmitsUTCDigitsForZonedTimestamps(t *testing.T) {
	notes := setupNotes(t)
	ctx := context.Background()

	// 14:15:09.123456 UTC expressed as 16:15 in a +02:00 zone. The wire
	// string must come out in UTC digits, not the stored wall clock.
	zoned := models.Note{
		OrgID: 1, EmpID: 7, ClientID: 1,
		DateTime:  time.Date(2026, 8, 27, 16, 15, 9, 123456000, time.FixedZone("CEST", 2*60*60)),
		TextNotes: "zoned",
	}
	require.NoError(t, notes.db.Create(&zoned).Error)

	fetched, err := notes.FetchNotes(ctx, 1, 7, 1, "")
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	assert.Equal(t, "2026-08-27T14:15:09.123456", fetched[0].DateTime)
}

func TestUpdateNoteMalformedDateTime(t *testing.T) {
	notes := setupNotes(t)

	err := notes.UpdateNote(context.Background(), 1, 7, 1, "27/08/2026 14:15", "revised")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"dateTime"}, vErr.Fields)
}
