package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zspldev/Webapp-NotesMate/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Should open in-memory database")

	err = db.AutoMigrate(
		&models.Organization{},
		&models.Employee{},
		&models.Client{},
		&models.Note{},
		&models.OTP{},
	)
	require.NoError(t, err, "Should migrate schema")

	return db
}

func seedOrgAndEmployee(t *testing.T, db *gorm.DB, orgID, empID uint, email string) {
	t.Helper()

	org := models.Organization{
		OrgID:     orgID,
		OrgName:   "Acme Corp",
		Shortname: "ACME",
		Address:   "1 Main St",
		Phone:     "555-0100",
		Email:     "info@acme.test",
	}
	require.NoError(t, db.Create(&org).Error)

	emp := models.Employee{
		OrgID:        orgID,
		EmpID:        empID,
		EmpName:      "Jordan Smith",
		EmpShortname: "JS",
		EmpPhone:     "555-0101",
		EmpEmail:     email,
	}
	require.NoError(t, db.Create(&emp).Error)
}

// fakeMailer records outbound mail instead of sending it.
type fakeMailer struct {
	configured bool
	failSend   bool
	sentTo     []string
	lastBody   string
}

func (m *fakeMailer) Configured() bool {
	return m.configured
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.failSend {
		return errAssert
	}
	m.sentTo = append(m.sentTo, to)
	m.lastBody = body
	return nil
}

var errAssert = &sendError{}

type sendError struct{}

func (e *sendError) Error() string { return "smtp unavailable" }
