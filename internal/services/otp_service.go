package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zspldev/Webapp-NotesMate/internal/models"
	"github.com/zspldev/Webapp-NotesMate/pkg/utils"
)

// Issuance result messages, surfaced verbatim to the caller so the frontend
// can tell delivered codes from log-fallback ones.
const (
	MsgOTPSent            = "OTP sent to your registered email address"
	MsgOTPMailFailed      = "Failed to send OTP via email. Check the server logs for the OTP."
	MsgOTPMailUnavailable = "Email service not configured. Check the server logs for the OTP."
)

// OTPService issues and validates short-lived numeric passcodes keyed by
// (organization, employee). Codes are 4-digit uniform random draws; they are
// not a cryptographic credential and collisions across employees are fine
// since each code is scoped to its own key.
type OTPService struct {
	db     *gorm.DB
	mailer Mailer
	ttl    time.Duration
}

// IssueResult reports a persisted OTP and whether email delivery worked.
type IssueResult struct {
	Message   string
	Delivered bool
}

func NewOTPService(db *gorm.DB, mailer Mailer, ttl time.Duration) *OTPService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &OTPService{db: db, mailer: mailer, ttl: ttl}
}

// RequestOTP generates a fresh code for the employee, upserting over any
// unconsumed previous one, and attempts email delivery. Delivery failure is
// deliberately non-fatal: the code is already persisted, so issuance reports
// a degraded success instead of blocking login on SMTP problems.
func (s *OTPService) RequestOTP(ctx context.Context, orgID, empID uint) (*IssueResult, error) {
	var employee models.Employee
	err := s.db.WithContext(ctx).
		Where("orgid = ? AND empid = ?", orgID, empID).
		First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}
	if employee.EmpEmail == "" {
		return nil, ErrEmployeeNoEmail
	}

	code := fmt.Sprintf("%d", 1000+rand.Intn(9000))
	record := models.OTP{
		Key:       models.OTPKey(orgID, empID),
		OTP:       code,
		CreatedAt: time.Now().UTC(),
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"otp", "created_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	logger := utils.GetLogger()
	logger.Info("Generated OTP", utils.LogFields{
		"key": record.Key,
		"otp": code,
	})

	if s.mailer == nil || !s.mailer.Configured() {
		return &IssueResult{Message: MsgOTPMailUnavailable}, nil
	}

	subject := "NotesMate OTP Verification"
	body := fmt.Sprintf("Your NotesMate OTP is: %s", code)
	if err := s.mailer.Send(employee.EmpEmail, subject, body); err != nil {
		logger.Warn("OTP email delivery failed", utils.LogFields{
			"key":   record.Key,
			"email": employee.EmpEmail,
			"error": err.Error(),
		})
		return &IssueResult{Message: MsgOTPMailFailed}, nil
	}

	return &IssueResult{Message: MsgOTPSent, Delivered: true}, nil
}

// ValidateOTP checks a submitted code against the pending record for the
// key. Expired records are deleted on detection, so a retry after expiry
// reports not-found rather than expired. A mismatched code leaves the record
// in place for retry; a matching one consumes it, making every code
// single-use.
func (s *OTPService) ValidateOTP(ctx context.Context, orgID, empID uint, submitted string) error {
	key := models.OTPKey(orgID, empID)

	var record models.OTP
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOTPNotFound
		}
		return fmt.Errorf("failed to look up OTP: %w", err)
	}

	if time.Now().UTC().Sub(record.CreatedAt) > s.ttl {
		if err := s.deleteOTP(ctx, key); err != nil {
			return err
		}
		return ErrOTPExpired
	}

	if record.OTP != submitted {
		return ErrOTPMismatch
	}

	return s.deleteOTP(ctx, key)
}

func (s *OTPService) deleteOTP(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&models.OTP{}).Error; err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}
