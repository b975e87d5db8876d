package models

import (
	"fmt"
	"time"
)

// OTP is a pending one-time passcode for an (organization, employee) pair.
// One row per pair: a new request upserts over any unconsumed code, and the
// row is deleted on successful validation or on expiry detection.
type OTP struct {
	Key       string    `gorm:"column:key;primaryKey;type:varchar(100)" json:"key"`
	OTP       string    `gorm:"column:otp;type:varchar(10);not null" json:"otp"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
}

func (o *OTP) TableName() string {
	return "otps"
}

// OTPKey builds the storage key for an (organization, employee) pair.
func OTPKey(orgID, empID uint) string {
	return fmt.Sprintf("%d-%d", orgID, empID)
}
