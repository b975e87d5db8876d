package models

import "time"

// Note is a meeting transcription owned by an (organization, employee,
// client) triple. MeetingID is sequence-generated and globally unique.
// DateTime doubles as the per-note identifier for updates: callers must
// supply the stored value exactly, microseconds included, so it is always
// persisted truncated to microsecond precision (the wire format carries no
// finer resolution).
type Note struct {
	MeetingID  uint64    `gorm:"column:meetingid;primaryKey;autoIncrement" json:"meetingId"`
	OrgID      uint      `gorm:"column:orgid;not null;index" json:"orgId"`
	EmpID      uint      `gorm:"column:empid;not null" json:"empId"`
	ClientID   uint      `gorm:"column:clientid;not null" json:"clientId"`
	DateTime   time.Time `gorm:"column:datetime;not null" json:"dateTime"`
	AudioNotes []byte    `gorm:"column:audionotes" json:"-"`
	TextNotes  string    `gorm:"column:textnotes;type:text;not null" json:"textNotes"`
}

func (n *Note) TableName() string {
	return "notes"
}

// WireDateTimeLayout is the ISO-like microsecond-precision format used on
// the wire for note timestamps, both on output and as UpdateNote's exact
// match key.
const WireDateTimeLayout = "2006-01-02T15:04:05.000000"
