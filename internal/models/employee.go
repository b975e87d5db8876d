package models

// Employee belongs to exactly one organization; the (orgid, empid) pair is
// the composite primary key. EmpID is caller-assigned.
type Employee struct {
	OrgID        uint   `gorm:"column:orgid;primaryKey" json:"orgId"`
	EmpID        uint   `gorm:"column:empid;primaryKey" json:"empId"`
	EmpName      string `gorm:"column:empname;type:varchar(255);not null" json:"empName"`
	EmpShortname string `gorm:"column:empshortname;type:varchar(100);not null" json:"empShortname"`
	EmpPhone     string `gorm:"column:empphone;type:varchar(50);not null" json:"empPhone"`
	EmpEmail     string `gorm:"column:empemail;type:varchar(255);not null" json:"empEmail"`
}

func (e *Employee) TableName() string {
	return "employees"
}
