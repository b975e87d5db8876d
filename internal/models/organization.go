package models

// Organization is the tenant root owning employees and clients. OrgID is
// caller-assigned at registration, not generated. Organizations are created
// once and never updated or deleted.
type Organization struct {
	OrgID     uint   `gorm:"column:orgid;primaryKey" json:"orgId"`
	OrgName   string `gorm:"column:orgname;type:varchar(255);not null" json:"orgName"`
	Shortname string `gorm:"column:shortname;type:varchar(100);not null" json:"shortname"`
	Address   string `gorm:"column:address;type:text;not null" json:"address"`
	Phone     string `gorm:"column:phone;type:varchar(50);not null" json:"orgPhone"`
	Email     string `gorm:"column:email;type:varchar(255);not null" json:"orgEmail"`
}

func (o *Organization) TableName() string {
	return "organizations"
}
