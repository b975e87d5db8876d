package models

// Client belongs to exactly one organization. ClientID is assigned
// sequentially per organization (max existing + 1) by the registry service,
// so (orgid, clientid) forms the composite primary key.
type Client struct {
	OrgID           uint   `gorm:"column:orgid;primaryKey" json:"orgId"`
	ClientID        uint   `gorm:"column:clientid;primaryKey" json:"clientId"`
	ClientName      string `gorm:"column:clientname;type:varchar(255);not null" json:"clientName"`
	ClientShortname string `gorm:"column:clientshortname;type:varchar(100)" json:"clientShortname"`
	ClientPhone     string `gorm:"column:clientphone;type:varchar(50);default:NA" json:"clientPhone"`
	ClientEmail     string `gorm:"column:clientemail;type:varchar(255);not null" json:"clientEmail"`
}

func (c *Client) TableName() string {
	return "clients"
}
