package models

import "time"

type UserBusiness struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	AccountID            uint       `gorm:"column:account_id;not null;index" json:"account_id"`
	BusinessTypeDetailID uint       `gorm:"column:business_type_detail_id;not null;index" json:"business_type_detail_id"`
	CustomName           string     `gorm:"column:custom_name;size:100" json:"custom_name"`
	Worth                float64    `gorm:"type:decimal(20,2);default:0" json:"worth"`
	IncomePerHour        float64    `gorm:"column:income_per_hour;type:decimal(20,2);default:0" json:"income_per_hour"`
	Level                int        `gorm:"default:1" json:"level"`
	Status               string     `gorm:"type:varchar(20);default:'active'" json:"status"`
	LastTaxPaidAt        *time.Time `gorm:"column:last_tax_paid_at" json:"last_tax_paid_at,omitempty"`
	LastMaintenanceAt    *time.Time `gorm:"column:last_maintenance_at" json:"last_maintenance_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`

	// Relations
	Account            *Account            `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	BusinessTypeDetail *BusinessTypeDetail `gorm:"foreignKey:BusinessTypeDetailID" json:"business_type_detail,omitempty"`
}

func (UserBusiness) TableName() string {
	return "user_businesses"
}
