package models

import "time"

type UserInvestment struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	AccountID              uint      `gorm:"column:account_id;not null;index" json:"account_id"`
	InvestmentTypeDetailID uint      `gorm:"column:investment_type_detail_id;not null;index" json:"investment_type_detail_id"`
	Units                  float64   `gorm:"type:decimal(20,4);not null" json:"units"`
	Status                 string    `gorm:"type:varchar(20);default:'active'" json:"status"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`

	// Relations
	Account              *Account              `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	InvestmentTypeDetail *InvestmentTypeDetail `gorm:"foreignKey:InvestmentTypeDetailID" json:"investment_type_detail,omitempty"`
}

func (UserInvestment) TableName() string {
	return "user_investments"
}
