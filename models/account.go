package models

import "time"

type AccountType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (AccountType) TableName() string {
	return "account_types"
}

type Account struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Username           string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email              string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password           string    `gorm:"size:255;not null" json:"-"`
	Pin                string    `gorm:"size:255;not null" json:"-"`
	AccountTypeID      uint      `gorm:"column:account_type_id;not null;index" json:"account_type_id"`
	Status             string    `gorm:"type:varchar(20);default:'active'" json:"status"`
	Clicks             int64     `gorm:"default:0" json:"clicks"`
	BusinessEarnings   float64   `gorm:"column:business_earnings;type:decimal(20,2);default:0" json:"business_earnings"`
	InvestmentEarnings float64   `gorm:"column:investment_earnings;type:decimal(20,2);default:0" json:"investment_earnings"`
	ClickerEarnings    float64   `gorm:"column:clicker_earnings;type:decimal(20,2);default:0" json:"clicker_earnings"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Relations
	AccountType *AccountType `gorm:"foreignKey:AccountTypeID" json:"account_type,omitempty"`
}

func (Account) TableName() string {
	return "accounts"
}
