package models

import "time"

type TaxType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Rate      float64   `gorm:"type:decimal(6,4);not null" json:"rate"`
	AutoApply bool      `gorm:"column:auto_apply;default:false" json:"auto_apply"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TaxType) TableName() string {
	return "tax_types"
}
