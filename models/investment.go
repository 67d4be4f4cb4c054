package models

import "time"

type InvestmentCategory struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

func (InvestmentCategory) TableName() string {
	return "investment_categories"
}

// InvestmentType carries the live unit price; UserInvestment never snapshots it.
type InvestmentType struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	PricePerUnit float64   `gorm:"column:price_per_unit;type:decimal(20,2);not null" json:"price_per_unit"`
	TaxTypeID    uint      `gorm:"column:tax_type_id;not null;index" json:"tax_type_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	TaxType               *TaxType               `gorm:"foreignKey:TaxTypeID" json:"tax_type,omitempty"`
	InvestmentTypeDetails []InvestmentTypeDetail `gorm:"foreignKey:InvestmentTypeID" json:"investment_type_details,omitempty"`
}

func (InvestmentType) TableName() string {
	return "investment_types"
}

type InvestmentTypeDetail struct {
	ID                   uint `gorm:"primaryKey" json:"id"`
	InvestmentTypeID     uint `gorm:"column:investment_type_id;not null;index" json:"investment_type_id"`
	InvestmentCategoryID uint `gorm:"column:investment_category_id;not null;index" json:"investment_category_id"`

	// Relations
	InvestmentType     *InvestmentType     `gorm:"foreignKey:InvestmentTypeID" json:"investment_type,omitempty"`
	InvestmentCategory *InvestmentCategory `gorm:"foreignKey:InvestmentCategoryID" json:"investment_category,omitempty"`
}

func (InvestmentTypeDetail) TableName() string {
	return "investment_type_details"
}
