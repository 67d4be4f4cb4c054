package models

import "time"

type BusinessCategory struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

func (BusinessCategory) TableName() string {
	return "business_categories"
}

// BusinessType carries the economics of a business offering.
type BusinessType struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Cost            float64   `gorm:"type:decimal(20,2);not null" json:"cost"`
	EarningsPerHour float64   `gorm:"column:earnings_per_hour;type:decimal(20,2);default:0" json:"earnings_per_hour"`
	MaintenanceCost float64   `gorm:"column:maintenance_cost;type:decimal(20,2);default:0" json:"maintenance_cost"`
	MaxLevel        int       `gorm:"column:max_level;default:1" json:"max_level"`
	TaxTypeID       uint      `gorm:"column:tax_type_id;not null;index" json:"tax_type_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relations
	TaxType             *TaxType             `gorm:"foreignKey:TaxTypeID" json:"tax_type,omitempty"`
	BusinessTypeDetails []BusinessTypeDetail `gorm:"foreignKey:BusinessTypeID" json:"business_type_details,omitempty"`
}

func (BusinessType) TableName() string {
	return "business_types"
}

// BusinessTypeDetail is the catalog cross of a business type and a category;
// UserBusiness rows point at one of these.
type BusinessTypeDetail struct {
	ID                 uint `gorm:"primaryKey" json:"id"`
	BusinessTypeID     uint `gorm:"column:business_type_id;not null;index" json:"business_type_id"`
	BusinessCategoryID uint `gorm:"column:business_category_id;not null;index" json:"business_category_id"`

	// Relations
	BusinessType     *BusinessType     `gorm:"foreignKey:BusinessTypeID" json:"business_type,omitempty"`
	BusinessCategory *BusinessCategory `gorm:"foreignKey:BusinessCategoryID" json:"business_category,omitempty"`
}

func (BusinessTypeDetail) TableName() string {
	return "business_type_details"
}
