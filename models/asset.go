package models

import "time"

type AssetCategory struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

func (AssetCategory) TableName() string {
	return "asset_categories"
}

type AssetType struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"size:100;not null" json:"name"`
	AssetCategoryID uint   `gorm:"column:asset_category_id;not null;index" json:"asset_category_id"`

	// Relations
	AssetCategory *AssetCategory `gorm:"foreignKey:AssetCategoryID" json:"asset_category,omitempty"`
}

func (AssetType) TableName() string {
	return "asset_types"
}

// Asset is a catalog row: the purchasable template an account buys a UserAsset from.
type Asset struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Price           float64   `gorm:"type:decimal(20,2);not null" json:"price"`
	MaintenanceCost float64   `gorm:"column:maintenance_cost;type:decimal(20,2);default:0" json:"maintenance_cost"`
	MaxUpgrades     int       `gorm:"column:max_upgrades;default:0" json:"max_upgrades"`
	Image           *string   `gorm:"type:varchar(255)" json:"image,omitempty"`
	AssetTypeID     uint      `gorm:"column:asset_type_id;not null;index" json:"asset_type_id"`
	TaxTypeID       uint      `gorm:"column:tax_type_id;not null;index" json:"tax_type_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relations
	AssetType    *AssetType    `gorm:"foreignKey:AssetTypeID" json:"asset_type,omitempty"`
	TaxType      *TaxType      `gorm:"foreignKey:TaxTypeID" json:"tax_type,omitempty"`
	AssetDetails []AssetDetail `gorm:"foreignKey:AssetID" json:"asset_details,omitempty"`
}

func (Asset) TableName() string {
	return "assets"
}
