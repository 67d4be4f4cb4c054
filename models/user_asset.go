package models

import "time"

// UserAsset is an ownership row: what an account currently holds of a catalog
// Asset, with its per-owner snapshot values.
type UserAsset struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	AccountID          uint       `gorm:"column:account_id;not null;index" json:"account_id"`
	AssetID            uint       `gorm:"column:asset_id;not null;index" json:"asset_id"`
	CustomName         string     `gorm:"column:custom_name;size:100" json:"custom_name"`
	Status             string     `gorm:"type:varchar(20);default:'active'" json:"status"`
	MonthlyTax         float64    `gorm:"column:monthly_tax;type:decimal(20,2);default:0" json:"monthly_tax"`
	MonthlyMaintenance float64    `gorm:"column:monthly_maintenance;type:decimal(20,2);default:0" json:"monthly_maintenance"`
	MarketValue        float64    `gorm:"column:market_value;type:decimal(20,2);default:0" json:"market_value"`
	UpgradeLevel       int        `gorm:"column:upgrade_level;default:0" json:"upgrade_level"`
	LastTaxPaidAt      *time.Time `gorm:"column:last_tax_paid_at" json:"last_tax_paid_at,omitempty"`
	LastMaintenanceAt  *time.Time `gorm:"column:last_maintenance_at" json:"last_maintenance_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// Relations
	Account *Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	Asset   *Asset   `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
}

func (UserAsset) TableName() string {
	return "user_assets"
}
