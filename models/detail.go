package models

// Detail is a generic label/value pair attached to an asset through AssetDetail.
// By convention a Detail row is owned by exactly one asset; the store does not
// enforce this, callers must never share a Detail between assets. The cascade
// engine relies on that convention when it cleans up orphans.
type Detail struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"size:100;not null" json:"label"`
	Value string `gorm:"size:255;not null" json:"value"`
}

func (Detail) TableName() string {
	return "details"
}

// AssetDetail links an asset to one of its Detail rows.
type AssetDetail struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	AssetID  uint `gorm:"column:asset_id;not null;index" json:"asset_id"`
	DetailID uint `gorm:"column:detail_id;not null;index" json:"detail_id"`

	// Relations
	Detail *Detail `gorm:"foreignKey:DetailID" json:"detail,omitempty"`
}

func (AssetDetail) TableName() string {
	return "asset_details"
}
