package cascade

import (
	"fmt"
	"testing"

	"mogul/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.TaxType{},
		&models.AssetCategory{},
		&models.AssetType{},
		&models.Asset{},
		&models.Detail{},
		&models.AssetDetail{},
	))
	return db
}

func seedAsset(t *testing.T, db *gorm.DB, name string) models.Asset {
	t.Helper()
	taxType := models.TaxType{Name: "flat " + name, Rate: 0.1}
	require.NoError(t, db.Create(&taxType).Error)
	category := models.AssetCategory{Name: "cat " + name}
	require.NoError(t, db.Create(&category).Error)
	assetType := models.AssetType{Name: "type " + name, AssetCategoryID: category.ID}
	require.NoError(t, db.Create(&assetType).Error)
	asset := models.Asset{Name: name, Price: 100, AssetTypeID: assetType.ID, TaxTypeID: taxType.ID}
	require.NoError(t, db.Create(&asset).Error)
	return asset
}

func loadDetails(t *testing.T, db *gorm.DB, assetID uint) map[string]string {
	t.Helper()
	var links []models.AssetDetail
	require.NoError(t, db.Preload("Detail").Where("asset_id = ?", assetID).Find(&links).Error)
	out := make(map[string]string, len(links))
	for _, l := range links {
		require.NotNil(t, l.Detail)
		out[l.Detail.Label] = l.Detail.Value
	}
	return out
}

func TestReconcileCreatesUpdatesAndDeletes(t *testing.T) {
	db := openTestDB(t)
	asset := seedAsset(t, db, "villa")

	_, err := ReconcileAssetDetails(db, asset.ID, []DetailInput{
		{Label: "rooms", Value: "4"},
		{Label: "pool", Value: "yes"},
		{Label: "garage", Value: "2"},
	})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"rooms": "4", "pool": "yes", "garage": "2"}, loadDetails(t, db, asset.ID))

	var links []models.AssetDetail
	require.NoError(t, db.Preload("Detail").Where("asset_id = ?", asset.ID).Find(&links).Error)
	var roomsLink, poolLink models.AssetDetail
	for _, l := range links {
		switch l.Detail.Label {
		case "rooms":
			roomsLink = l
		case "pool":
			poolLink = l
		}
	}

	// rooms updated in place, pool kept, garage dropped, garden added.
	res, err := ReconcileAssetDetails(db, asset.ID, []DetailInput{
		{LinkID: roomsLink.ID, Label: "rooms", Value: "5"},
		{LinkID: poolLink.ID, Label: "pool", Value: "yes"},
		{Label: "garden", Value: "large"},
	})
	require.NoError(t, err)
	require.Empty(t, res.Warnings)
	require.Equal(t, map[string]string{"rooms": "5", "pool": "yes", "garden": "large"}, loadDetails(t, db, asset.ID))

	// The update reused the existing Detail row.
	var rooms models.Detail
	require.NoError(t, db.First(&rooms, roomsLink.DetailID).Error)
	require.Equal(t, "5", rooms.Value)

	// The dropped garage Detail row is gone.
	var orphans int64
	require.NoError(t, db.Model(&models.Detail{}).Where("label = ?", "garage").Count(&orphans).Error)
	require.Zero(t, orphans)
}

func TestReconcileSkipsIncompleteRows(t *testing.T) {
	db := openTestDB(t)
	asset := seedAsset(t, db, "apartment")

	_, err := ReconcileAssetDetails(db, asset.ID, []DetailInput{
		{Label: "floors", Value: "12"},
		{Label: "", Value: "ignored"},
		{Label: "ignored", Value: "   "},
	})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"floors": "12"}, loadDetails(t, db, asset.ID))
}

func TestReconcileEmptyListRemovesEverything(t *testing.T) {
	db := openTestDB(t)
	asset := seedAsset(t, db, "yacht")

	_, err := ReconcileAssetDetails(db, asset.ID, []DetailInput{
		{Label: "length", Value: "40m"},
		{Label: "cabins", Value: "6"},
	})
	require.NoError(t, err)

	_, err = ReconcileAssetDetails(db, asset.ID, nil)
	require.NoError(t, err)
	require.Empty(t, loadDetails(t, db, asset.ID))

	var details int64
	require.NoError(t, db.Model(&models.Detail{}).Count(&details).Error)
	require.Zero(t, details)
}

func TestDeleteAssetRemovesLinksAndDetails(t *testing.T) {
	db := openTestDB(t)
	asset := seedAsset(t, db, "jet")

	_, err := ReconcileAssetDetails(db, asset.ID, []DetailInput{
		{Label: "seats", Value: "8"},
		{Label: "range", Value: "6000km"},
	})
	require.NoError(t, err)

	res, err := DeleteAsset(db, asset.ID)
	require.NoError(t, err)
	require.Empty(t, res.Warnings)

	var counts [3]int64
	require.NoError(t, db.Model(&models.Asset{}).Where("id = ?", asset.ID).Count(&counts[0]).Error)
	require.NoError(t, db.Model(&models.AssetDetail{}).Where("asset_id = ?", asset.ID).Count(&counts[1]).Error)
	require.NoError(t, db.Model(&models.Detail{}).Count(&counts[2]).Error)
	require.Zero(t, counts[0])
	require.Zero(t, counts[1])
	require.Zero(t, counts[2])
}

func TestCleanupSparesSharedDetail(t *testing.T) {
	db := openTestDB(t)
	first := seedAsset(t, db, "first")
	second := seedAsset(t, db, "second")

	// A Detail row referenced by both assets, against convention.
	shared := models.Detail{Label: "origin", Value: "import"}
	require.NoError(t, db.Create(&shared).Error)
	require.NoError(t, db.Create(&models.AssetDetail{AssetID: first.ID, DetailID: shared.ID}).Error)
	require.NoError(t, db.Create(&models.AssetDetail{AssetID: second.ID, DetailID: shared.ID}).Error)

	res, err := DeleteAsset(db, first.ID)
	require.NoError(t, err)
	require.Empty(t, res.Warnings)

	// The second asset still references the Detail, so it survives.
	var survivors int64
	require.NoError(t, db.Model(&models.Detail{}).Where("id = ?", shared.ID).Count(&survivors).Error)
	require.Equal(t, int64(1), survivors)
	require.Equal(t, map[string]string{"origin": "import"}, loadDetails(t, db, second.ID))
}
