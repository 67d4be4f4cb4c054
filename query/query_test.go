package query

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

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
		&models.AccountType{},
		&models.Account{},
		&models.TaxType{},
		&models.AssetCategory{},
		&models.AssetType{},
		&models.Asset{},
		&models.UserAsset{},
	))
	return db
}

// testSpec is a miniature of the user-asset list: the deepest relation chain
// in the back office.
var testSpec = Spec{
	Table:       "user_assets",
	DefaultSort: "user_assets.id",
	SortColumns: map[string]string{
		"user_asset_market_value": "user_assets.market_value",
		"created_at":              "user_assets.created_at",
	},
	SearchColumns: []Column{
		{Column: "user_assets.custom_name"},
		{Column: "accounts.username", Relation: "account"},
	},
	Joins: []Join{
		{Name: "account", Clause: "JOIN accounts ON accounts.id = user_assets.account_id"},
		{Name: "asset", Clause: "JOIN assets ON assets.id = user_assets.asset_id"},
		{Name: "asset_type", Clause: "JOIN asset_types ON asset_types.id = assets.asset_type_id", Parent: "asset"},
		{Name: "asset_category", Clause: "JOIN asset_categories ON asset_categories.id = asset_types.asset_category_id", Parent: "asset_type"},
	},
	Filters: map[string]Filter{
		"status":    {Column: "user_assets.status", Kind: KindEquals},
		"category":  {Column: "asset_types.asset_category_id", Relation: "asset_type", Kind: KindEquals},
		"value":     {Column: "user_assets.market_value", Kind: KindRange},
		"purchased": {Column: "user_assets.created_at", Kind: KindRange},
	},
}

// seedChain creates one account plus a category/type/asset chain per category
// name and n user assets per asset with ascending market values.
func seedChain(t *testing.T, db *gorm.DB, categories map[string]int) map[string]models.Asset {
	t.Helper()
	accountType := models.AccountType{Name: "player"}
	require.NoError(t, db.Create(&accountType).Error)
	taxType := models.TaxType{Name: "flat", Rate: 0.1}
	require.NoError(t, db.Create(&taxType).Error)

	assets := make(map[string]models.Asset)
	i := 0
	for name, n := range categories {
		i++
		account := models.Account{
			Username:      fmt.Sprintf("owner_%s", name),
			Email:         fmt.Sprintf("%s@example.com", name),
			Password:      "x",
			Pin:           "x",
			AccountTypeID: accountType.ID,
			Status:        "active",
		}
		require.NoError(t, db.Create(&account).Error)

		category := models.AssetCategory{Name: name}
		require.NoError(t, db.Create(&category).Error)
		assetType := models.AssetType{Name: name + " type", AssetCategoryID: category.ID}
		require.NoError(t, db.Create(&assetType).Error)
		asset := models.Asset{
			Name:        name + " asset",
			Price:       1000,
			AssetTypeID: assetType.ID,
			TaxTypeID:   taxType.ID,
		}
		require.NoError(t, db.Create(&asset).Error)
		assets[name] = asset

		for j := 0; j < n; j++ {
			row := models.UserAsset{
				AccountID:   account.ID,
				AssetID:     asset.ID,
				CustomName:  fmt.Sprintf("%s-%d", name, j),
				Status:      "active",
				MarketValue: float64((i*100 + j) * 10),
			}
			require.NoError(t, db.Create(&row).Error)
		}
	}
	return assets
}

func TestRunPaginatesLastPartialPage(t *testing.T) {
	db := openTestDB(t)
	seedChain(t, db, map[string]int{"real estate": 40})

	var rows []models.UserAsset
	meta, err := Run(db.Model(&models.UserAsset{}), testSpec, Params{
		Page:      2,
		Limit:     25,
		SortBy:    "user_asset_market_value",
		SortOrder: "asc",
	}, &rows)
	require.NoError(t, err)

	require.Len(t, rows, 15)
	require.Equal(t, Meta{Total: 40, Page: 2, Limit: 25, TotalPages: 2}, meta)

	// Rows continue the ascending market value order from page 1.
	for i := 1; i < len(rows); i++ {
		require.GreaterOrEqual(t, rows[i].MarketValue, rows[i-1].MarketValue)
	}
}

func TestRunSentinelEqualsAbsent(t *testing.T) {
	db := openTestDB(t)
	seedChain(t, db, map[string]int{"vehicles": 7})

	var withSentinel, without []models.UserAsset
	metaSentinel, err := Run(db.Model(&models.UserAsset{}), testSpec, Params{
		Equals: map[string]string{"status": All},
	}, &withSentinel)
	require.NoError(t, err)
	metaAbsent, err := Run(db.Model(&models.UserAsset{}), testSpec, Params{}, &without)
	require.NoError(t, err)

	require.Equal(t, metaAbsent.Total, metaSentinel.Total)
	require.Equal(t, len(without), len(withSentinel))
}

func TestRunNestedRelationFilter(t *testing.T) {
	db := openTestDB(t)
	seedChain(t, db, map[string]int{"real estate": 5, "vehicles": 3})

	var category models.AssetCategory
	require.NoError(t, db.Where("name = ?", "vehicles").First(&category).Error)

	var rows []models.UserAsset
	meta, err := Run(db.Model(&models.UserAsset{}), testSpec, Params{
		Equals: map[string]string{"category": fmt.Sprint(category.ID)},
	}, &rows)
	require.NoError(t, err)

	require.Equal(t, int64(3), meta.Total)
	require.Len(t, rows, 3)
	for _, row := range rows {
		var asset models.Asset
		require.NoError(t, db.Preload("AssetType").First(&asset, row.AssetID).Error)
		require.Equal(t, category.ID, asset.AssetType.AssetCategoryID)
	}
}

func TestRunSearchOverJoinedColumn(t *testing.T) {
	db := openTestDB(t)
	seedChain(t, db, map[string]int{"real estate": 4, "vehicles": 2})

	var rows []models.UserAsset
	meta, err := Run(db.Model(&models.UserAsset{}), testSpec, Params{
		Query: "OWNER_VEHICLES",
	}, &rows)
	require.NoError(t, err)
	require.Equal(t, int64(2), meta.Total)
}

func TestRunSearchCombinedWithFilter(t *testing.T) {
	db := openTestDB(t)
	seedChain(t, db, map[string]int{"real estate": 4, "vehicles": 2})

	// Flip one vehicle row inactive so the equals filter bites alongside the
	// search join over accounts.
	var first models.UserAsset
	require.NoError(t, db.Joins("JOIN assets ON assets.id = user_assets.asset_id").
		Where("user_assets.custom_name LIKE ?", "vehicles-%").First(&first).Error)
	require.NoError(t, db.Model(&models.UserAsset{}).Where("id = ?", first.ID).
		Update("status", "inactive").Error)

	var rows []models.UserAsset
	meta, err := Run(db.Model(&models.UserAsset{}), testSpec, Params{
		Query:  "owner_vehicles",
		Equals: map[string]string{"status": "active"},
	}, &rows)
	require.NoError(t, err)
	require.Equal(t, int64(1), meta.Total)
	require.Len(t, rows, 1)
	require.Equal(t, "active", rows[0].Status)
}

func TestRunRangeFilterInclusive(t *testing.T) {
	db := openTestDB(t)
	seedChain(t, db, map[string]int{"vehicles": 5})
	// Values are 1000, 1010, 1020, 1030, 1040.

	var rows []models.UserAsset
	meta, err := Run(db.Model(&models.UserAsset{}), testSpec, Params{
		Ranges: map[string]Range{"value": {From: "1010", To: "1030"}},
	}, &rows)
	require.NoError(t, err)
	require.Equal(t, int64(3), meta.Total)
}

func TestRunDateRangeToIncludesWholeDay(t *testing.T) {
	db := openTestDB(t)
	seedChain(t, db, map[string]int{"vehicles": 3})

	var rows []models.UserAsset
	require.NoError(t, db.Order("id").Find(&rows).Error)
	require.Len(t, rows, 3)

	stamps := []time.Time{
		time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC),
		time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC),
	}
	for i, row := range rows {
		require.NoError(t, db.Model(&models.UserAsset{}).Where("id = ?", row.ID).
			Update("created_at", stamps[i]).Error)
	}

	// A date-only To bound covers the whole of that day, not just midnight.
	var got []models.UserAsset
	meta, err := Run(db.Model(&models.UserAsset{}), testSpec, Params{
		Ranges: map[string]Range{"purchased": {From: "2026-01-01", To: "2026-01-02"}},
	}, &got)
	require.NoError(t, err)
	require.Equal(t, int64(2), meta.Total)
}

func TestExpandDayBound(t *testing.T) {
	require.Equal(t, "2026-01-02 23:59:59", expandDayBound("2026-01-02"))
	require.Equal(t, "2026-01-02 08:00:00", expandDayBound("2026-01-02 08:00:00"))
	require.Equal(t, "1030", expandDayBound("1030"))
}

func TestRunUnknownSortFallsBack(t *testing.T) {
	db := openTestDB(t)
	seedChain(t, db, map[string]int{"vehicles": 3})

	var rows []models.UserAsset
	_, err := Run(db.Model(&models.UserAsset{}), testSpec, Params{
		SortBy: "password; DROP TABLE accounts",
	}, &rows)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i := 1; i < len(rows); i++ {
		require.Greater(t, rows[i].ID, rows[i-1].ID)
	}
}

func TestRunNormalizesPageAndLimit(t *testing.T) {
	db := openTestDB(t)
	seedChain(t, db, map[string]int{"vehicles": 2})

	var rows []models.UserAsset
	meta, err := Run(db.Model(&models.UserAsset{}), testSpec, Params{Page: 0, Limit: 500}, &rows)
	require.NoError(t, err)
	require.Equal(t, 1, meta.Page)
	require.Equal(t, MaxLimit, meta.Limit)

	meta, err = Run(db.Model(&models.UserAsset{}), testSpec, Params{Page: -3, Limit: 0}, &rows)
	require.NoError(t, err)
	require.Equal(t, 1, meta.Page)
	require.Equal(t, DefaultLimit, meta.Limit)
}

func TestPageCount(t *testing.T) {
	require.Equal(t, 0, PageCount(0, 25))
	require.Equal(t, 1, PageCount(1, 25))
	require.Equal(t, 1, PageCount(25, 25))
	require.Equal(t, 2, PageCount(26, 25))
	require.Equal(t, 2, PageCount(40, 25))
	require.Equal(t, 0, PageCount(10, 0))
}

func TestParseParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/admin/user-assets?page=3&limit=10&query=+beach+&sortBy=user_asset_market_value&sortOrder=desc&status=active&valueFrom=100&valueTo=900", nil)
	p := ParseParams(r, testSpec)

	require.Equal(t, 3, p.Page)
	require.Equal(t, 10, p.Limit)
	require.Equal(t, "beach", p.Query)
	require.Equal(t, "user_asset_market_value", p.SortBy)
	require.Equal(t, "desc", p.SortOrder)
	require.Equal(t, "active", p.Equals["status"])
	require.Equal(t, Range{From: "100", To: "900"}, p.Ranges["value"])
}
