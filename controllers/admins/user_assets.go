package admins

import (
	"errors"
	"net/http"
	"strconv"

	"mogul/database"
	"mogul/middleware"
	"mogul/models"
	"mogul/query"
	"mogul/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// The user-asset list is the deepest join chain in the back office: an
// asset-category filter pulls in categories, types and assets above it.
var userAssetSpec = query.Spec{
	Table:       "user_assets",
	DefaultSort: "user_assets.created_at",
	SortColumns: map[string]string{
		"user_asset_market_value": "user_assets.market_value",
		"upgrade_level":           "user_assets.upgrade_level",
		"monthly_tax":             "user_assets.monthly_tax",
		"created_at":              "user_assets.created_at",
	},
	SearchColumns: []query.Column{
		{Column: "user_assets.custom_name"},
		{Column: "accounts.username", Relation: "account"},
		{Column: "assets.name", Relation: "asset"},
	},
	Joins: []query.Join{
		{Name: "account", Clause: "JOIN accounts ON accounts.id = user_assets.account_id"},
		{Name: "asset", Clause: "JOIN assets ON assets.id = user_assets.asset_id"},
		{Name: "asset_type", Clause: "JOIN asset_types ON asset_types.id = assets.asset_type_id", Parent: "asset"},
		{Name: "asset_category", Clause: "JOIN asset_categories ON asset_categories.id = asset_types.asset_category_id", Parent: "asset_type"},
	},
	Filters: map[string]query.Filter{
		"status":    {Column: "user_assets.status", Kind: query.KindEquals},
		"account":   {Column: "user_assets.account_id", Kind: query.KindEquals},
		"asset":     {Column: "user_assets.asset_id", Kind: query.KindEquals},
		"type":      {Column: "assets.asset_type_id", Relation: "asset", Kind: query.KindEquals},
		"category":  {Column: "asset_types.asset_category_id", Relation: "asset_type", Kind: query.KindEquals},
		"value":     {Column: "user_assets.market_value", Kind: query.KindRange},
		"purchased": {Column: "user_assets.created_at", Kind: query.KindRange},
	},
}

// GET /admin/user-assets
func GetUserAssets(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	db = db.Model(&models.UserAsset{}).
		Preload("Account").
		Preload("Asset").
		Preload("Asset.AssetType").
		Preload("Asset.AssetType.AssetCategory")

	var rows []models.UserAsset
	meta, err := query.Run(db, userAssetSpec, query.ParseParams(r, userAssetSpec), &rows)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load user assets")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    rows,
		Meta:    &meta,
	})
}

// GET /admin/user-assets/{id}
func GetUserAssetDetail(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid user asset ID")
		return
	}

	var row models.UserAsset
	err = db.
		Preload("Account").
		Preload("Asset").
		Preload("Asset.AssetType").
		Preload("Asset.AssetType.AssetCategory").
		Preload("Asset.TaxType").
		First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "User asset not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load user asset")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    row,
	})
}

type updateUserAssetRequest struct {
	CustomName  string   `json:"custom_name"`
	Status      string   `json:"status"`
	MarketValue *float64 `json:"market_value"`
}

// PUT /admin/user-assets/{id}
func UpdateUserAsset(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid user asset ID")
		return
	}

	var req updateUserAssetRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	var row models.UserAsset
	if err := db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "User asset not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load user asset")
		return
	}

	if req.CustomName != "" {
		row.CustomName = req.CustomName
	}
	if req.Status != "" {
		if req.Status != "active" && req.Status != "inactive" {
			utils.WriteError(w, http.StatusBadRequest, "Invalid status")
			return
		}
		row.Status = req.Status
	}
	if req.MarketValue != nil {
		if *req.MarketValue < 0 {
			utils.WriteError(w, http.StatusBadRequest, "Market value must not be negative")
			return
		}
		row.MarketValue = *req.MarketValue
	}

	if err := db.Save(&row).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update user asset")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "User asset updated",
		Data:    row,
	})
}

// DELETE /admin/user-assets/{id}
func DeleteUserAsset(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid user asset ID")
		return
	}

	var row models.UserAsset
	if err := db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "User asset not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load user asset")
		return
	}

	if err := db.Delete(&row).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to delete user asset")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "User asset deleted",
	})
}
