package admins

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path"
	"strconv"
	"time"

	"mogul/cascade"
	"mogul/database"
	"mogul/middleware"
	"mogul/models"
	"mogul/query"
	"mogul/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

var assetSpec = query.Spec{
	Table:       "assets",
	DefaultSort: "assets.id",
	SortColumns: map[string]string{
		"name":       "assets.name",
		"price":      "assets.price",
		"created_at": "assets.created_at",
	},
	SearchColumns: []query.Column{
		{Column: "assets.name"},
	},
	Joins: []query.Join{
		{Name: "asset_type", Clause: "JOIN asset_types ON asset_types.id = assets.asset_type_id"},
		{Name: "asset_category", Clause: "JOIN asset_categories ON asset_categories.id = asset_types.asset_category_id", Parent: "asset_type"},
	},
	Filters: map[string]query.Filter{
		"type":     {Column: "assets.asset_type_id", Kind: query.KindEquals},
		"category": {Column: "asset_types.asset_category_id", Relation: "asset_type", Kind: query.KindEquals},
		"taxType":  {Column: "assets.tax_type_id", Kind: query.KindEquals},
		"price":    {Column: "assets.price", Kind: query.KindRange},
	},
}

// GET /admin/assets
func GetAssets(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	db = db.Model(&models.Asset{}).
		Preload("AssetType").
		Preload("AssetType.AssetCategory").
		Preload("TaxType")

	var assets []models.Asset
	meta, err := query.Run(db, assetSpec, query.ParseParams(r, assetSpec), &assets)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load assets")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    assets,
		Meta:    &meta,
	})
}

// GET /admin/assets/{id}
func GetAssetDetail(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid asset ID")
		return
	}

	var asset models.Asset
	err = db.
		Preload("AssetType").
		Preload("AssetType.AssetCategory").
		Preload("TaxType").
		Preload("AssetDetails").
		Preload("AssetDetails.Detail").
		First(&asset, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Asset not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load asset")
		return
	}

	data := map[string]interface{}{"asset": asset}
	if key := utils.GetStringValue(asset.Image); key != "" {
		if url, err := utils.SignedObjectURL(key, 3600); err == nil {
			data["image_url"] = url
		} else {
			log.Printf("[assets] failed to presign image for asset %d: %v", asset.ID, err)
		}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    data,
	})
}

type assetRequest struct {
	Name            string                `json:"name" validate:"required"`
	Price           float64               `json:"price"`
	MaintenanceCost float64               `json:"maintenance_cost"`
	MaxUpgrades     int                   `json:"max_upgrades"`
	AssetTypeID     uint                  `json:"asset_type_id"`
	TaxTypeID       uint                  `json:"tax_type_id"`
	Details         []cascade.DetailInput `json:"details"`
}

func (req *assetRequest) validateRefs(db *gorm.DB) (string, bool) {
	if req.Price < 0 || req.MaintenanceCost < 0 {
		return "Price and maintenance cost must not be negative", false
	}
	var assetType models.AssetType
	if err := db.First(&assetType, req.AssetTypeID).Error; err != nil {
		return "Unknown asset type", false
	}
	var taxType models.TaxType
	if err := db.First(&taxType, req.TaxTypeID).Error; err != nil {
		return "Unknown tax type", false
	}
	return "", true
}

// POST /admin/assets
func CreateAsset(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	var req assetRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if msg, ok := req.validateRefs(db); !ok {
		utils.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	asset := models.Asset{
		Name:            req.Name,
		Price:           req.Price,
		MaintenanceCost: req.MaintenanceCost,
		MaxUpgrades:     req.MaxUpgrades,
		AssetTypeID:     req.AssetTypeID,
		TaxTypeID:       req.TaxTypeID,
	}
	if err := db.Create(&asset).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to create asset")
		return
	}

	res, err := cascade.ReconcileAssetDetails(db, asset.ID, req.Details)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Asset created but details failed to save")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success:  true,
		Message:  "Asset created",
		Data:     asset,
		Warnings: res.Warnings,
	})
}

// PUT /admin/assets/{id}
func UpdateAsset(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid asset ID")
		return
	}

	var req assetRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if msg, ok := req.validateRefs(db); !ok {
		utils.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	var asset models.Asset
	if err := db.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Asset not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load asset")
		return
	}

	asset.Name = req.Name
	asset.Price = req.Price
	asset.MaintenanceCost = req.MaintenanceCost
	asset.MaxUpgrades = req.MaxUpgrades
	asset.AssetTypeID = req.AssetTypeID
	asset.TaxTypeID = req.TaxTypeID
	if err := db.Save(&asset).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update asset")
		return
	}

	res, err := cascade.ReconcileAssetDetails(db, asset.ID, req.Details)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Asset updated but details failed to save")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success:  true,
		Message:  "Asset updated",
		Data:     asset,
		Warnings: res.Warnings,
	})
}

// DELETE /admin/assets/{id}
func DeleteAsset(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid asset ID")
		return
	}

	var asset models.Asset
	if err := db.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Asset not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load asset")
		return
	}

	var owned int64
	if err := db.Model(&models.UserAsset{}).Where("asset_id = ?", id).Count(&owned).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to check asset ownership")
		return
	}
	if owned > 0 {
		utils.WriteError(w, http.StatusBadRequest, "Asset is owned by accounts and cannot be deleted")
		return
	}

	res, err := cascade.DeleteAsset(db, uint(id))
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to delete asset")
		return
	}

	if key := utils.GetStringValue(asset.Image); key != "" {
		if err := utils.DeleteObject(key); err != nil {
			log.Printf("[assets] failed to delete image for asset %d: %v", asset.ID, err)
			res.Warnings = append(res.Warnings, "asset image could not be removed from storage")
		}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success:  true,
		Message:  "Asset deleted",
		Warnings: res.Warnings,
	})
}

// POST /admin/assets/{id}/image (multipart, field "image")
func UploadAssetImage(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid asset ID")
		return
	}

	var asset models.Asset
	if err := db.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Asset not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load asset")
		return
	}

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Missing image file")
		return
	}
	defer file.Close()

	ext := path.Ext(header.Filename)
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		utils.WriteError(w, http.StatusBadRequest, "Unsupported image format")
		return
	}

	objectName := fmt.Sprintf("assets/%d/%d%s", asset.ID, time.Now().Unix(), ext)
	if err := utils.UploadObject(objectName, file); err != nil {
		log.Printf("[assets] image upload failed for asset %d: %v", asset.ID, err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	old := utils.GetStringValue(asset.Image)
	asset.Image = &objectName
	if err := db.Save(&asset).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to save image reference")
		return
	}
	if old != "" && old != objectName {
		if err := utils.DeleteObject(old); err != nil {
			log.Printf("[assets] failed to delete replaced image %s: %v", old, err)
		}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Image uploaded",
		Data:    map[string]interface{}{"image": objectName},
	})
}
