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
	"github.com/samber/lo"
	"gorm.io/gorm"
)

var businessTypeSpec = query.Spec{
	Table:       "business_types",
	DefaultSort: "business_types.id",
	SortColumns: map[string]string{
		"name":              "business_types.name",
		"cost":              "business_types.cost",
		"earnings_per_hour": "business_types.earnings_per_hour",
		"created_at":        "business_types.created_at",
	},
	SearchColumns: []query.Column{
		{Column: "business_types.name"},
	},
	Joins: []query.Join{
		{Name: "detail", Clause: "JOIN business_type_details ON business_type_details.business_type_id = business_types.id"},
	},
	Filters: map[string]query.Filter{
		"taxType":  {Column: "business_types.tax_type_id", Kind: query.KindEquals},
		"category": {Column: "business_type_details.business_category_id", Relation: "detail", Kind: query.KindEquals},
		"cost":     {Column: "business_types.cost", Kind: query.KindRange},
	},
}

// GET /admin/business-types
func GetBusinessTypes(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	db = db.Model(&models.BusinessType{}).
		Preload("TaxType").
		Preload("BusinessTypeDetails").
		Preload("BusinessTypeDetails.BusinessCategory")

	// The category filter goes through the link table; rows stay unique
	// because a type is crossed with any category at most once.
	var types []models.BusinessType
	meta, err := query.Run(db, businessTypeSpec, query.ParseParams(r, businessTypeSpec), &types)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load business types")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    types,
		Meta:    &meta,
	})
}

// GET /admin/business-types/{id}
func GetBusinessTypeDetail(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid business type ID")
		return
	}

	var businessType models.BusinessType
	err = db.
		Preload("TaxType").
		Preload("BusinessTypeDetails").
		Preload("BusinessTypeDetails.BusinessCategory").
		First(&businessType, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Business type not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load business type")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    businessType,
	})
}

type businessTypeRequest struct {
	Name            string  `json:"name" validate:"required"`
	Cost            float64 `json:"cost"`
	EarningsPerHour float64 `json:"earnings_per_hour"`
	MaintenanceCost float64 `json:"maintenance_cost"`
	MaxLevel        int     `json:"max_level"`
	TaxTypeID       uint    `json:"tax_type_id"`
	CategoryIDs     []uint  `json:"category_ids"`
}

func (req *businessTypeRequest) validateRefs(db *gorm.DB) (string, bool) {
	if req.Cost < 0 || req.EarningsPerHour < 0 || req.MaintenanceCost < 0 {
		return "Cost and earnings must not be negative", false
	}
	var taxType models.TaxType
	if err := db.First(&taxType, req.TaxTypeID).Error; err != nil {
		return "Unknown tax type", false
	}
	for _, cid := range lo.Uniq(req.CategoryIDs) {
		var category models.BusinessCategory
		if err := db.First(&category, cid).Error; err != nil {
			return "Unknown business category", false
		}
	}
	return "", true
}

// syncBusinessTypeCategories reconciles the link rows of a business type
// against the requested category set inside tx. Links still referenced by a
// user business are never removed.
func syncBusinessTypeCategories(tx *gorm.DB, typeID uint, categoryIDs []uint) error {
	var existing []models.BusinessTypeDetail
	if err := tx.Where("business_type_id = ?", typeID).Find(&existing).Error; err != nil {
		return err
	}

	wanted := lo.SliceToMap(lo.Uniq(categoryIDs), func(id uint) (uint, bool) { return id, true })
	current := lo.SliceToMap(existing, func(d models.BusinessTypeDetail) (uint, bool) { return d.BusinessCategoryID, true })

	for cid := range wanted {
		if !current[cid] {
			link := models.BusinessTypeDetail{BusinessTypeID: typeID, BusinessCategoryID: cid}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
	}

	for _, d := range existing {
		if wanted[d.BusinessCategoryID] {
			continue
		}
		var inUse int64
		if err := tx.Model(&models.UserBusiness{}).Where("business_type_detail_id = ?", d.ID).Count(&inUse).Error; err != nil {
			return err
		}
		if inUse > 0 {
			return errors.New("category in use")
		}
		if err := tx.Delete(&models.BusinessTypeDetail{}, d.ID).Error; err != nil {
			return err
		}
	}
	return nil
}

// POST /admin/business-types
func CreateBusinessType(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	var req businessTypeRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if msg, ok := req.validateRefs(db); !ok {
		utils.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	businessType := models.BusinessType{
		Name:            req.Name,
		Cost:            req.Cost,
		EarningsPerHour: req.EarningsPerHour,
		MaintenanceCost: req.MaintenanceCost,
		MaxLevel:        req.MaxLevel,
		TaxTypeID:       req.TaxTypeID,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&businessType).Error; err != nil {
			return err
		}
		return syncBusinessTypeCategories(tx, businessType.ID, req.CategoryIDs)
	})
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to create business type")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Business type created",
		Data:    businessType,
	})
}

// PUT /admin/business-types/{id}
func UpdateBusinessType(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid business type ID")
		return
	}

	var req businessTypeRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if msg, ok := req.validateRefs(db); !ok {
		utils.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	var businessType models.BusinessType
	if err := db.First(&businessType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Business type not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load business type")
		return
	}

	businessType.Name = req.Name
	businessType.Cost = req.Cost
	businessType.EarningsPerHour = req.EarningsPerHour
	businessType.MaintenanceCost = req.MaintenanceCost
	businessType.MaxLevel = req.MaxLevel
	businessType.TaxTypeID = req.TaxTypeID

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&businessType).Error; err != nil {
			return err
		}
		return syncBusinessTypeCategories(tx, businessType.ID, req.CategoryIDs)
	})
	if err != nil {
		if err.Error() == "category in use" {
			utils.WriteError(w, http.StatusBadRequest, "A removed category is still used by user businesses")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update business type")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Business type updated",
		Data:    businessType,
	})
}

// DELETE /admin/business-types/{id}
func DeleteBusinessType(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid business type ID")
		return
	}

	var businessType models.BusinessType
	if err := db.First(&businessType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Business type not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load business type")
		return
	}

	var inUse int64
	err = db.Model(&models.UserBusiness{}).
		Joins("JOIN business_type_details ON business_type_details.id = user_businesses.business_type_detail_id").
		Where("business_type_details.business_type_id = ?", id).
		Count(&inUse).Error
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to check business type usage")
		return
	}
	if inUse > 0 {
		utils.WriteError(w, http.StatusBadRequest, "Business type is in use and cannot be deleted")
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("business_type_id = ?", id).Delete(&models.BusinessTypeDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.BusinessType{}, id).Error
	})
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to delete business type")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Business type deleted",
	})
}
