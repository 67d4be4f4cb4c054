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

var investmentTypeSpec = query.Spec{
	Table:       "investment_types",
	DefaultSort: "investment_types.id",
	SortColumns: map[string]string{
		"name":           "investment_types.name",
		"price_per_unit": "investment_types.price_per_unit",
		"created_at":     "investment_types.created_at",
	},
	SearchColumns: []query.Column{
		{Column: "investment_types.name"},
	},
	Joins: []query.Join{
		{Name: "detail", Clause: "JOIN investment_type_details ON investment_type_details.investment_type_id = investment_types.id"},
	},
	Filters: map[string]query.Filter{
		"taxType":  {Column: "investment_types.tax_type_id", Kind: query.KindEquals},
		"category": {Column: "investment_type_details.investment_category_id", Relation: "detail", Kind: query.KindEquals},
		"price":    {Column: "investment_types.price_per_unit", Kind: query.KindRange},
	},
}

// GET /admin/investment-types
func GetInvestmentTypes(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	db = db.Model(&models.InvestmentType{}).
		Preload("TaxType").
		Preload("InvestmentTypeDetails").
		Preload("InvestmentTypeDetails.InvestmentCategory")

	var types []models.InvestmentType
	meta, err := query.Run(db, investmentTypeSpec, query.ParseParams(r, investmentTypeSpec), &types)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load investment types")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    types,
		Meta:    &meta,
	})
}

// GET /admin/investment-types/{id}
func GetInvestmentTypeDetail(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid investment type ID")
		return
	}

	var investmentType models.InvestmentType
	err = db.
		Preload("TaxType").
		Preload("InvestmentTypeDetails").
		Preload("InvestmentTypeDetails.InvestmentCategory").
		First(&investmentType, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Investment type not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load investment type")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    investmentType,
	})
}

type investmentTypeRequest struct {
	Name         string  `json:"name" validate:"required"`
	PricePerUnit float64 `json:"price_per_unit"`
	TaxTypeID    uint    `json:"tax_type_id"`
	CategoryIDs  []uint  `json:"category_ids"`
}

func (req *investmentTypeRequest) validateRefs(db *gorm.DB) (string, bool) {
	if req.PricePerUnit <= 0 {
		return "Price per unit must be positive", false
	}
	var taxType models.TaxType
	if err := db.First(&taxType, req.TaxTypeID).Error; err != nil {
		return "Unknown tax type", false
	}
	for _, cid := range lo.Uniq(req.CategoryIDs) {
		var category models.InvestmentCategory
		if err := db.First(&category, cid).Error; err != nil {
			return "Unknown investment category", false
		}
	}
	return "", true
}

func syncInvestmentTypeCategories(tx *gorm.DB, typeID uint, categoryIDs []uint) error {
	var existing []models.InvestmentTypeDetail
	if err := tx.Where("investment_type_id = ?", typeID).Find(&existing).Error; err != nil {
		return err
	}

	wanted := lo.SliceToMap(lo.Uniq(categoryIDs), func(id uint) (uint, bool) { return id, true })
	current := lo.SliceToMap(existing, func(d models.InvestmentTypeDetail) (uint, bool) { return d.InvestmentCategoryID, true })

	for cid := range wanted {
		if !current[cid] {
			link := models.InvestmentTypeDetail{InvestmentTypeID: typeID, InvestmentCategoryID: cid}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
	}

	for _, d := range existing {
		if wanted[d.InvestmentCategoryID] {
			continue
		}
		var inUse int64
		if err := tx.Model(&models.UserInvestment{}).Where("investment_type_detail_id = ?", d.ID).Count(&inUse).Error; err != nil {
			return err
		}
		if inUse > 0 {
			return errors.New("category in use")
		}
		if err := tx.Delete(&models.InvestmentTypeDetail{}, d.ID).Error; err != nil {
			return err
		}
	}
	return nil
}

// POST /admin/investment-types
func CreateInvestmentType(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	var req investmentTypeRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if msg, ok := req.validateRefs(db); !ok {
		utils.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	investmentType := models.InvestmentType{
		Name:         req.Name,
		PricePerUnit: req.PricePerUnit,
		TaxTypeID:    req.TaxTypeID,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&investmentType).Error; err != nil {
			return err
		}
		return syncInvestmentTypeCategories(tx, investmentType.ID, req.CategoryIDs)
	})
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to create investment type")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Investment type created",
		Data:    investmentType,
	})
}

// PUT /admin/investment-types/{id}
//
// Changing price_per_unit reprices every holding of this type immediately;
// holdings store units only.
func UpdateInvestmentType(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid investment type ID")
		return
	}

	var req investmentTypeRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if msg, ok := req.validateRefs(db); !ok {
		utils.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	var investmentType models.InvestmentType
	if err := db.First(&investmentType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Investment type not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load investment type")
		return
	}

	investmentType.Name = req.Name
	investmentType.PricePerUnit = req.PricePerUnit
	investmentType.TaxTypeID = req.TaxTypeID

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&investmentType).Error; err != nil {
			return err
		}
		return syncInvestmentTypeCategories(tx, investmentType.ID, req.CategoryIDs)
	})
	if err != nil {
		if err.Error() == "category in use" {
			utils.WriteError(w, http.StatusBadRequest, "A removed category is still used by user investments")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update investment type")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Investment type updated",
		Data:    investmentType,
	})
}

// DELETE /admin/investment-types/{id}
func DeleteInvestmentType(w http.ResponseWriter, r *http.Request) {
	db := database.FromRequest(r)
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid investment type ID")
		return
	}

	var investmentType models.InvestmentType
	if err := db.First(&investmentType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Investment type not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load investment type")
		return
	}

	var inUse int64
	err = db.Model(&models.UserInvestment{}).
		Joins("JOIN investment_type_details ON investment_type_details.id = user_investments.investment_type_detail_id").
		Where("investment_type_details.investment_type_id = ?", id).
		Count(&inUse).Error
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to check investment type usage")
		return
	}
	if inUse > 0 {
		utils.WriteError(w, http.StatusBadRequest, "Investment type is in use and cannot be deleted")
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("investment_type_id = ?", id).Delete(&models.InvestmentTypeDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.InvestmentType{}, id).Error
	})
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to delete investment type")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Investment type deleted",
	})
}
